package lead

import "errors"

var (
	// ErrUnavailable means no CRM integration is configured.
	ErrUnavailable = errors.New("crm integration is not configured")
	// ErrCRMRejected means the CRM reported an in-band failure.
	ErrCRMRejected = errors.New("crm rejected the request")
)
