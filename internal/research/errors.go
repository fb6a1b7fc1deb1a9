package research

import "errors"

var (
	// ErrUnavailable means no search integration is configured.
	ErrUnavailable = errors.New("search integration is not configured")
	// ErrSearchFailed means the provider reported an in-band failure.
	ErrSearchFailed = errors.New("search failed")
)
