package llm

import "errors"

var (
	// ErrAuth indicates the provider rejected our credentials.
	ErrAuth = errors.New("model provider authentication failed")

	// ErrRateLimited indicates the provider is throttling us.
	ErrRateLimited = errors.New("model provider rate limit exceeded")

	// ErrTimeout indicates the completion call timed out.
	ErrTimeout = errors.New("model provider request timed out")

	// ErrUpstream covers any other provider failure, including malformed
	// responses.
	ErrUpstream = errors.New("model provider request failed")
)
