package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
}

const (
	MessageSuccess = "success"

	// DefaultErrorMessage is returned on internal failures. Upstream
	// payloads and exception text never reach the client.
	DefaultErrorMessage = "An internal error occurred. Please try again later."

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
	RateLimitedErrorCode    = 429
	UnavailableErrorCode    = 503
)
