package llm

import "context"

// Client is the minimal completion surface used by the chat use case.
// It is deliberately small so tests can swap in a recording stub.
type Client interface {
	// Complete sends persona + history + the new user turn to the model
	// and returns the generated reply text. No retries are performed;
	// retry policy, if any, belongs to the caller.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
