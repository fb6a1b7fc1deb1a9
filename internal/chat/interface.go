package chat

import "context"

// UseCase is the chat domain behavior consumed by the HTTP delivery.
type UseCase interface {
	// Chat runs one exchange: sanitize input, load history, complete
	// against the model, append both turns, return the full history.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Clear wipes one session's history, or every session when All is
	// set. Clearing an unknown session id returns ErrSessionNotFound.
	Clear(ctx context.Context, input ClearInput) (ClearOutput, error)
}
