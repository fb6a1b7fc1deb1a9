package repository

import (
	"context"

	"jewelry-concierge/internal/chat"
)

// SessionRepository owns conversation histories. Implementations
// serialize access per session id so concurrent requests for one session
// cannot interleave their appends.
type SessionRepository interface {
	// GetOrCreate returns the session id and a snapshot of its history.
	// An empty or unknown id allocates a fresh session with a generated
	// identifier and empty history.
	GetOrCreate(ctx context.Context, sessionID string) (string, []chat.Turn)

	// Append adds one turn to an existing session in call order.
	Append(ctx context.Context, sessionID, role, content string) error

	// Clear removes one session. Unknown ids return
	// chat.ErrSessionNotFound.
	Clear(ctx context.Context, sessionID string) error

	// ClearAll removes every session and reports how many were dropped.
	ClearAll(ctx context.Context) int
}
