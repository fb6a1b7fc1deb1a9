package usecase

import (
	"context"

	"jewelry-concierge/internal/chat"
)

// Clear wipes one session, or every session when input.All is set.
func (uc *implUseCase) Clear(ctx context.Context, input chat.ClearInput) (chat.ClearOutput, error) {
	if input.All {
		n := uc.repo.ClearAll(ctx)
		uc.l.Infof(ctx, "Clear: removed all %d sessions", n)
		return chat.ClearOutput{Cleared: n}, nil
	}

	if err := uc.repo.Clear(ctx, input.SessionID); err != nil {
		return chat.ClearOutput{}, err
	}

	uc.l.Infof(ctx, "Clear: removed session %s", input.SessionID)
	return chat.ClearOutput{Cleared: 1}, nil
}
