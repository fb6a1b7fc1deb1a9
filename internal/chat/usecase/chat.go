package usecase

import (
	"context"

	"jewelry-concierge/internal/chat"
	"jewelry-concierge/pkg/llm"
	"jewelry-concierge/pkg/sanitize"
)

// MaxInputLength bounds the sanitized user input.
const MaxInputLength = 1000

// Chat runs one exchange against the model.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	text := sanitize.Strip(input.UserInput)
	if text == "" {
		return chat.ChatOutput{}, chat.ErrEmptyInput
	}
	if len(text) > MaxInputLength {
		return chat.ChatOutput{}, chat.ErrInputTooLong
	}

	sessionID, history := uc.repo.GetOrCreate(ctx, input.SessionID)

	uc.l.Infof(ctx, "Chat: session=%s history=%d", sessionID, len(history))

	reply, err := uc.gateway.Complete(ctx, llm.CompletionRequest{
		Persona:   uc.persona,
		History:   toGatewayTurns(history),
		UserInput: text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Chat: completion failed for session %s: %v", sessionID, err)
		return chat.ChatOutput{}, err
	}

	// The exchange is only recorded once the model has answered, so a
	// failed call leaves the history untouched.
	if err := uc.repo.Append(ctx, sessionID, chat.RoleUser, text); err != nil {
		uc.l.Warnf(ctx, "Chat: append user turn: %v", err)
	}
	if err := uc.repo.Append(ctx, sessionID, chat.RoleAssistant, reply); err != nil {
		uc.l.Warnf(ctx, "Chat: append assistant turn: %v", err)
	}

	// The response history is the snapshot plus this exchange, not a
	// store re-read: a re-read after eviction would mint a fresh
	// session and pair the returned id with someone else's (empty)
	// history.
	updated := make([]chat.Turn, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		chat.Turn{Role: chat.RoleUser, Content: text},
		chat.Turn{Role: chat.RoleAssistant, Content: reply},
	)

	return chat.ChatOutput{
		Reply:     reply,
		SessionID: sessionID,
		History:   updated,
	}, nil
}

func toGatewayTurns(history []chat.Turn) []llm.Turn {
	turns := make([]llm.Turn, len(history))
	for i, t := range history {
		turns[i] = llm.Turn{Role: t.Role, Content: t.Content}
	}
	return turns
}
