package usecase

import (
	"context"

	"jewelry-concierge/internal/chat"
	"jewelry-concierge/pkg/llm"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// stubGateway records the last completion request and replies with a
// canned answer or error.
type stubGateway struct {
	reply    string
	err      error
	lastReq  llm.CompletionRequest
	numCalls int
}

func (s *stubGateway) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.lastReq = req
	s.numCalls++
	return s.reply, s.err
}

// stubRepo is an in-test session repository with controllable behavior.
type stubRepo struct {
	id           string
	history      []chat.Turn
	appends      []chat.Turn
	appendErr    error
	clearErr     error
	cleared      int
	getOrCreates int
}

func (s *stubRepo) GetOrCreate(ctx context.Context, sessionID string) (string, []chat.Turn) {
	s.getOrCreates++
	out := make([]chat.Turn, 0, len(s.history)+len(s.appends))
	out = append(out, s.history...)
	out = append(out, s.appends...)
	return s.id, out
}

func (s *stubRepo) Append(ctx context.Context, sessionID, role, content string) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appends = append(s.appends, chat.Turn{Role: role, Content: content})
	return nil
}

func (s *stubRepo) Clear(ctx context.Context, sessionID string) error {
	return s.clearErr
}

func (s *stubRepo) ClearAll(ctx context.Context) int {
	return s.cleared
}
