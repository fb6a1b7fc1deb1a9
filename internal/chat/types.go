package chat

// Turn roles. The store appends in call order and does not enforce
// strict alternation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message exchanged in a session.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatInput is the input for one chat exchange.
type ChatInput struct {
	UserInput string
	SessionID string // optional; a new session is allocated when absent
}

// ChatOutput is the result of one chat exchange.
type ChatOutput struct {
	Reply     string
	SessionID string
	History   []Turn
}

// ClearInput selects which history to clear. All takes precedence over
// SessionID and is an administrative operation.
type ClearInput struct {
	SessionID string
	All       bool
}

// ClearOutput reports how many sessions were cleared.
type ClearOutput struct {
	Cleared int
}
