package llm

// Role values for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior message of the conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SamplingConfig carries the model sampling parameters. Zero values fall
// back to the package defaults.
type SamplingConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// CompletionRequest is the assembled prompt: a system persona, the full
// ordered history, and the new user input. History is never truncated or
// summarized here; callers own the cost implications.
type CompletionRequest struct {
	Persona   string
	History   []Turn
	UserInput string
	Sampling  SamplingConfig
}
