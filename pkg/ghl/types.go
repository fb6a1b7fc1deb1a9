package ghl

// Result is the uniform outcome of a single MCP tool call. Failures are
// reported in-band: callers must check Success before reading Data.
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Tool    string         `json:"tool,omitempty"`
}

// Contact mirrors the CRM contact schema field-for-field.
type Contact struct {
	FirstName    string         `json:"firstName,omitempty"`
	LastName     string         `json:"lastName,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	CustomFields map[string]any `json:"customFields,omitempty"`
}

// Opportunity mirrors the CRM opportunity schema.
type Opportunity struct {
	Name          string  `json:"name"`
	ContactID     string  `json:"contactId"`
	PipelineID    string  `json:"pipelineId"`
	StageID       string  `json:"stageId"`
	MonetaryValue float64 `json:"monetaryValue,omitempty"`
	Status        string  `json:"status,omitempty"`
}

// Message is an outbound conversation message.
type Message struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
	Type           string `json:"type"` // SMS, Email, ...
}

// mcpRequest is the tool-call envelope the MCP server expects.
type mcpRequest struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// mcpResponse is the raw server reply before translation into Result.
type mcpResponse struct {
	Success bool           `json:"success"`
	Result  map[string]any `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}
