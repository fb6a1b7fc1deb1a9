package http

import (
	"jewelry-concierge/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	UserInput string `json:"user_input" binding:"required,min=1,max=1000"`
	SessionID string `json:"session_id"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		UserInput: r.UserInput,
		SessionID: r.SessionID,
	}
}

type clearReq struct {
	SessionID string `json:"session_id"`
}

// --- Response DTOs ---

type turnResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResp struct {
	Reply     string     `json:"reply"`
	SessionID string     `json:"session_id"`
	History   []turnResp `json:"history"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	history := make([]turnResp, len(out.History))
	for i, turn := range out.History {
		history[i] = turnResp{Role: turn.Role, Content: turn.Content}
	}
	return chatResp{
		Reply:     out.Reply,
		SessionID: out.SessionID,
		History:   history,
	}
}

type clearResp struct {
	Cleared int    `json:"cleared"`
	Message string `json:"message"`
}

func (h *handler) newClearResp(out chat.ClearOutput) clearResp {
	return clearResp{
		Cleared: out.Cleared,
		Message: "Chat history cleared.",
	}
}
