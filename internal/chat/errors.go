package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyInput      = errors.New("user input is empty")
	ErrInputTooLong    = errors.New("user input exceeds the allowed length")
	ErrSessionNotFound = errors.New("session not found")
)
