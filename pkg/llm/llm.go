package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.9
	DefaultMaxTokens   = 1024

	requestTimeout = 30 * time.Second
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	api      completionAPI
	defaults SamplingConfig
}

// completionAPI is the subset of the go-openai client we call.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config for the gateway client.
type Config struct {
	APIKey      string
	BaseURL     string // optional override for OpenAI-compatible endpoints
	Model       string
	Temperature float32
	MaxTokens   int
}

// New creates the gateway client. The API key is required.
func New(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("model API key is required")
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Timeout: requestTimeout}

	defaults := SamplingConfig{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	if defaults.Model == "" {
		defaults.Model = DefaultModel
	}
	if defaults.Temperature == 0 {
		defaults.Temperature = DefaultTemperature
	}
	if defaults.MaxTokens == 0 {
		defaults.MaxTokens = DefaultMaxTokens
	}

	return &OpenAIClient{
		api:      openai.NewClientWithConfig(oc),
		defaults: defaults,
	}, nil
}

// Complete implements Client. Turn order is preserved exactly:
// system persona, then history in insertion order, then the new user turn.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	sampling := req.Sampling
	if sampling.Model == "" {
		sampling.Model = c.defaults.Model
	}
	if sampling.Temperature == 0 {
		sampling.Temperature = c.defaults.Temperature
	}
	if sampling.MaxTokens == 0 {
		sampling.MaxTokens = c.defaults.MaxTokens
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: req.Persona,
	})
	for _, turn := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserInput,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       sampling.Model,
		Temperature: sampling.Temperature,
		MaxTokens:   sampling.MaxTokens,
		Messages:    messages,
	})
	if err != nil {
		return "", translateError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices in response", ErrUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// translateError maps provider failures onto the package taxonomy so that
// callers never inspect provider-specific error types.
func translateError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: status %d", ErrAuth, apiErr.HTTPStatusCode)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: status %d", ErrRateLimited, apiErr.HTTPStatusCode)
		default:
			return fmt.Errorf("%w: status %d", ErrUpstream, apiErr.HTTPStatusCode)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
