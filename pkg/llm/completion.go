package llm

import (
	"context"
	"errors"
)

// CompletionRequest is the provider-neutral shape of a single chat completion.
type CompletionRequest struct {
	Model       string
	Provider    string
	Messages    []Message
	Temperature float64
	// Kwargs are provider specific body fields, forwarded untouched.
	Kwargs map[string]any
	// OnUsage, when set, receives token accounting for successful calls.
	OnUsage func(Usage)
}

// CompletionFunc returns the assistant text for req, or an error when no response was obtained.
type CompletionFunc func(ctx context.Context, req CompletionRequest) (string, error)

// ErrEmptyCompletion is returned when the provider answered without any choice.
var ErrEmptyCompletion = errors.New("llm: completion returned no choices")

// CreateChatCompletion runs req through Chat and returns the first choice's text.
// It satisfies CompletionFunc as a method value.
func (c *Client) CreateChatCompletion(ctx context.Context, req CompletionRequest) (string, error) {
	return Complete(ctx, c, req)
}

// Complete runs req through any LLMClient.
func Complete(ctx context.Context, client LLMClient, req CompletionRequest) (string, error) {
	if client == nil {
		return "", errors.New("llm: client cannot be nil")
	}
	temperature := req.Temperature
	resp, err := client.Chat(ctx, &ChatRequest{
		Model:       req.Model,
		Provider:    req.Provider,
		Messages:    req.Messages,
		Temperature: &temperature,
		Extra:       req.Kwargs,
	})
	if err != nil {
		return "", err
	}
	if req.OnUsage != nil {
		req.OnUsage(resp.Usage)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Content(), nil
}
