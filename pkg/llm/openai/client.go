package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openaiapi "github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4"

var (
	ErrEmptyAPIKey = errors.New("openai api key is empty")
	ErrNoChoices   = errors.New("no choices returned by model")
)

// Client is a chat completions client for OpenAI or any OpenAI-compatible
// gateway (OpenRouter, a local proxy) reachable at BaseURL.
type Client struct {
	Model string

	apiKey string
	api    *openaiapi.Client
}

// New builds a client. An empty baseURL keeps the library default; a zero
// timeout leaves outbound calls bounded only by the caller's context.
func New(apiKey, baseURL, model string, timeout time.Duration) *Client {
	cfg := openaiapi.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		Model:  model,
		apiKey: apiKey,
		api:    openaiapi.NewClientWithConfig(cfg),
	}
}

// Complete sends the system prompt and the user message as a two-message
// conversation and returns the first choice's content untouched.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", ErrEmptyAPIKey
	}
	resp, err := c.api.CreateChatCompletion(ctx, openaiapi.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openaiapi.ChatCompletionMessage{
			{Role: openaiapi.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openaiapi.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
