package gemini

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient generates natural-language answers with Gemini through the
// OpenAI-compatible chat API.
type ChatClient struct {
	client    *openai.Client
	model     string
	available bool
}

// NewChatClient creates a chat client. With an empty apiKey the client
// reports itself unavailable and the caller degrades gracefully instead
// of failing the query.
func NewChatClient(apiKey, baseURL, model string) *ChatClient {
	if apiKey == "" {
		return &ChatClient{available: false}
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &ChatClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		available: true,
	}
}

// Available reports whether the client is configured with an API key.
func (c *ChatClient) Available() bool {
	return c.available
}

// GenerateResponse sends the prepared prompt and returns the model's
// text. The prompt already carries the persona and retrieved context.
func (c *ChatClient) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if !c.available {
		return "", fmt.Errorf("chat client not configured")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   700,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return resp.Choices[0].Message.Content, nil
}
