package guidance

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Completer produces a raw model reply for a feeling string.
type Completer interface {
	Complete(ctx context.Context, feeling string) (string, error)
}

// OpenAIClient calls an OpenAI-compatible chat-completion API with the
// fixed system prompt and few-shot examples.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a client for the given key and model. baseURL
// overrides the default OpenAI endpoint when set, which also lets tests
// point the client at a local server.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete sends the prompt stack and the user's feeling, returning the raw
// reply content. Timeout and cancellation follow ctx.
func (c *OpenAIClient) Complete(ctx context.Context, feeling string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2*len(fewShots)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, shot := range fewShots {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: shot.user},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: shot.assistant},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: feeling,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
