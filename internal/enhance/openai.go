package enhance

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI rephrases replies through the chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
	prompt *PromptSpec
}

func NewOpenAI(apiKey, baseURL, model string, prompt *PromptSpec) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model, prompt: prompt}
}

func (o *OpenAI) Enhance(ctx context.Context, in Input) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.prompt.Style.Temperature,
		MaxTokens:   o.prompt.Style.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.prompt.Render(in.Intent, in.BaseResponse)},
			{Role: openai.ChatMessageRoleUser, Content: in.UserMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}
