package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
)

// CreateOpenAIChatModel OpenAI 兼容接口（默认 Gemini），要求按 JSON schema 输出
func CreateOpenAIChatModel(ctx context.Context, baseURL, apiKey, model string, timeout time.Duration) (*openai.ChatModel, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		Timeout: timeout,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:       "consult_reply",
				Strict:     true,
				JSONSchema: ReplySchema(),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model failed: %w", err)
	}
	return chatModel, nil
}
