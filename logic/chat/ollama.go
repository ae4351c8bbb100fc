package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ollama"
)

// CreateOllamaChatModel 本地 Ollama 模型，Format 约束为回复 schema
func CreateOllamaChatModel(ctx context.Context, url string, model string, timeout time.Duration) (*ollama.ChatModel, error) {
	format, err := json.Marshal(ReplySchema())
	if err != nil {
		return nil, fmt.Errorf("encode reply schema: %w", err)
	}

	chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: url,   // Ollama 服务地址
		Model:   model, // 模型名称
		Timeout: timeout,
		Format:  format,
	})
	if err != nil {
		return nil, fmt.Errorf("create ollama chat model failed: %w", err)
	}
	return chatModel, nil
}
