package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"

	"contract-consult/vars"
)

type Options struct {
	Provider string
	BaseURL  string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// NewChatModel 按提供方创建模型，进程内只创建一次
func NewChatModel(ctx context.Context, opts Options) (model.BaseChatModel, error) {
	switch opts.Provider {
	case vars.PROVIDER_OPENAI:
		m, err := CreateOpenAIChatModel(ctx, opts.BaseURL, opts.APIKey, opts.Model, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return m, nil
	case vars.PROVIDER_OLLAMA:
		m, err := CreateOllamaChatModel(ctx, opts.BaseURL, opts.Model, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", opts.Provider)
	}
}
