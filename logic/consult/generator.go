package consult

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"contract-consult/types"
)

// Generator 基于 eino ChatModel 的结构化回复生成器
// chatModel 需在构造时已绑定 {"content": string} 的输出约束
type Generator struct {
	chatModel model.BaseChatModel
}

func NewGenerator(chatModel model.BaseChatModel) *Generator {
	return &Generator{chatModel: chatModel}
}

// GenerateReply 单次调用 LLM，不重试
func (g *Generator) GenerateReply(ctx context.Context, prompt string) (*types.ReplyContent, error) {
	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDependency, err)
	}
	if resp == nil {
		return nil, &ReplyFormatError{Err: errors.New("empty response")}
	}
	return ParseReply(resp.Content)
}

// ParseReply 解析 LLM 原始文本，允许外层包裹 markdown 代码块
func ParseReply(raw string) (*types.ReplyContent, error) {
	jsonStr := strings.TrimSpace(raw)
	jsonStr = strings.TrimPrefix(jsonStr, "```json")
	jsonStr = strings.TrimPrefix(jsonStr, "```")
	jsonStr = strings.TrimSuffix(jsonStr, "```")
	jsonStr = strings.TrimSpace(jsonStr)

	var reply struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		return nil, &ReplyFormatError{Raw: raw, Err: err}
	}
	if reply.Content == nil {
		return nil, &ReplyFormatError{Raw: raw, Err: errors.New(`missing "content" field`)}
	}
	return &types.ReplyContent{Content: *reply.Content}, nil
}
