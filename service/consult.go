package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contract-consult/logic/consult"
	"contract-consult/pkg/logger"
	"contract-consult/types"
)

// ReplyGenerator 发送提示词并返回符合 {"content": string} 的回复
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string) (*types.ReplyContent, error)
}

type ConsultService struct {
	generator ReplyGenerator
	timeout   time.Duration
}

// timeout <= 0 表示只受请求 ctx 约束
func NewConsultService(generator ReplyGenerator, timeout time.Duration) *ConsultService {
	return &ConsultService{
		generator: generator,
		timeout:   timeout,
	}
}

// AnswerQuery 带着审查结果回答用户最新的问题，每次请求最多调用一次 LLM
func (s *ConsultService) AnswerQuery(ctx context.Context, req *types.ChatRequest) (*types.ChatMessage, error) {
	start := time.Now()

	prompt, err := consult.BuildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	logger.Debug(ctx, "consult prompt built", "messages", len(req.Messages), "prompt_len", len(prompt))

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.generator.GenerateReply(callCtx, prompt)
	if err != nil {
		var fe *consult.ReplyFormatError
		switch {
		case errors.As(err, &fe):
			logger.Error(ctx, "llm reply is not valid", "error", fe.Err, "raw", fe.Raw)
		case !errors.Is(err, consult.ErrTimeout) && errors.Is(callCtx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("%w: %w", consult.ErrTimeout, err)
			logger.Error(ctx, "llm call timed out", "error", err, "timeout", s.timeout)
		default:
			logger.Error(ctx, "llm call failed", "error", err)
		}
		return nil, err
	}

	logger.Info(ctx, "consult answered", "latency_ms", time.Since(start).Milliseconds())
	msg := types.NewChatMessage(types.RoleConsultant, reply.Content)
	return &msg, nil
}
