package consult

import (
	"errors"
	"fmt"
)

var (
	// ErrDependency LLM 服务不可达或返回非成功状态
	ErrDependency = errors.New("llm service unavailable")
	// ErrTimeout LLM 调用超时
	ErrTimeout = errors.New("llm call timed out")
	// ErrReplyFormat LLM 返回内容不符合 {"content": string}
	ErrReplyFormat = errors.New("malformed llm reply")
)

// ReplyFormatError 保留原始回复用于排查，不返回给调用方
type ReplyFormatError struct {
	Raw string
	Err error
}

func (e *ReplyFormatError) Error() string {
	return fmt.Sprintf("%s: %v", ErrReplyFormat, e.Err)
}

func (e *ReplyFormatError) Unwrap() []error {
	return []error{ErrReplyFormat, e.Err}
}
