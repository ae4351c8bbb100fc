package types

// 回复消息的固定角色
const RoleConsultant = "AI consultant"

// ChatMessage role 和 content 都必须出现，content 允许为空串
type ChatMessage struct {
	Role    string  `json:"role" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

func NewChatMessage(role, content string) ChatMessage {
	return ChatMessage{Role: role, Content: &content}
}

// Text 消息正文，缺失时返回空串
func (m ChatMessage) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// ChatRequest 每次请求都需携带完整的对话历史，服务端不保存会话
type ChatRequest struct {
	Messages        []ChatMessage    `json:"messages" binding:"required,dive"`
	DocumentDetails *ContractSection `json:"document_details" binding:"required"`
}

// ChatReply /api/chat 的响应体
type ChatReply struct {
	Message ChatMessage `json:"message"`
}

// ReplyContent 要求 LLM 输出的 JSON 结构
type ReplyContent struct {
	Content string `json:"content" jsonschema:"description=回复给用户的完整内容,required"`
}
