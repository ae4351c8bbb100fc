package vars

import (
	"os"
)

// GetEnv 获取环境变量，如果不存在则返回默认值
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

const (
	// 模型名称
	GEMINI20FLASH = "gemini-2.0-flash"
	QWEN7B        = "qwen2.5:7b"

	// LLM 提供方
	PROVIDER_OPENAI = "openai" // OpenAI 兼容接口，默认指向 Gemini
	PROVIDER_OLLAMA = "ollama"

	GEMINI_OPENAI_BASE = "https://generativelanguage.googleapis.com/v1beta/openai/"

	// 模板
	PAGE_ANALYSIS = "analysis.html"

	// 提示词分段标题，顺序固定：文档 -> 对话 -> 任务
	SECTION_DOCUMENT = "Here is the legal document:"
	SECTION_HISTORY  = "Here is the chat history:"
	SECTION_TASKS    = "Your tasks:"

	CONSULT = `You are an expert legal analyst and consultant.

` + SECTION_DOCUMENT + `

{{.Document}}

` + SECTION_HISTORY + `

{{range .Messages}}{{.Role}}: {{.Text}}
{{else}}(no messages yet)
{{end}}
` + SECTION_TASKS + `
1. Analyze the document above.
2. Answer the latest user question in the chat history based on the document.
3. Talk to the user in a friendly and professional manner, responding intuitively to their queries.

Reply with a single JSON object of the form {"content": "<your answer>"}. Output JSON only. No markdown.
`
)

// 环境变量配置
var (
	// OLLAMA
	OLLAMA_PATH = GetEnv("OLLAMA_PATH", "http://localhost:11434")
)
