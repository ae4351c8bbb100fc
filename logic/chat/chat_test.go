package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/schema"

	"contract-consult/vars"
)

func TestReplySchema(t *testing.T) {
	data, err := json.Marshal(ReplySchema())
	if err != nil {
		t.Fatalf("Failed to marshal schema: %v", err)
	}

	var s struct {
		Schema     string                     `json:"$schema"`
		Ref        string                     `json:"$ref"`
		Type       string                     `json:"type"`
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Failed to decode schema: %v", err)
	}
	if s.Type != "object" || s.Ref != "" || s.Schema != "" {
		t.Errorf("Expected inline object schema, got %s", data)
	}
	if _, ok := s.Properties["content"]; !ok || len(s.Properties) != 1 {
		t.Errorf("Expected only a content property, got %s", data)
	}
	if len(s.Required) != 1 || s.Required[0] != "content" {
		t.Errorf("Expected content to be required, got %v", s.Required)
	}
}

func TestNewChatModelUnknownProvider(t *testing.T) {
	_, err := NewChatModel(context.Background(), Options{Provider: "nope"})
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("Expected unsupported provider error, got %v", err)
	}
}

func TestNewChatModelProviders(t *testing.T) {
	tests := []Options{
		{Provider: vars.PROVIDER_OPENAI, BaseURL: vars.GEMINI_OPENAI_BASE, APIKey: "test-key", Model: vars.GEMINI20FLASH, Timeout: time.Second},
		{Provider: vars.PROVIDER_OLLAMA, BaseURL: "http://localhost:11434", Model: vars.QWEN7B, Timeout: time.Second},
	}
	for _, opts := range tests {
		t.Run(opts.Provider, func(t *testing.T) {
			m, err := NewChatModel(context.Background(), opts)
			if err != nil {
				t.Fatalf("Failed to create %s model: %v", opts.Provider, err)
			}
			if m == nil {
				t.Fatal("Expected a chat model")
			}
		})
	}
}

func TestOpenAIChatModelSendsReplySchema(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"cmpl-1","object":"chat.completion","created":1,"model":"test-model",`+
			`"choices":[{"index":0,"message":{"role":"assistant","content":"{\"content\":\"ok\"}"},"finish_reason":"stop"}],`+
			`"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`)
	}))
	defer srv.Close()

	m, err := CreateOpenAIChatModel(context.Background(), srv.URL, "test-key", "test-model", time.Second)
	if err != nil {
		t.Fatalf("Failed to create model: %v", err)
	}
	resp, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Content != `{"content":"ok"}` {
		t.Errorf("Unexpected content %q", resp.Content)
	}

	var req struct {
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
				Schema struct {
					Type     string   `json:"type"`
					Required []string `json:"required"`
				} `json:"schema"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatalf("Failed to decode outbound request %q: %v", body, err)
	}
	rf := req.ResponseFormat
	if rf.Type != "json_schema" || rf.JSONSchema.Name != "consult_reply" || !rf.JSONSchema.Strict {
		t.Errorf("Unexpected response_format in %s", body)
	}
	if rf.JSONSchema.Schema.Type != "object" || len(rf.JSONSchema.Schema.Required) != 1 || rf.JSONSchema.Schema.Required[0] != "content" {
		t.Errorf("Expected schema requiring content, got %s", body)
	}
}
