package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// 清掉可能影响结果的环境变量
func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "TEMPLATE_DIR", "LLM_PROVIDER", "GEMINI_API_KEY", "LLM_API_KEY", "LLM_BASE_URL", "LLM_MODEL", "LLM_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9090
  template_dir: "./templates"
llm:
  provider: "openai"
  api_key: "file-key"
  base_url: "https://llm.test/v1/"
  model: "gemini-test"
  timeout: 15s
log:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.TemplateDir != "./templates" {
		t.Errorf("Expected template dir ./templates, got %s", cfg.Server.TemplateDir)
	}
	if cfg.LLM.APIKey != "file-key" || cfg.LLM.BaseURL != "https://llm.test/v1/" || cfg.LLM.Model != "gemini-test" {
		t.Errorf("Unexpected llm config %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 15*time.Second {
		t.Errorf("Expected timeout 15s, got %s", cfg.LLM.Timeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Missing config file should fall back to defaults: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("Expected default provider openai, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("Expected default model gemini-2.0-flash, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://generativelanguage.googleapis.com/v1beta/openai/" {
		t.Errorf("Unexpected default base url %s", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("Expected default timeout 60s, got %s", cfg.LLM.Timeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected default log config %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
llm:
  api_key: "file-key"
  timeout: 15s
`)
	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Expected port 7070, got %d", cfg.Server.Port)
	}
	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("Expected env api key to win, got %s", cfg.LLM.APIKey)
	}
	if cfg.LLM.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %s", cfg.LLM.Timeout)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected json format, got %s", cfg.Log.Format)
	}
}

func TestLoadOllamaDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "ollama")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LLM.Model != "qwen2.5:7b" {
		t.Errorf("Expected ollama default model, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL == "" {
		t.Error("Expected ollama base url default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Ollama should not need an api key: %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	if _, err := Load(writeConfig(t, "invalid: yaml: content:")); err == nil {
		t.Error("Expected error for invalid YAML")
	}

	t.Setenv("PORT", "eighty")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for invalid PORT")
	}

	t.Setenv("PORT", "")
	t.Setenv("LLM_TIMEOUT", "soon")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for invalid LLM_TIMEOUT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "openai with key", cfg: Config{LLM: LLMConfig{Provider: "openai", APIKey: "k"}}},
		{name: "openai without key", cfg: Config{LLM: LLMConfig{Provider: "openai"}}, wantErr: true},
		{name: "ollama without key", cfg: Config{LLM: LLMConfig{Provider: "ollama"}}},
		{name: "unknown provider", cfg: Config{LLM: LLMConfig{Provider: "dashscope", APIKey: "k"}}, wantErr: true},
		{name: "negative timeout", cfg: Config{LLM: LLMConfig{Provider: "ollama", Timeout: -time.Second}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
