package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"contract-consult/vars"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// 为空时使用内嵌模板
	TemplateDir string `yaml:"template_dir"`
}

type LLMConfig struct {
	Provider string        `yaml:"provider"`
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load 读取配置文件（可不存在），再用环境变量覆盖，最后补默认值
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// 只用环境变量部署
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if port := vars.GetEnv("PORT", ""); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	c.Server.TemplateDir = vars.GetEnv("TEMPLATE_DIR", c.Server.TemplateDir)

	c.LLM.Provider = vars.GetEnv("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.APIKey = vars.GetEnv("GEMINI_API_KEY", vars.GetEnv("LLM_API_KEY", c.LLM.APIKey))
	c.LLM.BaseURL = vars.GetEnv("LLM_BASE_URL", c.LLM.BaseURL)
	c.LLM.Model = vars.GetEnv("LLM_MODEL", c.LLM.Model)
	if timeout := vars.GetEnv("LLM_TIMEOUT", ""); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid LLM_TIMEOUT %q: %w", timeout, err)
		}
		c.LLM.Timeout = d
	}

	c.Log.Level = vars.GetEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = vars.GetEnv("LOG_FORMAT", c.Log.Format)
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = vars.PROVIDER_OPENAI
	}
	if c.LLM.BaseURL == "" {
		switch c.LLM.Provider {
		case vars.PROVIDER_OLLAMA:
			c.LLM.BaseURL = vars.OLLAMA_PATH
		default:
			c.LLM.BaseURL = vars.GEMINI_OPENAI_BASE
		}
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case vars.PROVIDER_OLLAMA:
			c.LLM.Model = vars.QWEN7B
		default:
			c.LLM.Model = vars.GEMINI20FLASH
		}
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate 启动前校验，凭证缺失直接拒绝启动
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case vars.PROVIDER_OPENAI:
		if c.LLM.APIKey == "" {
			return errors.New("llm api key is required: set GEMINI_API_KEY or llm.api_key")
		}
	case vars.PROVIDER_OLLAMA:
	default:
		return fmt.Errorf("unsupported llm provider: %s", c.LLM.Provider)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm timeout must be positive, got %s", c.LLM.Timeout)
	}
	return nil
}
