// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all application configuration.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	// PublicURL is advertised in the agent card.
	PublicURL string `env:"PUBLIC_URL"`
	LLM       LLMConfig
}

// LLMConfig selects and tunes the model backend.
type LLMConfig struct {
	Provider        string  `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey    string  `env:"GEMINI_API_KEY"`
	GeminiModel     string  `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-lite"`
	GeminiEndpoint  string  `env:"GEMINI_ENDPOINT"`
	OpenAIAPIKey    string  `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string  `env:"OPENAI_BASE_URL"`
	OpenAIModel     string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature     float32 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	TopP            float32 `env:"LLM_TOP_P" envDefault:"0.95"`
	MaxOutputTokens int32   `env:"LLM_MAX_OUTPUT_TOKENS" envDefault:"2048"`
}

// Load reads .env (if present) and parses environment variables into Config.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}

	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	// zero would fall back to the provider default
	if c.LLM.Temperature <= 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be greater than 0 and at most 2")
	}
	if c.LLM.TopP <= 0 || c.LLM.TopP > 1 {
		return fmt.Errorf("LLM_TOP_P must be greater than 0 and at most 1")
	}
	if c.LLM.MaxOutputTokens <= 0 {
		return fmt.Errorf("LLM_MAX_OUTPUT_TOKENS must be positive")
	}
	return nil
}

// AgentURL returns the base URL advertised to A2A clients.
func (c *Config) AgentURL() string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/")
	}
	return "http://localhost:" + c.Port
}
