package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config selects and configures the provider used by `pack explain`.
type Config struct {
	// Provider is one of anthropic, openai, gemini or mock.
	Provider string `env:"DUNGEONQUIZ_LLM_PROVIDER"`

	Anthropic AnthropicConfig `envPrefix:"DUNGEONQUIZ_ANTHROPIC_"`
	OpenAI    OpenAIConfig    `envPrefix:"DUNGEONQUIZ_OPENAI_"`
	Gemini    GeminiConfig    `envPrefix:"DUNGEONQUIZ_GEMINI_"`
	Retry     RetryConfig     `envPrefix:"DUNGEONQUIZ_LLM_RETRY_"`

	// Timeout bounds one Complete call, retries included.
	Timeout time.Duration `env:"DUNGEONQUIZ_LLM_TIMEOUT"`
}

type AnthropicConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// OpenAIConfig also serves OpenAI-compatible servers through BaseURL.
type OpenAIConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

type GeminiConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// RetryConfig shapes the backoff of RetryProvider.
type RetryConfig struct {
	MaxAttempts int           `env:"ATTEMPTS"`
	InitialWait time.Duration `env:"INITIAL_WAIT"`
	MaxWait     time.Duration `env:"MAX_WAIT"`
	Multiplier  float64       `env:"MULTIPLIER"`
}

func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays DUNGEONQUIZ_* variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse LLM env: %w", err)
	}
	return cfg, nil
}

// vendorKeys lists the conventional key variables, most preferred first.
var vendorKeys = []struct {
	provider string
	envVar   string
	set      func(*Config, string)
}{
	{"gemini", "GEMINI_API_KEY", func(c *Config, k string) { c.Gemini.APIKey = k }},
	{"openai", "OPENAI_API_KEY", func(c *Config, k string) { c.OpenAI.APIKey = k }},
	{"anthropic", "ANTHROPIC_API_KEY", func(c *Config, k string) { c.Anthropic.APIKey = k }},
}

// DiscoverConfig picks the first provider whose conventional key variable
// is set.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendorKeys {
		if key := os.Getenv(v.envVar); key != "" {
			cfg := DefaultConfig()
			cfg.Provider = v.provider
			v.set(&cfg, key)
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers a valid DUNGEONQUIZ_* configuration and falls back
// to DiscoverConfig. The validation error is returned when neither works.
func ResolveConfig() (Config, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	verr := cfg.Validate()
	if verr == nil {
		return cfg, nil
	}
	if found, ok := DiscoverConfig(); ok {
		return found, nil
	}
	return Config{}, verr
}

// Validate checks the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "mock":
		return nil
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("no API key for %s: set DUNGEONQUIZ_%s_API_KEY", c.Provider, strings.ToUpper(c.Provider))
	}
	return nil
}

