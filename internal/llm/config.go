package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config.Provider values. ProviderNone turns explanations off.
const (
	ProviderNone       = ""
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects the explanation model. Only the block matching Provider
// is read.
type Config struct {
	Provider string `yaml:"provider" env:"LITHUANINGO_LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout covers one explanation, retries included.
	Timeout time.Duration `yaml:"timeout" env:"LITHUANINGO_LLM_TIMEOUT" env-default:"30s"`
}

type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"  env:"LITHUANINGO_ANTHROPIC_API_KEY"`
	Model   string `yaml:"model"    env:"LITHUANINGO_ANTHROPIC_MODEL"    env-default:"claude-haiku"`
	BaseURL string `yaml:"base_url" env:"LITHUANINGO_ANTHROPIC_BASE_URL"`
}

// OpenAIConfig also serves self-hosted OpenAI-compatible servers through
// BaseURL.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"LITHUANINGO_OPENAI_API_KEY"`
	Model   string `yaml:"model"    env:"LITHUANINGO_OPENAI_MODEL"    env-default:"gpt-4o-mini"`
	BaseURL string `yaml:"base_url" env:"LITHUANINGO_OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"  env:"LITHUANINGO_GEMINI_API_KEY"`
	Model   string `yaml:"model"    env:"LITHUANINGO_GEMINI_MODEL"    env-default:"gemini-flash"`
	BaseURL string `yaml:"base_url" env:"LITHUANINGO_GEMINI_BASE_URL"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"  env:"LITHUANINGO_OPENROUTER_API_KEY"`
	Model   string `yaml:"model"    env:"LITHUANINGO_OPENROUTER_MODEL"    env-default:"google/gemini-2.0-flash-001"`
	BaseURL string `yaml:"base_url" env:"LITHUANINGO_OPENROUTER_BASE_URL"`
}

// RetryConfig drives WithRetry. Waits grow by Multiplier per attempt up to
// MaxWait.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"LITHUANINGO_LLM_RETRY_ATTEMPTS"   env-default:"3"`
	InitialWait time.Duration `yaml:"initial_wait" env:"LITHUANINGO_LLM_RETRY_WAIT"       env-default:"1s"`
	MaxWait     time.Duration `yaml:"max_wait"     env:"LITHUANINGO_LLM_RETRY_MAX_WAIT"   env-default:"10s"`
	Multiplier  float64       `yaml:"multiplier"   env:"LITHUANINGO_LLM_RETRY_MULTIPLIER" env-default:"2.0"`
}

// keyFields lists each vendor's key in DiscoverConfig priority order. The
// first env var is the one vendors document; the second is ours.
var keyFields = []struct {
	provider  string
	vendorEnv string
	ownEnv    string
	key       func(*Config) *string
}{
	{ProviderAnthropic, "ANTHROPIC_API_KEY", "LITHUANINGO_ANTHROPIC_API_KEY", func(c *Config) *string { return &c.Anthropic.APIKey }},
	{ProviderOpenAI, "OPENAI_API_KEY", "LITHUANINGO_OPENAI_API_KEY", func(c *Config) *string { return &c.OpenAI.APIKey }},
	{ProviderGemini, "GEMINI_API_KEY", "LITHUANINGO_GEMINI_API_KEY", func(c *Config) *string { return &c.Gemini.APIKey }},
	{ProviderOpenRouter, "OPENROUTER_API_KEY", "LITHUANINGO_OPENROUTER_API_KEY", func(c *Config) *string { return &c.OpenRouter.APIKey }},
}

// DefaultConfig has explanations off and every other field at its env
// default.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry:      RetryConfig{MaxAttempts: 3, InitialWait: time.Second, MaxWait: 10 * time.Second, Multiplier: 2},
		Timeout:    30 * time.Second,
	}
}

// ConfigFromEnv reads the LITHUANINGO_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("llm config: %w", err)
	}
	return cfg, nil
}

// DiscoverConfig picks the first vendor whose standard key variable, such
// as ANTHROPIC_API_KEY, is set.
func DiscoverConfig() (Config, bool) {
	for _, f := range keyFields {
		if k := os.Getenv(f.vendorEnv); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = f.provider
			*f.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

func (c Config) Enabled() bool {
	return c.Provider != ProviderNone
}

// Validate reports a selected vendor without an API key, an unknown
// provider name or a retry budget below one attempt.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderNone, ProviderMock:
	default:
		known := false
		for _, f := range keyFields {
			if f.provider != c.Provider {
				continue
			}
			known = true
			if *f.key(&c) == "" {
				return fmt.Errorf("llm config: %s is required for the %s provider", f.ownEnv, f.provider)
			}
		}
		if !known {
			return fmt.Errorf("llm config: unknown provider %q", c.Provider)
		}
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("llm config: retry max_attempts is %d, need at least 1", c.Retry.MaxAttempts)
	}
	return nil
}
