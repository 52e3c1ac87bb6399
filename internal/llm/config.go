package llm

import (
	"os"
	"time"
)

// Provider env vars. Absence of a key disables that provider's models at
// request time; it is never a startup failure.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvAnthropicKey  = "ANTHROPIC_API_KEY"
	EnvDeepSeekKey   = "DEEPSEEK_API_KEY"
	EnvPerplexityKey = "PERPLEXITY_API_KEY"
	EnvGeminiKey     = "GEMINI_API_KEY"
)

// Config holds all LLM provider configuration.
type Config struct {
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	DeepSeek   DeepSeekConfig
	Perplexity PerplexityConfig
	Gemini     GeminiConfig

	// DefaultModel is used when a request does not name a model.
	DefaultModel string

	// Timeout is the maximum duration for a single LLM request.
	// Default: 90s (long enough for grading long essays).
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
}

// DeepSeekConfig holds DeepSeek-specific configuration.
// DeepSeek exposes an OpenAI-compatible API.
type DeepSeekConfig struct {
	APIKey  string
	BaseURL string // Default: "https://api.deepseek.com/v1"
}

// PerplexityConfig holds Perplexity-specific configuration.
// Perplexity exposes an OpenAI-compatible API.
type PerplexityConfig struct {
	APIKey  string
	BaseURL string // Default: "https://api.perplexity.ai"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
}

// DefaultConfig returns a Config with sensible defaults and no keys.
func DefaultConfig() Config {
	return Config{
		DeepSeek: DeepSeekConfig{
			BaseURL: defaultDeepSeekBaseURL,
		},
		Perplexity: PerplexityConfig{
			BaseURL: defaultPerplexityBaseURL,
		},
		DefaultModel: "gpt-4o-mini",
		Timeout:      90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.OpenAI.APIKey = os.Getenv(EnvOpenAIKey)
	cfg.Anthropic.APIKey = os.Getenv(EnvAnthropicKey)
	cfg.DeepSeek.APIKey = os.Getenv(EnvDeepSeekKey)
	cfg.Perplexity.APIKey = os.Getenv(EnvPerplexityKey)
	cfg.Gemini.APIKey = os.Getenv(EnvGeminiKey)

	if u := os.Getenv("AGORA_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if u := os.Getenv("AGORA_DEEPSEEK_BASE_URL"); u != "" {
		cfg.DeepSeek.BaseURL = u
	}
	if u := os.Getenv("AGORA_PERPLEXITY_BASE_URL"); u != "" {
		cfg.Perplexity.BaseURL = u
	}
	if m := os.Getenv("AGORA_DEFAULT_MODEL"); m != "" {
		cfg.DefaultModel = m
	}
	if d := os.Getenv("AGORA_LLM_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}
