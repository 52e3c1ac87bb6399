package llm

const defaultPerplexityBaseURL = "https://api.perplexity.ai"

// NewPerplexityProvider creates a provider targeting the Perplexity API.
// Perplexity is OpenAI-compatible; structured output uses json_object mode
// with local schema enforcement, same as DeepSeek.
func NewPerplexityProvider(cfg PerplexityConfig, model string) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: "perplexity", EnvVar: EnvPerplexityKey}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultPerplexityBaseURL
	}

	return newCompatProvider("perplexity", cfg.APIKey, baseURL, model, schemaModeJSONObject), nil
}
