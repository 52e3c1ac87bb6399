package llm

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// NewDeepSeekProvider creates a provider targeting the DeepSeek API.
// DeepSeek is OpenAI-compatible but supports only json_object structured
// output, so the schema is carried in the system prompt and enforced
// locally after extraction.
func NewDeepSeekProvider(cfg DeepSeekConfig, model string) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: "deepseek", EnvVar: EnvDeepSeekKey}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}

	return newCompatProvider("deepseek", cfg.APIKey, baseURL, model, schemaModeJSONObject), nil
}
