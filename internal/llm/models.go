package llm

import "strings"

// Family identifies a provider backend.
type Family string

const (
	FamilyOpenAI     Family = "openai"
	FamilyAnthropic  Family = "anthropic"
	FamilyDeepSeek   Family = "deepseek"
	FamilyPerplexity Family = "perplexity"
	FamilyGemini     Family = "gemini"
	FamilyMock       Family = "mock"
)

// ModelInfo describes one entry in the model catalog.
type ModelInfo struct {
	// Name is the friendly name clients send, e.g. "claude-sonnet".
	Name string

	// Family selects the provider backend.
	Family Family

	// ID is the provider-side model identifier.
	ID string
}

// modelCatalog maps friendly model names to provider families and IDs.
var modelCatalog = []ModelInfo{
	{Name: "gpt-4o", Family: FamilyOpenAI, ID: "gpt-4o"},
	{Name: "gpt-4o-mini", Family: FamilyOpenAI, ID: "gpt-4o-mini"},
	{Name: "gpt-4.1", Family: FamilyOpenAI, ID: "gpt-4.1"},
	{Name: "claude-sonnet", Family: FamilyAnthropic, ID: "claude-sonnet-4-20250514"},
	{Name: "claude-haiku", Family: FamilyAnthropic, ID: "claude-haiku-4-5-20251001"},
	{Name: "deepseek-chat", Family: FamilyDeepSeek, ID: "deepseek-chat"},
	{Name: "deepseek-reasoner", Family: FamilyDeepSeek, ID: "deepseek-reasoner"},
	{Name: "sonar", Family: FamilyPerplexity, ID: "sonar"},
	{Name: "sonar-pro", Family: FamilyPerplexity, ID: "sonar-pro"},
	{Name: "gemini-flash", Family: FamilyGemini, ID: "gemini-2.0-flash"},
	{Name: "gemini-pro", Family: FamilyGemini, ID: "gemini-2.0-pro"},
}

// Catalog returns a copy of the model catalog.
func Catalog() []ModelInfo {
	out := make([]ModelInfo, len(modelCatalog))
	copy(out, modelCatalog)
	return out
}

// resolveModelInfo maps a requested model name to catalog info. Names not in
// the catalog are resolved by prefix so direct provider model IDs work too
// (e.g. "claude-opus-4-5" or "gpt-4-turbo").
func resolveModelInfo(name string) (ModelInfo, bool) {
	for _, m := range modelCatalog {
		if m.Name == name {
			return m, true
		}
	}

	switch {
	case strings.HasPrefix(name, "gpt-") || strings.HasPrefix(name, "o1") || strings.HasPrefix(name, "o3"):
		return ModelInfo{Name: name, Family: FamilyOpenAI, ID: name}, true
	case strings.HasPrefix(name, "claude-"):
		return ModelInfo{Name: name, Family: FamilyAnthropic, ID: name}, true
	case strings.HasPrefix(name, "deepseek-"):
		return ModelInfo{Name: name, Family: FamilyDeepSeek, ID: name}, true
	case strings.HasPrefix(name, "sonar"):
		return ModelInfo{Name: name, Family: FamilyPerplexity, ID: name}, true
	case strings.HasPrefix(name, "gemini-"):
		return ModelInfo{Name: name, Family: FamilyGemini, ID: name}, true
	case name == "mock":
		return ModelInfo{Name: name, Family: FamilyMock, ID: "mock"}, true
	}

	return ModelInfo{}, false
}

// KeyEnvVar returns the env var that gates a provider family.
func KeyEnvVar(f Family) string {
	switch f {
	case FamilyOpenAI:
		return EnvOpenAIKey
	case FamilyAnthropic:
		return EnvAnthropicKey
	case FamilyDeepSeek:
		return EnvDeepSeekKey
	case FamilyPerplexity:
		return EnvPerplexityKey
	case FamilyGemini:
		return EnvGeminiKey
	}
	return ""
}
