package llm

import (
	"context"
	"errors"
	"testing"
)

func TestRegistry_MissingKeyIsRequestTime(t *testing.T) {
	r := NewRegistry(DefaultConfig(), nil)

	_, err := r.Provider(context.Background(), "gpt-4o")
	var missing *ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want *ErrMissingAPIKey", err)
	}
	if missing.EnvVar != EnvOpenAIKey {
		t.Errorf("got env var %q, want %q", missing.EnvVar, EnvOpenAIKey)
	}
}

func TestRegistry_UnknownModel(t *testing.T) {
	r := NewRegistry(DefaultConfig(), nil)

	_, err := r.Provider(context.Background(), "llama-undocumented")
	var unknown *ErrUnknownModel
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want *ErrUnknownModel", err)
	}
}

func TestRegistry_PerProviderKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "test-key"
	r := NewRegistry(cfg, nil)

	if _, err := r.Provider(context.Background(), "claude-sonnet"); err != nil {
		t.Fatalf("claude-sonnet with key configured: %v", err)
	}

	_, err := r.Provider(context.Background(), "deepseek-chat")
	var missing *ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want *ErrMissingAPIKey for deepseek", err)
	}
	if missing.EnvVar != EnvDeepSeekKey {
		t.Errorf("got env var %q, want %q", missing.EnvVar, EnvDeepSeekKey)
	}
}

func TestRegistry_DefaultModelFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultModel = "mock"
	r := NewRegistry(cfg, nil)

	p, err := r.Provider(context.Background(), "")
	if err != nil {
		t.Fatalf("empty model name: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("got model %q, want mock", p.ModelID())
	}
}

func TestRegistry_CachesProviders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "test-key"
	r := NewRegistry(cfg, nil)

	a, err := r.Provider(context.Background(), "gpt-4o")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Provider(context.Background(), "gpt-4o")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected same provider instance for repeated model name")
	}
}

func TestRegistry_Available(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Perplexity.APIKey = "test-key"
	r := NewRegistry(cfg, nil)

	if !r.Available("sonar") {
		t.Error("sonar should be available with PERPLEXITY_API_KEY set")
	}
	if r.Available("gpt-4o") {
		t.Error("gpt-4o should be unavailable without OPENAI_API_KEY")
	}
	if r.Available("not-a-model") {
		t.Error("unknown model should never be available")
	}
}

func TestResolveModelInfo_PrefixFallback(t *testing.T) {
	tests := []struct {
		name   string
		family Family
	}{
		{"gpt-4-turbo", FamilyOpenAI},
		{"claude-opus-4-5", FamilyAnthropic},
		{"deepseek-coder", FamilyDeepSeek},
		{"sonar-reasoning", FamilyPerplexity},
		{"gemini-1.5-pro", FamilyGemini},
	}
	for _, tt := range tests {
		info, ok := resolveModelInfo(tt.name)
		if !ok {
			t.Errorf("%s: not resolved", tt.name)
			continue
		}
		if info.Family != tt.family {
			t.Errorf("%s: got family %q, want %q", tt.name, info.Family, tt.family)
		}
		if info.ID != tt.name {
			t.Errorf("%s: got ID %q, want pass-through", tt.name, info.ID)
		}
	}
}
