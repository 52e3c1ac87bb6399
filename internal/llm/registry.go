package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/dspiliot/agora/internal/store"
)

// Registry resolves request-time model names to providers. Providers are
// constructed lazily on first use and cached per model name. A model whose
// provider key is absent yields *ErrMissingAPIKey at resolution time.
type Registry struct {
	cfg       Config
	eventRepo store.EventRepo

	mu        sync.Mutex
	providers map[string]Provider
}

// NewRegistry creates a Registry. Constructed providers are wrapped with
// event logging when eventRepo is non-nil.
func NewRegistry(cfg Config, eventRepo store.EventRepo) *Registry {
	return &Registry{
		cfg:       cfg,
		eventRepo: eventRepo,
		providers: make(map[string]Provider),
	}
}

// Provider returns a Provider for the named model, falling back to the
// configured default model when name is empty.
func (r *Registry) Provider(ctx context.Context, name string) (Provider, error) {
	if name == "" {
		name = r.cfg.DefaultModel
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.providers[name]; ok {
		return p, nil
	}

	info, ok := resolveModelInfo(name)
	if !ok {
		return nil, &ErrUnknownModel{Model: name}
	}

	base, err := r.build(ctx, info)
	if err != nil {
		return nil, err
	}

	p := base
	if r.eventRepo != nil {
		p = WithLogging(base, r.eventRepo)
	}

	r.providers[name] = p
	return p, nil
}

// Available reports whether the provider family behind a model has its API
// key configured. Used by the model catalog endpoint.
func (r *Registry) Available(name string) bool {
	info, ok := resolveModelInfo(name)
	if !ok {
		return false
	}
	return r.keyFor(info.Family) != ""
}

func (r *Registry) build(ctx context.Context, info ModelInfo) (Provider, error) {
	if info.Family != FamilyMock && r.keyFor(info.Family) == "" {
		return nil, &ErrMissingAPIKey{
			Provider: string(info.Family),
			EnvVar:   KeyEnvVar(info.Family),
		}
	}

	switch info.Family {
	case FamilyOpenAI:
		return NewOpenAIProvider(r.cfg.OpenAI, info.ID)
	case FamilyAnthropic:
		return NewAnthropicProvider(r.cfg.Anthropic, info.ID)
	case FamilyDeepSeek:
		return NewDeepSeekProvider(r.cfg.DeepSeek, info.ID)
	case FamilyPerplexity:
		return NewPerplexityProvider(r.cfg.Perplexity, info.ID)
	case FamilyGemini:
		return NewGeminiProvider(ctx, r.cfg.Gemini, info.ID)
	case FamilyMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider family: %q", info.Family)
	}
}

func (r *Registry) keyFor(f Family) string {
	switch f {
	case FamilyOpenAI:
		return r.cfg.OpenAI.APIKey
	case FamilyAnthropic:
		return r.cfg.Anthropic.APIKey
	case FamilyDeepSeek:
		return r.cfg.DeepSeek.APIKey
	case FamilyPerplexity:
		return r.cfg.Perplexity.APIKey
	case FamilyGemini:
		return r.cfg.Gemini.APIKey
	}
	return ""
}
