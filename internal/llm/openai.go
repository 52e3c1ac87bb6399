package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// schemaMode selects how an OpenAI-compatible endpoint is asked for
// structured output.
type schemaMode int

const (
	// schemaModeStrict uses response_format: json_schema with strict
	// validation. Supported by OpenAI.
	schemaModeStrict schemaMode = iota

	// schemaModeJSONObject uses response_format: json_object and embeds the
	// schema in the system prompt. Used for OpenAI-compatible APIs that do
	// not implement json_schema (DeepSeek, Perplexity).
	schemaModeJSONObject
)

// OpenAIProvider implements Provider using the OpenAI SDK. DeepSeek and
// Perplexity providers reuse it via BaseURL since both expose
// OpenAI-compatible APIs.
type OpenAIProvider struct {
	client *openai.Client
	name   string
	model  string
	mode   schemaMode
}

// NewOpenAIProvider creates a new OpenAI provider for the given model ID.
func NewOpenAIProvider(cfg OpenAIConfig, model string) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: "openai", EnvVar: EnvOpenAIKey}
	}
	return newCompatProvider("openai", cfg.APIKey, cfg.BaseURL, model, schemaModeStrict), nil
}

// newCompatProvider builds a provider against any OpenAI-compatible API.
func newCompatProvider(name, apiKey, baseURL, model string, mode schemaMode) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		name:   name,
		model:  model,
		mode:   mode,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            p.buildMessages(req),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}

	if req.Schema != nil {
		switch p.mode {
		case schemaModeStrict:
			schemaBytes, err := json.Marshal(req.Schema.Definition)
			if err != nil {
				return nil, fmt.Errorf("marshal schema: %w", err)
			}
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   req.Schema.Name,
					Schema: json.RawMessage(schemaBytes),
					Strict: true,
				},
			}
		case schemaModeJSONObject:
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, p.mapError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, &ErrEmptyResponse{Provider: p.name}
	}

	stop := mapOpenAIStopReason(resp.Choices[0].FinishReason)
	content, err := finishContent(resp.Choices[0].Message.Content, stop, req.Schema)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: stop,
	}, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func (p *OpenAIProvider) buildMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	system := req.System
	// json_object mode has no server-side schema enforcement, so the schema
	// definition rides along in the system prompt.
	if req.Schema != nil && p.mode == schemaModeJSONObject {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			system += fmt.Sprintf("\n\nRespond with a single JSON object conforming to this JSON Schema (%s):\n%s",
				req.Schema.Name, def)
		}
	}

	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	if reason == openai.FinishReasonLength {
		return stopMaxTokens
	}
	return stopEnd
}

func (p *OpenAIProvider) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode > 0:
			return &ErrUpstream{Provider: p.name, StatusCode: apiErr.HTTPStatusCode, Err: fmt.Errorf("chat completion: %w", err)}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
