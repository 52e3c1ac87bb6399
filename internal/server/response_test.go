package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dspiliot/agora/internal/extract"
	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/store"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing api key", &llm.ErrMissingAPIKey{Provider: "openai"}, http.StatusBadRequest, "missing_api_key"},
		{"unknown model", &llm.ErrUnknownModel{Model: "llama"}, http.StatusBadRequest, "unknown_model"},
		{"rate limit", &llm.ErrRateLimit{}, http.StatusTooManyRequests, "rate_limited"},
		{"already contested", &store.ErrAlreadyContested{AnswerID: "a"}, http.StatusConflict, "already_contested"},
		{"not found", &store.ErrAnswerNotFound{AnswerID: "a"}, http.StatusNotFound, "answer_not_found"},
		{"upstream", &llm.ErrUpstream{Provider: "anthropic", StatusCode: 500}, http.StatusBadGateway, "upstream_error"},
		{"empty response", &llm.ErrEmptyResponse{Provider: "gemini"}, http.StatusBadGateway, "empty_response"},
		{"invalid response", &llm.ErrInvalidResponse{Err: errors.New("bad shape")}, http.StatusBadGateway, "invalid_response"},
		{"malformed response", &extract.ErrMalformed{Raw: "not json"}, http.StatusBadGateway, "malformed_response"},
		{"truncated", &llm.ErrMaxTokensExceeded{}, http.StatusBadGateway, "response_truncated"},
		{"unavailable", &llm.ErrProviderUnavailable{}, http.StatusBadGateway, "provider_unavailable"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestStatusFor_WrappedErrors(t *testing.T) {
	// Service layers wrap provider errors with context; mapping must see
	// through the wrapping.
	err := fmt.Errorf("grade answer: %w", &llm.ErrRateLimit{})
	status, code := statusFor(err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "rate_limited", code)
}
