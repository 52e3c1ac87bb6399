package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dspiliot/agora/internal/extract"
	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/store"
)

// APIError is the wire form of a request failure.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps every error response.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondOK writes a 200 with the payload.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondError writes an error envelope with an explicit status and code.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

// RespondDomainError maps a service error onto HTTP. Configuration faults
// are the caller's problem (4xx); a misbehaving LLM upstream is a bad
// gateway, not an internal error.
func RespondDomainError(c *gin.Context, err error) {
	status, code := statusFor(err)
	RespondError(c, status, code, err)
}

func statusFor(err error) (int, string) {
	var (
		missingKey   *llm.ErrMissingAPIKey
		unknownModel *llm.ErrUnknownModel
		rateLimit    *llm.ErrRateLimit
		upstream     *llm.ErrUpstream
		empty        *llm.ErrEmptyResponse
		invalid      *llm.ErrInvalidResponse
		malformed    *extract.ErrMalformed
		truncated    *llm.ErrMaxTokensExceeded
		unavailable  *llm.ErrProviderUnavailable
		contested    *store.ErrAlreadyContested
		notFound     *store.ErrAnswerNotFound
	)

	switch {
	case errors.As(err, &missingKey):
		return http.StatusBadRequest, "missing_api_key"
	case errors.As(err, &unknownModel):
		return http.StatusBadRequest, "unknown_model"
	case errors.As(err, &rateLimit):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.As(err, &contested):
		return http.StatusConflict, "already_contested"
	case errors.As(err, &notFound):
		return http.StatusNotFound, "answer_not_found"
	case errors.As(err, &upstream):
		return http.StatusBadGateway, "upstream_error"
	case errors.As(err, &empty):
		return http.StatusBadGateway, "empty_response"
	case errors.As(err, &invalid):
		return http.StatusBadGateway, "invalid_response"
	case errors.As(err, &malformed):
		return http.StatusBadGateway, "malformed_response"
	case errors.As(err, &truncated):
		return http.StatusBadGateway, "response_truncated"
	case errors.As(err, &unavailable):
		return http.StatusBadGateway, "provider_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
