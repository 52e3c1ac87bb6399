package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dspiliot/agora/internal/diagnostics"
	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/logger"
)

// DiagnosticsHandler serves the diagnostic session endpoints.
type DiagnosticsHandler struct {
	svc *diagnostics.Service
	log *logger.Logger
}

// NewDiagnosticsHandler creates the handler.
func NewDiagnosticsHandler(svc *diagnostics.Service, log *logger.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{svc: svc, log: log.With("handler", "diagnostics")}
}

type newQuestionRequest struct {
	UserID         string                   `json:"userId"`
	Topic          string                   `json:"topic"`
	Level          string                   `json:"level"`
	SessionHistory []diagnostics.TrendEntry `json:"sessionHistory"`
	Model          string                   `json:"model"`
}

// POST /api/diagnostics/new-question
func (h *DiagnosticsHandler) NewQuestion(c *gin.Context) {
	var req newQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	q, err := h.svc.NewQuestion(c.Request.Context(), diagnostics.NewQuestionParams{
		UserID:         req.UserID,
		Topic:          req.Topic,
		Level:          req.Level,
		SessionHistory: req.SessionHistory,
		Model:          req.Model,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, gin.H{"question": q})
}

// gradeRequest carries the question fields flattened into the body: the
// question is never persisted standalone, so the client sends it back
// verbatim with the answer.
type gradeRequest struct {
	UserID        string            `json:"userId"`
	ID            string            `json:"id"`
	Type          string            `json:"type" binding:"required"`
	Stem          string            `json:"stem" binding:"required"`
	Options       map[string]string `json:"options"`
	AnswerKey     string            `json:"answerKey"`
	ModelAnswer   string            `json:"modelAnswer"`
	ConceptTags   []string          `json:"conceptTags"`
	Topic         string            `json:"topic"`
	Difficulty    string            `json:"difficulty"`
	Points        int               `json:"points"`
	StudentAnswer string            `json:"studentAnswer"`
	TimeMs        int               `json:"timeMs"`
	Model         string            `json:"model"`
}

// POST /api/diagnostics/grade
func (h *DiagnosticsHandler) Grade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	qt := diagnostics.QuestionType(req.Type)
	if qt != diagnostics.TypeMCQ && qt != diagnostics.TypeShort {
		RespondError(c, http.StatusBadRequest, "bad_request",
			fmt.Errorf("unknown question type %q", req.Type))
		return
	}

	out, err := h.svc.Grade(c.Request.Context(), diagnostics.GradeParams{
		UserID: req.UserID,
		Question: &diagnostics.Question{
			ID:          req.ID,
			Type:        qt,
			Stem:        req.Stem,
			Options:     req.Options,
			AnswerKey:   req.AnswerKey,
			ModelAnswer: req.ModelAnswer,
			ConceptTags: req.ConceptTags,
			Topic:       req.Topic,
			Difficulty:  diagnostics.Difficulty(req.Difficulty),
			Points:      req.Points,
		},
		StudentAnswer: req.StudentAnswer,
		TimeMs:        req.TimeMs,
		Model:         req.Model,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, out)
}

// GET /api/diagnostics/history?userId=&limit=
func (h *DiagnosticsHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
		limit = n
	}

	answers, err := h.svc.History(c.Request.Context(), c.Query("userId"), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, gin.H{"answers": answers})
}

type contestRequest struct {
	UserID        string `json:"userId"`
	AnswerID      string `json:"answerId" binding:"required"`
	ContestReason string `json:"contestReason" binding:"required"`
	Model         string `json:"model"`
}

// POST /api/diagnostics/contest
func (h *DiagnosticsHandler) Contest(c *gin.Context) {
	var req contestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	outcome, err := h.svc.Contest(c.Request.Context(), diagnostics.ContestParams{
		UserID:        req.UserID,
		AnswerID:      req.AnswerID,
		ContestReason: req.ContestReason,
		Model:         req.Model,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, outcome)
}

// GET /api/diagnostics/stats?userId=
func (h *DiagnosticsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), c.Query("userId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, stats)
}

// ModelsHandler exposes the model catalog and per-model availability.
type ModelsHandler struct {
	registry *llm.Registry
}

// NewModelsHandler creates the handler.
func NewModelsHandler(registry *llm.Registry) *ModelsHandler {
	return &ModelsHandler{registry: registry}
}

type modelEntry struct {
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Available bool   `json:"available"`
}

// GET /api/llm/models
func (h *ModelsHandler) List(c *gin.Context) {
	catalog := llm.Catalog()
	models := make([]modelEntry, 0, len(catalog))
	for _, m := range catalog {
		models = append(models, modelEntry{
			Name:      m.Name,
			Provider:  string(m.Family),
			Available: h.registry.Available(m.Name),
		})
	}
	RespondOK(c, gin.H{"models": models})
}
