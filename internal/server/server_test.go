package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dspiliot/agora/internal/diagnostics"
	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/logger"
	"github.com/dspiliot/agora/internal/store"
)

type stubSource struct {
	p   llm.Provider
	err error
}

func (s stubSource) Provider(context.Context, string) (llm.Provider, error) {
	return s.p, s.err
}

func newTestRouter(t *testing.T, src diagnostics.ProviderSource) *gin.Engine {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := diagnostics.NewService(src, st.AnswerRepo(), logger.Nop())
	return NewRouter(RouterConfig{
		Diagnostics: NewDiagnosticsHandler(svc, logger.Nop()),
		Models:      NewModelsHandler(llm.NewRegistry(llm.DefaultConfig(), nil)),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

const questionJSON = `{
	"type": "mcq",
	"stem": "Which thinker framed the categorical imperative?",
	"options": {"A": "Mill", "B": "Kant", "C": "Hume", "D": "Bentham"},
	"answer_key": "B",
	"model_answer": "",
	"concept_tags": ["deontology"],
	"difficulty": "beginner",
	"points": 1
}`

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	w := doJSON(t, router, http.MethodGet, "/healthcheck", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
}

func TestNewQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(questionJSON)})
	router := newTestRouter(t, stubSource{p: mock})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/new-question", gin.H{
		"topic": "The Categorical Imperative",
		"level": "adaptive",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
	}

	resp := decode[struct {
		Question diagnostics.Question `json:"question"`
	}](t, w)
	if resp.Question.Topic != "The Categorical Imperative" {
		t.Errorf("got topic %q", resp.Question.Topic)
	}
	if resp.Question.AnswerKey != "B" {
		t.Errorf("got answer key %q, want B", resp.Question.AnswerKey)
	}
}

func TestNewQuestion_MissingKeyIs400(t *testing.T) {
	router := newTestRouter(t, stubSource{err: &llm.ErrMissingAPIKey{Provider: "openai", EnvVar: llm.EnvOpenAIKey}})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/new-question", gin.H{"model": "gpt-4o"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	resp := decode[ErrorEnvelope](t, w)
	if resp.Error.Code != "missing_api_key" {
		t.Errorf("got code %q, want missing_api_key", resp.Error.Code)
	}
}

func TestNewQuestion_RateLimitIs429(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	router := newTestRouter(t, stubSource{p: mock})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/new-question", gin.H{})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}
}

func TestNewQuestion_UpstreamIs502(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUpstream{Provider: "anthropic", StatusCode: 500}})
	router := newTestRouter(t, stubSource{p: mock})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/new-question", gin.H{})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502", w.Code)
	}
}

func TestGrade_MalformedBodyIs400(t *testing.T) {
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	req := httptest.NewRequest(http.MethodPost, "/api/diagnostics/grade", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestGrade_FlatBody(t *testing.T) {
	// The grade body carries the question fields at the top level, not
	// nested under a "question" key.
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/grade", gin.H{
		"type":          "mcq",
		"stem":          "Which school holds that the right act maximizes overall happiness?",
		"options":       gin.H{"A": "Utilitarianism", "B": "Deontology", "C": "Virtue ethics", "D": "Contractualism"},
		"answerKey":     "A",
		"studentAnswer": "A",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
	}
	graded := decode[diagnostics.GradeOutcome](t, w)
	if graded.Verdict != diagnostics.VerdictCorrect || graded.Score != 1.0 {
		t.Errorf("got %s/%v, want correct/1.0", graded.Verdict, graded.Score)
	}
}

func TestGrade_UnknownTypeIs400(t *testing.T) {
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/grade", gin.H{
		"type":          "essay",
		"stem":          "Discuss.",
		"studentAnswer": "At length.",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	resp := decode[ErrorEnvelope](t, w)
	if resp.Error.Code != "bad_request" {
		t.Errorf("got code %q, want bad_request", resp.Error.Code)
	}
}

func TestGradeHistoryContestFlow(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"partial","score":0.5,"rationale":"Halfway there."}`)},
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"contest_denied","score":0.5,"rationale":"The grade stands."}`)},
	)
	router := newTestRouter(t, stubSource{p: mock})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/grade", gin.H{
		"userId":        "student-1",
		"id":            "q-1",
		"type":          "short",
		"stem":          "Why does Frankfurt think alternative possibilities are not required for moral responsibility?",
		"modelAnswer":   "Because an agent can be responsible even when a counterfactual intervener would have forced the same choice.",
		"topic":         "Frankfurt Cases",
		"difficulty":    "advanced",
		"studentAnswer": "Because the agent acts on their own, the intervener never acts.",
		"timeMs":        9000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("grade: got status %d, body %s", w.Code, w.Body.String())
	}
	graded := decode[diagnostics.GradeOutcome](t, w)
	if graded.AnswerID == "" {
		t.Fatal("grade returned no answer id")
	}
	if graded.Verdict != diagnostics.VerdictPartial {
		t.Errorf("got verdict %s, want partial", graded.Verdict)
	}

	w = doJSON(t, router, http.MethodGet, "/api/diagnostics/history?userId=student-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: got status %d", w.Code)
	}
	hist := decode[struct {
		Answers []store.Answer `json:"answers"`
	}](t, w)
	if len(hist.Answers) != 1 || hist.Answers[0].AnswerID != graded.AnswerID {
		t.Fatalf("history mismatch: %+v", hist.Answers)
	}

	contestBody := gin.H{
		"userId":        "student-1",
		"answerId":      graded.AnswerID,
		"contestReason": "My answer states exactly that.",
	}
	w = doJSON(t, router, http.MethodPost, "/api/diagnostics/contest", contestBody)
	if w.Code != http.StatusOK {
		t.Fatalf("contest: got status %d, body %s", w.Code, w.Body.String())
	}
	outcome := decode[diagnostics.ContestOutcome](t, w)
	if outcome.Verdict != diagnostics.VerdictContestDenied {
		t.Errorf("got verdict %s, want contest_denied", outcome.Verdict)
	}

	w = doJSON(t, router, http.MethodPost, "/api/diagnostics/contest", contestBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("second contest: got status %d, want 409", w.Code)
	}
	resp := decode[ErrorEnvelope](t, w)
	if resp.Error.Code != "already_contested" {
		t.Errorf("got code %q, want already_contested", resp.Error.Code)
	}
}

func TestContest_UnknownAnswerIs404(t *testing.T) {
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/contest", gin.H{
		"answerId":      "missing",
		"contestReason": "please",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestStats(t *testing.T) {
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	w := doJSON(t, router, http.MethodPost, "/api/diagnostics/grade", gin.H{
		"userId":        "student-1",
		"type":          "mcq",
		"stem":          "Who wrote the Groundwork of the Metaphysics of Morals?",
		"options":       gin.H{"A": "Kant", "B": "Mill"},
		"answerKey":     "A",
		"topic":         "The Categorical Imperative",
		"studentAnswer": "A",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("grade: got status %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/diagnostics/stats?userId=student-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: got status %d", w.Code)
	}
	stats := decode[diagnostics.SessionStats](t, w)
	if stats.TotalQuestions != 1 || stats.CorrectAnswers != 1 {
		t.Errorf("got stats %+v, want 1/1", stats)
	}
}

func TestModelsList(t *testing.T) {
	router := newTestRouter(t, stubSource{p: llm.NewMockProvider()})

	w := doJSON(t, router, http.MethodGet, "/api/llm/models", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	resp := decode[struct {
		Models []modelEntry `json:"models"`
	}](t, w)
	if len(resp.Models) == 0 {
		t.Fatal("model catalog empty")
	}
	for _, m := range resp.Models {
		if m.Name == "gpt-4o" && m.Available {
			t.Error("gpt-4o reported available without a key")
		}
	}
}
