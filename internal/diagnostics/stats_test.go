package diagnostics

import (
	"testing"

	"github.com/dspiliot/agora/internal/store"
)

// row builds a ledger row for stats tests. History is most recent first,
// so tests list rows newest to oldest.
func row(topic string, score float64, timeMs int) *store.Answer {
	return &store.Answer{
		Topic:   topic,
		Score:   score,
		Verdict: string(VerdictFor(score)),
		TimeMs:  timeMs,
	}
}

func TestBuildStats_Empty(t *testing.T) {
	got := buildStats(nil)

	if got.TotalQuestions != 0 || got.CorrectAnswers != 0 {
		t.Errorf("got %+v, want zeroed stats", got)
	}
	if got.AverageTimeMs != 0 {
		t.Errorf("got average time %v, want 0", got.AverageTimeMs)
	}
	if got.TopicsProgress == nil {
		t.Error("topics progress map is nil")
	}
}

func TestBuildStats_CountsAndStreaks(t *testing.T) {
	// Newest first: chronological order is 0.9, 0.9, 0.2, 0.9, 0.9, 0.9.
	history := []*store.Answer{
		row("Plato's Cave", 0.9, 1000),
		row("Plato's Cave", 0.9, 1000),
		row("Utilitarianism", 0.9, 4000),
		row("Utilitarianism", 0.2, 2000),
		row("Gettier Problems", 0.9, 1000),
		row("Gettier Problems", 0.9, 3000),
	}

	got := buildStats(history)

	if got.TotalQuestions != 6 {
		t.Errorf("got %d total, want 6", got.TotalQuestions)
	}
	if got.CorrectAnswers != 5 {
		t.Errorf("got %d correct, want 5", got.CorrectAnswers)
	}
	if got.CurrentStreak != 3 {
		t.Errorf("got current streak %d, want 3", got.CurrentStreak)
	}
	if got.BestStreak != 3 {
		t.Errorf("got best streak %d, want 3", got.BestStreak)
	}
	if got.AverageTimeMs != 2000 {
		t.Errorf("got average time %v, want 2000", got.AverageTimeMs)
	}

	tp := got.TopicsProgress["Utilitarianism"]
	if tp == nil || tp.Attempted != 2 || tp.Correct != 1 {
		t.Errorf("got utilitarianism progress %+v, want 1/2", tp)
	}
}

func TestBuildStats_PartialIsNotCorrect(t *testing.T) {
	got := buildStats([]*store.Answer{row("Frankfurt Cases", 0.6, 0)})

	if got.CorrectAnswers != 0 {
		t.Errorf("got %d correct, want 0 for a partial score", got.CorrectAnswers)
	}
	if got.TopicsProgress["Frankfurt Cases"].Attempted != 1 {
		t.Error("partial answer not counted as attempted")
	}
}

func TestBuildStats_AcceptedContestSupersedes(t *testing.T) {
	a := row("Ship of Theseus", 0.4, 0)
	a.IsContested = true
	a.ContestedVerdict = string(VerdictContestAccepted)
	a.ContestedScore = 0.9

	got := buildStats([]*store.Answer{a})

	if got.CorrectAnswers != 1 {
		t.Errorf("got %d correct, want 1 after accepted contest", got.CorrectAnswers)
	}
}

func TestBuildStats_DeniedContestStands(t *testing.T) {
	a := row("Ship of Theseus", 0.9, 0)
	a.IsContested = true
	a.ContestedVerdict = string(VerdictContestDenied)
	a.ContestedScore = 0.9

	got := buildStats([]*store.Answer{a})

	if got.CorrectAnswers != 1 {
		t.Errorf("got %d correct, want 1 when a denied contest repeats a passing score", got.CorrectAnswers)
	}
}
