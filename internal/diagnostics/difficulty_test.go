package diagnostics

import "testing"

func entry(score float64) TrendEntry {
	return TrendEntry{Correct: score >= partialThreshold, Score: &score}
}

func entries(scores ...float64) []TrendEntry {
	out := make([]TrendEntry, len(scores))
	for i, s := range scores {
		out[i] = entry(s)
	}
	return out
}

func TestEstimateDifficulty_EmptyHistory(t *testing.T) {
	tests := []struct {
		requested string
		want      Difficulty
	}{
		{"beginner", DifficultyBeginner},
		{"intermediate", DifficultyIntermediate},
		{"advanced", DifficultyAdvanced},
		{LevelAdaptive, DifficultyBeginner},
		{"", DifficultyBeginner},
		{"legendary", DifficultyBeginner},
	}
	for _, tt := range tests {
		if got := EstimateDifficulty(nil, tt.requested); got != tt.want {
			t.Errorf("requested %q: got %s, want %s", tt.requested, got, tt.want)
		}
	}
}

func TestEstimateDifficulty_StrongHistoryEscalates(t *testing.T) {
	// Recent and overall accuracy both 0.9.
	history := entries(0.9, 1.0, 0.85, 0.95, 0.8)

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyAdvanced {
		t.Errorf("got %s, want %s", got, DifficultyAdvanced)
	}
}

func TestEstimateDifficulty_AccuracyRuleWithoutStreak(t *testing.T) {
	// Recent mean 0.8, overall 0.8, but the second entry breaks the
	// streak, so the accuracy rule alone decides.
	history := entries(0.8, 0.45, 1.0, 1.0, 0.75)

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyAdvanced {
		t.Errorf("got %s, want %s", got, DifficultyAdvanced)
	}
}

func TestEstimateDifficulty_MiddlingHistory(t *testing.T) {
	history := entries(0.7, 0.3, 0.7, 0.7, 0.7)

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyIntermediate {
		t.Errorf("got %s, want %s", got, DifficultyIntermediate)
	}
}

func TestEstimateDifficulty_PoorRecentDropsToBeginner(t *testing.T) {
	// Recent mean 0.16, well under the 0.4 cutoff despite a strong tail.
	history := entries(0.0, 0.2, 0.0, 0.3, 0.3, 0.9, 0.9)

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyBeginner {
		t.Errorf("got %s, want %s", got, DifficultyBeginner)
	}
}

func TestEstimateDifficulty_RecentExactlyAtCutoff(t *testing.T) {
	// Recent mean exactly 0.4 does not trigger the strict < 0.4 drop;
	// overall keeps the history at intermediate.
	history := entries(0.0, 0.2, 0.0, 0.9, 0.9, 0.9, 0.9)

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyIntermediate {
		t.Errorf("got %s, want %s", got, DifficultyIntermediate)
	}
}

func TestEstimateDifficulty_StreakOverridesAccuracy(t *testing.T) {
	// Three straight passes on top of a weak older record still escalate.
	history := entries(0.6, 0.6, 0.6, 0.2, 0.2, 0.9, 0.2, 0.9)

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyAdvanced {
		t.Errorf("got %s, want %s", got, DifficultyAdvanced)
	}
}

func TestEstimateDifficulty_RecentWindowIsFive(t *testing.T) {
	// Five perfect recents over a long tail of failures: recent accuracy
	// must ignore the tail.
	history := entries(1, 1, 1, 1, 1, 0, 0, 0, 0, 0)

	// Overall accuracy is 0.5 < 0.7, so the accuracy rules alone would
	// give intermediate; the 5-streak escalates.
	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyAdvanced {
		t.Errorf("got %s, want %s", got, DifficultyAdvanced)
	}
}

func TestEstimateDifficulty_CorrectBoolFallback(t *testing.T) {
	// Entries without a numeric score fall back to the correct flag.
	history := []TrendEntry{
		{Correct: true},
		{Correct: true},
		{Correct: true},
	}

	if got := EstimateDifficulty(history, LevelAdaptive); got != DifficultyAdvanced {
		t.Errorf("got %s, want %s", got, DifficultyAdvanced)
	}
}

func TestCorrectStreak(t *testing.T) {
	tests := []struct {
		name    string
		history []TrendEntry
		want    int
	}{
		{"empty", nil, 0},
		{"all passing", entries(1, 0.7, 0.5), 3},
		{"broken immediately", entries(0.2, 1, 1), 0},
		{"broken mid-run", entries(0.9, 0.6, 0.49, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := correctStreak(tt.history); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
