package diagnostics

import (
	"context"

	"github.com/dspiliot/agora/internal/store"
)

// Stats rebuilds the user's session statistics from the answer ledger.
func (s *Service) Stats(ctx context.Context, userID string) (*SessionStats, error) {
	history, err := s.answers.History(ctx, userOrDefault(userID), store.QueryOpts{Limit: s.cfg.HistoryLimit})
	if err != nil {
		return nil, err
	}
	return buildStats(history), nil
}

// buildStats aggregates ledger rows (most recent first) into session stats.
func buildStats(history []*store.Answer) *SessionStats {
	stats := &SessionStats{
		TopicsProgress: map[string]*TopicProgress{},
	}

	var totalTime int64
	streak := 0

	// Streaks run chronologically, so walk oldest to newest.
	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		correct := answerCorrect(a)

		stats.TotalQuestions++
		if correct {
			stats.CorrectAnswers++
			streak++
			if streak > stats.BestStreak {
				stats.BestStreak = streak
			}
		} else {
			streak = 0
		}
		totalTime += int64(a.TimeMs)

		if a.Topic != "" {
			tp := stats.TopicsProgress[a.Topic]
			if tp == nil {
				tp = &TopicProgress{}
				stats.TopicsProgress[a.Topic] = tp
			}
			tp.Attempted++
			if correct {
				tp.Correct++
			}
		}
	}

	stats.CurrentStreak = streak
	if stats.TotalQuestions > 0 {
		stats.AverageTimeMs = float64(totalTime) / float64(stats.TotalQuestions)
	}

	return stats
}

// answerCorrect judges a ledger row by its effective score: an accepted
// contest supersedes the original grade, a denied one leaves it standing.
func answerCorrect(a *store.Answer) bool {
	score := a.Score
	if a.IsContested && a.ContestedVerdict == string(VerdictContestAccepted) {
		score = a.ContestedScore
	}
	return VerdictFor(score) == VerdictCorrect
}
