package diagnostics

// recentWindow is how many answers "recent accuracy" looks at.
const recentWindow = 5

// EstimateDifficulty picks the next question's difficulty band from the
// graded history, most recent entry first. Pure function of its inputs.
//
// With no history the caller's requested level wins; "adaptive" (or an
// unrecognized level) starts at beginner. Otherwise accuracy rules pick a
// band and a consecutive-correct streak refines it: three or more straight
// correct answers escalate to advanced, a cold streak with poor recent
// accuracy drops to beginner.
func EstimateDifficulty(history []TrendEntry, requested string) Difficulty {
	if len(history) == 0 {
		switch Difficulty(requested) {
		case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
			return Difficulty(requested)
		default:
			return DifficultyBeginner
		}
	}

	recent := history
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	recentAccuracy := meanScore(recent)
	overallAccuracy := meanScore(history)

	var level Difficulty
	switch {
	case recentAccuracy >= 0.8 && overallAccuracy >= 0.7:
		level = DifficultyAdvanced
	case recentAccuracy >= 0.6 && overallAccuracy >= 0.5:
		level = DifficultyIntermediate
	case recentAccuracy < 0.4 || overallAccuracy < 0.4:
		level = DifficultyBeginner
	default:
		level = DifficultyIntermediate
	}

	streak := correctStreak(history)
	if streak >= 3 {
		level = DifficultyAdvanced
	}
	if streak == 0 && recentAccuracy < 0.3 {
		level = DifficultyBeginner
	}

	return level
}

// correctStreak counts consecutive entries from the most recent backward
// until a score below the partial threshold breaks the run.
func correctStreak(history []TrendEntry) int {
	streak := 0
	for _, e := range history {
		if e.scoreOf() < partialThreshold {
			break
		}
		streak++
	}
	return streak
}

func meanScore(entries []TrendEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.scoreOf()
	}
	return sum / float64(len(entries))
}
