package diagnostics

// Config holds generation and grading limits.
type Config struct {
	// MaxTokens caps a single generation or grading response.
	MaxTokens int

	// Temperature for question generation. Grading and contest runs use
	// temperature 0 regardless, for reproducibility.
	Temperature float64

	// MaxRecentStems limits how many prior stems ride along in the
	// generation prompt for dedup.
	MaxRecentStems int

	// HistoryLimit caps ledger reads for history and stats.
	HistoryLimit int
}

// DefaultConfig returns conservative defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      1200,
		Temperature:    0.7,
		MaxRecentStems: 10,
		HistoryLimit:   200,
	}
}
