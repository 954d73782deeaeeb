package explain

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.4,
	}
}
