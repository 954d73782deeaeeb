package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks enumerations and ranges. Load calls it automatically.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	switch c.Store.Backend {
	case BackendSQLite:
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("store.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("store.backend must be sqlite or redis (got %q)", c.Store.Backend)
	}

	switch c.Lexicon.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Lexicon.Path == "" {
			return fmt.Errorf("lexicon.path is required for the file source")
		}
	case SourcePostgres:
		if c.Lexicon.PostgresDSN == "" {
			return fmt.Errorf("lexicon.postgres_dsn is required for the postgres source")
		}
	default:
		return fmt.Errorf("lexicon.source must be embedded, file or postgres (got %q)", c.Lexicon.Source)
	}

	if c.Quiz.SessionSize < 1 {
		return fmt.Errorf("quiz.session_size must be >= 1 (got %d)", c.Quiz.SessionSize)
	}
	if c.Quiz.ResetHour < 0 || c.Quiz.ResetHour > 23 {
		return fmt.Errorf("quiz.reset_hour must be in [0, 23] (got %d)", c.Quiz.ResetHour)
	}

	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}
