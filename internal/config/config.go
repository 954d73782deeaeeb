// Package config loads lithuaningo settings from a YAML file and
// LITHUANINGO_* environment variables.
package config

import (
	"time"

	"github.com/adilsezer/lithuaningo-sub000/internal/llm"
)

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Quiz    QuizConfig    `yaml:"quiz"`
	LLM     llm.Config    `yaml:"llm"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LITHUANINGO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LITHUANINGO_LOG_FORMAT" env-default:"text"`
}

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// StoreConfig selects where quiz state lives. The SQLite database also holds
// the answer and LLM event logs, so it is opened for either backend.
type StoreConfig struct {
	Backend  string `yaml:"backend"   env:"LITHUANINGO_STORE_BACKEND" env-default:"sqlite"`
	Path     string `yaml:"path"      env:"LITHUANINGO_DB"`
	RedisURL string `yaml:"redis_url" env:"LITHUANINGO_REDIS_URL"    env-default:"redis://localhost:6379/0"`

	// RedisPrefix namespaces every key written to Redis.
	RedisPrefix string `yaml:"redis_prefix" env:"LITHUANINGO_REDIS_PREFIX" env-default:"lithuaningo:"`

	// DailyTTL is the expiry of date-scoped quiz keys in Redis.
	DailyTTL time.Duration `yaml:"daily_ttl" env:"LITHUANINGO_REDIS_DAILY_TTL" env-default:"48h"`
}

// Lexicon sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// LexiconConfig selects where words and sentences come from.
type LexiconConfig struct {
	Source      string `yaml:"source"       env:"LITHUANINGO_LEXICON_SOURCE" env-default:"embedded"`
	Path        string `yaml:"path"         env:"LITHUANINGO_LEXICON_PATH"`
	PostgresDSN string `yaml:"postgres_dsn" env:"LITHUANINGO_POSTGRES_DSN"`
}

// QuizConfig holds session generation settings.
type QuizConfig struct {
	SessionSize int `yaml:"session_size" env:"LITHUANINGO_QUIZ_SIZE"       env-default:"10"`
	ResetHour   int `yaml:"reset_hour"   env:"LITHUANINGO_QUIZ_RESET_HOUR" env-default:"2"`

	// Seed fixes question generation. Zero picks a random seed per process.
	Seed uint64 `yaml:"seed" env:"LITHUANINGO_QUIZ_SEED" env-default:"0"`

	// Explanations asks the LLM to explain missed questions when a provider
	// is configured.
	Explanations bool `yaml:"explanations" env:"LITHUANINGO_QUIZ_EXPLANATIONS" env-default:"true"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"LITHUANINGO_SERVER_ADDR"             env-default:"127.0.0.1:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"LITHUANINGO_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"LITHUANINGO_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"LITHUANINGO_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}
