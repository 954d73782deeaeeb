// Package app builds the object graph shared by the CLI commands and the
// HTTP server from a loaded configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adilsezer/lithuaningo-sub000/internal/config"
	"github.com/adilsezer/lithuaningo-sub000/internal/datekey"
	"github.com/adilsezer/lithuaningo-sub000/internal/explain"
	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon/postgres"
	"github.com/adilsezer/lithuaningo-sub000/internal/llm"
	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/session"
	"github.com/adilsezer/lithuaningo-sub000/internal/store"
	"github.com/adilsezer/lithuaningo-sub000/internal/store/rediskv"
)

// Options override configuration values from the command line.
type Options struct {
	// DBPath overrides store.path.
	DBPath string
}

// App holds the wired dependencies. Close releases them.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *store.Store
	KV       store.KV
	Repo     lexicon.Repository
	Dates    *datekey.Daily
	Provider llm.Provider
	Engine   *session.Engine

	closers []func() error
}

// New opens the store, the quiz KV backend and the lexicon source, builds the
// optional LLM provider and the session engine.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{Config: cfg, Logger: logger}

	if err := a.openStore(cfg.Store, opts); err != nil {
		return nil, err
	}
	if err := a.openKV(ctx, cfg.Store); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.openLexicon(ctx, cfg.Lexicon); err != nil {
		a.Close()
		return nil, err
	}

	a.Dates = datekey.NewDaily(cfg.Quiz.ResetHour)
	a.buildProvider(ctx, cfg.LLM)

	engineCfg := session.Config{
		Repo:        a.Repo,
		KV:          a.KV,
		Dates:       a.Dates,
		Generator:   quizgen.NewGenerator(logger),
		SessionSize: cfg.Quiz.SessionSize,
		Seed:        cfg.Quiz.Seed,
		Recorder:    a.Store.EventRepo(),
		Logger:      logger,
	}
	if a.Provider != nil && cfg.Quiz.Explanations {
		provider := a.Provider
		engineCfg.NewExplainer = func() session.Explainer {
			return explain.NewService(provider, explain.DefaultConfig())
		}
	}
	a.Engine = session.NewEngine(engineCfg)

	logger.Debug("app ready", "store", cfg.Store.Backend, "lexicon", cfg.Lexicon.Source,
		"llm", cfg.LLM.Provider, "reset_hour", cfg.Quiz.ResetHour)
	return a, nil
}

func (a *App) openStore(cfg config.StoreConfig, opts Options) error {
	path := opts.DBPath
	if path == "" {
		path = cfg.Path
	}
	var err error
	if path == "" {
		path, err = store.DefaultDBPath()
	} else {
		err = store.EnsureDir(path)
	}
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.Store = st
	a.closers = append(a.closers, st.Close)
	return nil
}

func (a *App) openKV(ctx context.Context, cfg config.StoreConfig) error {
	if cfg.Backend != config.BackendRedis {
		a.KV = a.Store.KV()
		return nil
	}

	kv, err := rediskv.Open(ctx, cfg.RedisURL, cfg.RedisPrefix)
	if err != nil {
		return err
	}
	kv.TTLFor = DailyTTL(cfg.DailyTTL)
	a.KV = kv
	a.closers = append(a.closers, kv.Close)
	return nil
}

// DailyTTL expires date-scoped quiz keys after ttl and keeps the rest.
func DailyTTL(ttl time.Duration) func(string) time.Duration {
	return func(key string) time.Duration {
		if session.IsDateScoped(key) {
			return ttl
		}
		return 0
	}
}

func (a *App) openLexicon(ctx context.Context, cfg config.LexiconConfig) error {
	switch cfg.Source {
	case config.SourceFile:
		a.Repo = lexicon.NewFileRepository(cfg.Path)
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		a.Repo = postgres.NewRepository(pool)
		a.closers = append(a.closers, closePool(pool))
	default:
		a.Repo = lexicon.NewEmbeddedRepository()
	}
	return nil
}

func closePool(pool *pgxpool.Pool) func() error {
	return func() error {
		pool.Close()
		return nil
	}
}

// buildProvider leaves Provider nil when no LLM is configured or it cannot
// be created; the quiz works without it.
func (a *App) buildProvider(ctx context.Context, cfg llm.Config) {
	if !cfg.Enabled() {
		if found, ok := llm.DiscoverConfig(); ok {
			cfg = found
		} else {
			return
		}
	}
	provider, err := llm.NewProvider(ctx, cfg, a.Store.EventRepo(), a.Logger)
	if err != nil {
		a.Logger.Warn("llm provider unavailable, explanations disabled", "provider", cfg.Provider, "err", err)
		return
	}
	a.Provider = provider
}

// Close releases everything New opened, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
