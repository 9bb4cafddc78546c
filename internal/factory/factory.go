package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/tvasilyev/rosterbook/internal/dependencies/clock"
	"github.com/tvasilyev/rosterbook/internal/dependencies/random"
	"github.com/tvasilyev/rosterbook/internal/services/roster"
	"github.com/tvasilyev/rosterbook/internal/storage"
	githubstorage "github.com/tvasilyev/rosterbook/internal/storage/github"
	"github.com/tvasilyev/rosterbook/internal/storage/memory"
	redisstorage "github.com/tvasilyev/rosterbook/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeGithub = "github"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.RecordStore

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RosterManager *roster.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the record store backend ("memory", "redis" or "github")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// GithubConfig holds remote document settings (required if StorageType is "github")
	GithubConfig *githubstorage.Config
}

// New creates a new application with all dependencies wired and the
// roster hydrated from the selected store.
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.RecordStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeGithub:
		if cfg.GithubConfig == nil {
			return nil, errors.New("GithubConfig required when StorageType is github")
		}
		store = githubstorage.New(*cfg.GithubConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'github'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)
	if err := app.RosterManager.Load(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// newWithDependencies wires an App from explicit dependencies. The
// roster manager is not yet hydrated; callers must invoke Load.
func newWithDependencies(store storage.RecordStore, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Store:         store,
		Clock:         clk,
		Random:        rnd,
		RosterManager: roster.New(store, clk, rnd, logger),
	}
}
