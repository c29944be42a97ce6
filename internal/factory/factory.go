package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/pebbles-game/internal/api/stream"
	"github.com/mcoot/pebbles-game/internal/dependencies/clock"
	"github.com/mcoot/pebbles-game/internal/dependencies/random"
	"github.com/mcoot/pebbles-game/internal/services/bot"
	"github.com/mcoot/pebbles-game/internal/services/game"
	"github.com/mcoot/pebbles-game/internal/storage"
	"github.com/mcoot/pebbles-game/internal/storage/memory"
	redisstorage "github.com/mcoot/pebbles-game/internal/storage/redis"
	sqlitestorage "github.com/mcoot/pebbles-game/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Engine         *bot.Engine
	Machine        *game.Machine
	GameController *game.Controller
	Hub            *stream.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	app, err := newWithDependencies(store, clock.New(), random.New(), logger)
	if err != nil {
		closeStorage(store)
		return nil, err
	}
	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlitestorage.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	engine, err := bot.NewEngine(bot.DefaultStrategies(rnd), logger)
	if err != nil {
		return nil, err
	}
	machine := game.NewMachine(engine, rnd, clk, logger)
	controller := game.NewController(store, machine, logger)

	hub := stream.NewHub(logger)
	go hub.Run()
	controller.SetPublisher(hub)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Engine:         engine,
		Machine:        machine,
		GameController: controller,
		Hub:            hub,
	}, nil
}

// Close stops the event stream and releases the storage backend
func (a *App) Close() {
	a.Hub.Close()
	closeStorage(a.Storage)
}

func closeStorage(store storage.Storage) {
	if c, ok := store.(io.Closer); ok {
		_ = c.Close()
	}
}
