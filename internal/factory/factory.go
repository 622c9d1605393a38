package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/zindanrpg/zindan-go/internal/dependencies/clock"
	"github.com/zindanrpg/zindan-go/internal/services/auth"
	"github.com/zindanrpg/zindan-go/internal/services/energy"
	"github.com/zindanrpg/zindan-go/internal/services/hospital"
	"github.com/zindanrpg/zindan-go/internal/storage"
	"github.com/zindanrpg/zindan-go/internal/storage/memory"
	postgresstorage "github.com/zindanrpg/zindan-go/internal/storage/postgres"
	redisstorage "github.com/zindanrpg/zindan-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService     *auth.Service
	HospitalService *hospital.Service
	EnergyService   *energy.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory", "redis" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresURL is the Postgres connection string (required if StorageType is "postgres")
	PostgresURL string
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
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
	case StorageTypePostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("PostgresURL required when StorageType is postgres")
		}
		pgStore, err := postgresstorage.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := pgStore.EnsureSchema(ctx); err != nil {
			pgStore.Close()
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'postgres'")
	}

	clk := clock.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, authCfg, logger)
	hospitalService := hospital.New(store, clk, logger)
	energyService := energy.New(store, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		AuthService:     authService,
		HospitalService: hospitalService,
		EnergyService:   energyService,
	}
}
