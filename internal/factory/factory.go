package factory

import (
	"errors"
	"io"
	"log/slog"

	"vidportal/internal/dependencies/clock"
	"vidportal/internal/services/account"
	"vidportal/internal/services/auth"
	"vidportal/internal/services/media"
	"vidportal/internal/storage"
	"vidportal/internal/storage/memory"
	redisstorage "vidportal/internal/storage/redis"
	"vidportal/internal/storage/sqlite"
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
	Clock clock.Clock

	// Services
	AuthService    *auth.Service
	AccountService *account.Service
	MediaService   *media.Service

	// Logger used by all components
	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// MediaDir is the directory video files are stored in
	MediaDir string
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// AccountConfig holds configuration for the account service (optional)
	AccountConfig account.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
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
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	mediaDir := cfg.MediaDir
	if mediaDir == "" {
		mediaDir = "videos"
	}

	return newWithDependencies(store, clock.New(), mediaDir, cfg.AuthConfig, cfg.AccountConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	mediaDir string,
	authCfg auth.Config,
	accountCfg account.Config,
	logger *slog.Logger,
) (*App, error) {
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}
	if accountCfg.SeedPassword == "" {
		accountCfg = account.DefaultConfig()
	}

	mediaService, err := media.New(mediaDir, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:        store,
		Clock:          clk,
		AuthService:    auth.New(store, clk, authCfg, logger),
		AccountService: account.New(store, clk, accountCfg, logger),
		MediaService:   mediaService,
		Logger:         logger,
	}, nil
}
