package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vidportal/internal/config"
	"vidportal/internal/factory"
	redisstorage "vidportal/internal/storage/redis"
)

var (
	cfgPath string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vidportal",
		Short: "Self-hosted video-sharing portal",
		Long: `vidportal is a small self-hosted video-sharing portal.

Admins upload videos into a shared media directory and manage accounts;
authenticated users browse and stream them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			return err
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config/app.yaml", "Config file path")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newUserCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger with JSON output
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// buildApp wires the application from the loaded config
func buildApp(logger *slog.Logger) (*factory.App, error) {
	factoryCfg := factory.Config{
		MediaDir:    cfg.MediaDir,
		Logger:      logger,
		StorageType: cfg.StorageType,
		SQLitePath:  cfg.SQLitePath,
	}
	factoryCfg.AccountConfig.SeedPassword = cfg.SeedPassword

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			redisCfg.URL = cfg.RedisURL
		}
		factoryCfg.RedisConfig = &redisCfg
	}

	return factory.New(factoryCfg)
}
