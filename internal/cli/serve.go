package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vidportal/internal/server"
	"vidportal/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portal HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			slog.SetDefault(logger)

			app, err := buildApp(logger)
			if err != nil {
				return err
			}
			defer app.Storage.Close()

			// Seed accounts exist before the first login
			if err := app.AccountService.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			router, err := web.NewRouter(web.RouterConfig{
				Logger:         logger,
				AuthService:    app.AuthService,
				AccountService: app.AccountService,
				MediaService:   app.MediaService,
			})
			if err != nil {
				return err
			}

			serverConfig := server.DefaultConfig()
			serverConfig.Port = cfg.Port
			srv := server.New(router, serverConfig, logger)

			// Handle graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				logger.Info("shutdown signal received")
				cancel()
			}()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			logger.Info("server started", slog.String("addr", srv.Addr()))

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return srv.Shutdown(context.Background())
			}
		},
	}
}
