package cli

import (
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the built-in accounts if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			app, err := buildApp(logger)
			if err != nil {
				return err
			}
			defer app.Storage.Close()

			if err := app.AccountService.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			logger.Info("seed accounts ensured")
			return nil
		},
	}
}
