package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vidportal/internal/model"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage portal accounts",
	}
	cmd.AddCommand(newUserAddCmd())
	cmd.AddCommand(newUserListCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add <username> <password>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			app, err := buildApp(logger)
			if err != nil {
				return err
			}
			defer app.Storage.Close()

			account, err := app.AccountService.Create(cmd.Context(), args[0], args[1], model.Role(role))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created account %d (%s, %s)\n",
				account.ID, account.Username, account.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(model.RoleUser), "account role (admin or user)")
	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			app, err := buildApp(logger)
			if err != nil {
				return err
			}
			defer app.Storage.Close()

			accounts, err := app.AccountService.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE")
			for _, a := range accounts {
				fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Username, a.Role)
			}
			return w.Flush()
		},
	}
}
