package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.requireAuth(); err != nil {
		return err
	}
	if err := app.session.RefreshUser(cmd.Context()); err != nil {
		return err
	}

	user := app.session.CurrentUser()
	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	return nil
}
