package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ivaneres/coffee/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive brew log",
	Long: `Open the interactive terminal interface. If a stored login token is
present you land on your bean list; otherwise on the login screen.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()

	ui := tui.New(app.client, app.session, app.cfg, app.logger)
	if err := ui.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
