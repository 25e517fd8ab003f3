package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ivaneres/coffee/internal/api"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change your default equipment",
	Long: `Show or change the default machine and grinder. Defaults pre-fill new
record forms; pass an empty string to clear one.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

var (
	defaultMachineFlag string
	defaultGrinderFlag string
)

func init() {
	settingsCmd.Flags().StringVar(&defaultMachineFlag, "machine", "", "default machine")
	settingsCmd.Flags().StringVar(&defaultGrinderFlag, "grinder", "", "default grinder")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	settings, err := app.client.Settings(cmd.Context())
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("machine") || cmd.Flags().Changed("grinder") {
		req := api.UserSettingsUpdate{
			DefaultMachine: settings.DefaultMachine,
			DefaultGrinder: settings.DefaultGrinder,
		}
		// A changed flag is always sent, even when empty: the server's
		// partial update leaves omitted fields unchanged, so clearing a
		// default requires an explicit "".
		if cmd.Flags().Changed("machine") {
			req.DefaultMachine = &defaultMachineFlag
		}
		if cmd.Flags().Changed("grinder") {
			req.DefaultGrinder = &defaultGrinderFlag
		}
		settings, err = app.client.UpdateSettings(cmd.Context(), req)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Default machine: %s\n", orDash(settings.DefaultMachine))
	fmt.Printf("Default grinder: %s\n", orDash(settings.DefaultGrinder))
	return nil
}
