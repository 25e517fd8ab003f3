// Package cmd wires the command-line surface of the coffee client. The
// bare `coffee` command launches the interactive TUI; subcommands expose
// the same operations for scripting.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ivaneres/coffee/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "coffee",
	Short: "Espresso brew log client",
	Long: `Coffee is a terminal client for an espresso brew-log server. It tracks
coffee beans and the shots pulled from them: equipment, dose, extraction
time, yield and taste ratings.

Run without arguments to open the interactive interface, or use the
subcommands for scripting.`,
	RunE: runStart,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/coffee/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "server base URL (overrides config)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("server.base_url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/coffee")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COFFEE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., COFFEE_SERVER_BASE_URL for server.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
