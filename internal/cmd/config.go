package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ivaneres/coffee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("Config file:     %s\n", used)
	} else {
		fmt.Printf("Config file:     (none, defaults) would be %s\n", config.ConfigFile())
	}
	fmt.Printf("Server URL:      %s\n", cfg.Server.BaseURL)
	fmt.Printf("Request timeout: %s\n", cfg.Server.Timeout())
	fmt.Printf("Token file:      %s\n", cfg.Paths.ResolveTokenFile())
	fmt.Printf("Logging:         enabled=%t level=%s dir=%s\n",
		cfg.Logging.Enabled, cfg.Logging.Level, cfg.Paths.ResolveLogDir())
	return nil
}
