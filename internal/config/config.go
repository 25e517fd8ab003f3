package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete coffee client configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// ServerConfig controls how the client reaches the brew-log API
type ServerConfig struct {
	// BaseURL is the root URL of the brew-log API, without the /api prefix
	// (e.g. "http://localhost:8000")
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout in seconds (0 = transport default)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// MaxListHeight limits how many rows a list view renders before scrolling
	MaxListHeight int `mapstructure:"max_list_height"`
	// NotesWidth is the column width notes are truncated to in list rows
	NotesWidth int `mapstructure:"notes_width"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// PathsConfig controls where the client stores local state
type PathsConfig struct {
	// TokenFile is the file holding the bearer token between runs.
	// If empty, defaults to "token" inside the config directory.
	// Supports ~ for home directory expansion.
	TokenFile string `mapstructure:"token_file"`

	// LogDir is the directory debug logs are written to.
	// If empty, defaults to "logs" inside the config directory.
	LogDir string `mapstructure:"log_dir"`
}

// ResolveTokenFile returns the resolved token file path.
// If TokenFile is empty, it returns the default path inside the config directory.
// If TokenFile starts with ~, it expands to the user's home directory.
func (p *PathsConfig) ResolveTokenFile() string {
	if p.TokenFile == "" {
		return filepath.Join(ConfigDir(), "token")
	}
	return expandHome(p.TokenFile)
}

// ResolveLogDir returns the resolved log directory path.
func (p *PathsConfig) ResolveLogDir() string {
	if p.LogDir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}
	return expandHome(p.LogDir)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 0, // Rely on transport defaults
		},
		TUI: TUIConfig{
			MaxListHeight: 20,
			NotesWidth:    48,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
		Paths: PathsConfig{
			TokenFile: "", // Empty means use default: {config dir}/token
			LogDir:    "", // Empty means use default: {config dir}/logs
		},
	}
}

// Timeout returns the per-request timeout as a time.Duration (0 means transport default)
func (s *ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Server defaults
	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.timeout_seconds", defaults.Server.TimeoutSeconds)

	// TUI defaults
	viper.SetDefault("tui.max_list_height", defaults.TUI.MaxListHeight)
	viper.SetDefault("tui.notes_width", defaults.TUI.NotesWidth)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	// Paths defaults
	viper.SetDefault("paths.token_file", defaults.Paths.TokenFile)
	viper.SetDefault("paths.log_dir", defaults.Paths.LogDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "coffee")
	}
	// Fall back to ~/.config/coffee
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coffee"
	}
	return filepath.Join(home, ".config", "coffee")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
