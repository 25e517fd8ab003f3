package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return Default()
}

func fieldErrors(errs []ValidationError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		timeout   int
		wantField string
	}{
		{name: "valid http", baseURL: "http://localhost:8000"},
		{name: "valid https", baseURL: "https://brew.example.com"},
		{name: "missing scheme", baseURL: "localhost:8000", wantField: "server.base_url"},
		{name: "relative path", baseURL: "/api", wantField: "server.base_url"},
		{name: "bad scheme", baseURL: "ftp://example.com", wantField: "server.base_url"},
		{name: "empty", baseURL: "", wantField: "server.base_url"},
		{name: "negative timeout", baseURL: "http://localhost:8000", timeout: -1, wantField: "server.timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.BaseURL = tt.baseURL
			cfg.Server.TimeoutSeconds = tt.timeout

			errs := cfg.Validate()
			if tt.wantField == "" {
				if len(errs) > 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if _, ok := fieldErrors(errs)[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, want error on %s", errs, tt.wantField)
			}
		})
	}
}

func TestValidateTUI(t *testing.T) {
	cfg := validConfig()
	cfg.TUI.MaxListHeight = 0
	cfg.TUI.NotesWidth = 4

	errs := fieldErrors(cfg.Validate())
	if _, ok := errs["tui.max_list_height"]; !ok {
		t.Error("missing error for tui.max_list_height")
	}
	if _, ok := errs["tui.notes_width"]; !ok {
		t.Error("missing error for tui.notes_width")
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	if _, ok := fieldErrors(cfg.Validate())["logging.level"]; !ok {
		t.Error("missing error for logging.level")
	}

	// Levels are matched case-insensitively
	cfg.Logging.Level = "DEBUG"
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("Validate() with level DEBUG = %v, want no errors", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "server.base_url", Value: "x", Message: "must be an absolute http(s) URL"},
		{Field: "tui.notes_width", Value: 2, Message: "must be >= 8"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q, want count prefix", msg)
	}
	if !strings.Contains(msg, "server.base_url") || !strings.Contains(msg, "tui.notes_width") {
		t.Errorf("Error() = %q, want both fields mentioned", msg)
	}

	single := ValidationErrors{errs[0]}
	if got := single.Error(); !strings.HasPrefix(got, "server.base_url:") {
		t.Errorf("single Error() = %q, want plain field message", got)
	}
}
