package api

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Ivaneres/coffee/internal/errors"
)

func TestParseDetailMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "string detail verbatim",
			raw:  `"Incorrect username or password"`,
			want: "Incorrect username or password",
		},
		{
			name: "empty string falls back to generic",
			raw:  `""`,
			want: genericErrorMessage,
		},
		{
			name: "missing detail",
			raw:  ``,
			want: genericErrorMessage,
		},
		{
			name: "null detail",
			raw:  `null`,
			want: genericErrorMessage,
		},
		{
			name: "single field error",
			raw:  `[{"loc": ["body", "email"], "msg": "value is not a valid email address"}]`,
			want: "email: value is not a valid email address",
		},
		{
			name: "nested location joined with dots",
			raw:  `[{"loc": ["body", "settings", "default_machine"], "msg": "too long"}]`,
			want: "settings.default_machine: too long",
		},
		{
			name: "multiple field errors joined in order",
			raw:  `[{"loc": ["body", "username"], "msg": "required"}, {"loc": ["body", "password"], "msg": "too short"}]`,
			want: "username: required, password: too short",
		},
		{
			name: "single-segment location uses placeholder",
			raw:  `[{"loc": ["body"], "msg": "invalid"}]`,
			want: "field: invalid",
		},
		{
			name: "empty location uses placeholder",
			raw:  `[{"loc": [], "msg": "invalid"}]`,
			want: "field: invalid",
		},
		{
			name: "empty field error list",
			raw:  `[]`,
			want: "",
		},
		{
			name: "object with msg",
			raw:  `{"msg": "session expired"}`,
			want: "session expired",
		},
		{
			name: "object without msg",
			raw:  `{"code": 42}`,
			want: genericErrorMessage,
		},
		{
			name: "object with empty msg",
			raw:  `{"msg": ""}`,
			want: genericErrorMessage,
		},
		{
			name: "number detail",
			raw:  `42`,
			want: genericErrorMessage,
		},
		{
			name: "boolean detail",
			raw:  `true`,
			want: genericErrorMessage,
		},
		{
			name: "list of non-objects",
			raw:  `[1, 2]`,
			want: genericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parseDetail(json.RawMessage(tt.raw))
			if got := d.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	err := decodeError(422, "POST", "/api/records/",
		[]byte(`{"detail": [{"loc": ["body", "dose"], "msg": "must be positive"}]}`))

	if err.StatusCode != 422 {
		t.Errorf("StatusCode = %d, want 422", err.StatusCode)
	}
	if got := err.Error(); got != "dose: must be positive" {
		t.Errorf("Error() = %q, want %q", got, "dose: must be positive")
	}
	if fields := err.Detail.FieldErrors(); len(fields) != 1 {
		t.Errorf("FieldErrors() returned %d entries, want 1", len(fields))
	}
}

func TestDecodeErrorInvalidBody(t *testing.T) {
	// A non-JSON body (HTML error page, truncated response) still produces
	// a usable error with the generic message.
	err := decodeError(500, "GET", "/api/beans/", []byte("<html>Internal Server Error</html>"))
	if got := err.Error(); got != genericErrorMessage {
		t.Errorf("Error() = %q, want %q", got, genericErrorMessage)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		status   int
		auth     bool
		notFound bool
		valid    bool
	}{
		{status: 400},
		{status: 401, auth: true},
		{status: 404, notFound: true},
		{status: 422, valid: true},
		{status: 500},
	}

	for _, tt := range tests {
		err := &Error{StatusCode: tt.status, Method: "GET", Path: "/api/beans/"}
		if got := err.IsAuthFailure(); got != tt.auth {
			t.Errorf("status %d: IsAuthFailure() = %v, want %v", tt.status, got, tt.auth)
		}
		if got := err.IsNotFound(); got != tt.notFound {
			t.Errorf("status %d: IsNotFound() = %v, want %v", tt.status, got, tt.notFound)
		}
		if got := err.IsValidation(); got != tt.valid {
			t.Errorf("status %d: IsValidation() = %v, want %v", tt.status, got, tt.valid)
		}
	}
}

func TestExtractMessage(t *testing.T) {
	apiErr := decodeError(401, "POST", "/api/auth/login",
		[]byte(`{"detail": "Incorrect username or password"}`))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "api error", err: apiErr, want: "Incorrect username or password"},
		{name: "wrapped api error", err: fmt.Errorf("login: %w", apiErr), want: "Incorrect username or password"},
		{name: "plain error", err: errors.New("connection refused"), want: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMessage(tt.err); got != tt.want {
				t.Errorf("ExtractMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
