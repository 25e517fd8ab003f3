package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long string truncated",
			input:    "hello world",
			maxLen:   8,
			expected: "hello...",
		},
		{
			name:     "very small maxLen returns ellipsis",
			input:    "hello",
			maxLen:   3,
			expected: "...",
		},
		{
			name:     "unicode runes counted not bytes",
			input:    "café au lait du matin",
			maxLen:   10,
			expected: "café au...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	got := TruncateANSI(styled, 8)
	if lipgloss.Width(got) > 8 {
		t.Errorf("TruncateANSI() visual width = %d, want <= 8", lipgloss.Width(got))
	}

	if got := TruncateANSI("plain", 10); got != "plain" {
		t.Errorf("TruncateANSI() = %q, want unchanged", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{18.5, "18.5"},
		{30, "30"},
		{18.25, "18.25"},
		{0.3, "0.3"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.input); got != tt.expected {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatOptionalFloat(t *testing.T) {
	if got := FormatOptionalFloat(nil, "g"); got != "-" {
		t.Errorf("FormatOptionalFloat(nil) = %q, want -", got)
	}
	v := 18.5
	if got := FormatOptionalFloat(&v, "g"); got != "18.5g" {
		t.Errorf("FormatOptionalFloat(18.5, g) = %q, want 18.5g", got)
	}
}
