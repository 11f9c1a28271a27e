// ABOUTME: Tests for hex color parsing and darkness classification
// ABOUTME: Malformed hex must error rather than be partially scanned into another color

package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    lipgloss.Color
		wantErr bool
	}{
		{"#FFFFFF", "#ffffff", false},
		{"1a73e8", "#1a73e8", false},
		{"#abc", "#aabbcc", false},
		{"  #202124 ", "#202124", false},
		{"", "", true},
		{"#12345", "", true},
		{"#zzzzzz", "", true},
		{"#12345g", "", true},
		{"# 1 2 3", "", true},
		{"#ab ", "", true},
		{"#1a73e8ff", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsDarkColor(t *testing.T) {
	t.Parallel()

	if !IsDarkColor("#000000") {
		t.Error("black should be dark")
	}
	if IsDarkColor("#ffffff") {
		t.Error("white should not be dark")
	}
	if !IsDarkColor("212") {
		t.Error("non-hex colors count as dark")
	}
}
