// ABOUTME: Hex color parsing for style swatches, backed by go-colorful
// ABOUTME: Normalizes "#RGB"/"#RRGGBB" input to lowercase "#rrggbb" lipgloss colors

package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdefABCDEF"

// ParseColor validates a hex color and returns it in canonical form.
func ParseColor(s string) (lipgloss.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		// #abc -> #aabbcc
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if len(s) != 7 || strings.Trim(s[1:], hexDigits) != "" {
		return "", fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return lipgloss.Color(c.Hex()), nil
}

// IsDarkColor reports whether c is dark enough to need light text on top.
// Non-hex colors count as dark.
func IsDarkColor(c lipgloss.Color) bool {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return true
	}
	l, _, _ := cc.Lab()
	return l < 0.6
}
