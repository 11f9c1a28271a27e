// ABOUTME: Decides whether swatches use their dark or light color
// ABOUTME: auto asks lipgloss for the terminal background; dark/light force it and skip the query

package nightmode

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/uistyle-go/internal/config"
)

// Detector reports whether the terminal background is dark.
type Detector func() bool

// Terminal queries the terminal through lipgloss.
func Terminal() bool {
	return lipgloss.HasDarkBackground()
}

// Resolve maps a night_mode setting to a dark flag. Forced modes are pushed
// into lipgloss so later styling agrees and no OSC query is sent.
func Resolve(mode string, detect Detector) (bool, error) {
	switch mode {
	case config.NightDark:
		lipgloss.SetHasDarkBackground(true)
		return true, nil
	case config.NightLight:
		lipgloss.SetHasDarkBackground(false)
		return false, nil
	case "", config.NightAuto:
		if detect == nil {
			detect = Terminal
		}
		return detect(), nil
	default:
		return false, fmt.Errorf("unknown night mode %q", mode)
	}
}
