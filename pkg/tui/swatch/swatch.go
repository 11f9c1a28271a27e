// ABOUTME: Swatch rendering for style options: a colored chip labelled with the option title
// ABOUTME: Filled chip marks the active option, hollow chip the rest; Plain is the no-color form

package swatch

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/uistyle-go/pkg/style"
)

// Width is the chip width in cells, including padding.
const Width = 24

const (
	markActive   = "●"
	markInactive = "○"
)

var (
	lightText = lipgloss.Color("#ffffff")
	darkText  = lipgloss.Color("#000000")
)

// Label returns the title truncated to fit a chip.
func Label(opt *style.Option) string {
	return runewidth.Truncate(opt.Title(), Width-4, "…")
}

// Chip renders opt with its color for the given mode.
func Chip(opt *style.Option, dark, active bool) string {
	bg := opt.ResolveColor(dark)
	fg := darkText
	if style.IsDarkColor(bg) {
		fg = lightText
	}

	mark := markInactive
	if active {
		mark = markActive
	}

	s := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Width(Width)
	if active {
		s = s.Bold(true)
	}
	return s.Render(mark + " " + Label(opt))
}

// Plain renders opt without escape codes: mark, color, padded title.
func Plain(opt *style.Option, dark, active bool) string {
	mark := markInactive
	if active {
		mark = markActive
	}
	return mark + " " + string(opt.ResolveColor(dark)) + " " + runewidth.FillRight(Label(opt), Width-4)
}
