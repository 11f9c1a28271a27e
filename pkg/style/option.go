// ABOUTME: Style option data model: title, default flag, light/dark colors, overlays per category
// ABOUTME: Options are assembled incrementally and read-only afterwards; not safe for concurrent mutation

package style

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Option is a selectable style: one overlay package per category plus a
// representative color pair. The default option stands for "no overlays".
//
// An Option is not safe for concurrent mutation. Owners that share options
// across goroutines (see catalog.Catalog) must synchronize access.
type Option struct {
	title     string
	isDefault bool

	light    lipgloss.Color
	dark     lipgloss.Color
	hasStyle bool

	// category -> overlay package name
	overlays map[string]string
}

// NewOption creates an option with an empty overlay mapping.
func NewOption(title string, isDefault bool) *Option {
	return &Option{
		title:     title,
		isDefault: isDefault,
		overlays:  make(map[string]string),
	}
}

// New creates a non-default option.
func New(title string) *Option {
	return NewOption(title, false)
}

// Title returns the display label.
func (o *Option) Title() string {
	return o.title
}

// IsDefault reports whether the option represents the baseline with no overlays.
func (o *Option) IsDefault() bool {
	return o.isDefault
}

// AddOverlayPackage sets the overlay package for category, replacing any
// previous value.
func (o *Option) AddOverlayPackage(category, pkg string) {
	o.overlays[category] = pkg
}

// AddStyleInfo sets the light and dark swatch colors together.
func (o *Option) AddStyleInfo(light, dark lipgloss.Color) {
	o.light = light
	o.dark = dark
	o.hasStyle = true
}

// HasStyleInfo reports whether AddStyleInfo has been called.
func (o *Option) HasStyleInfo() bool {
	return o.hasStyle
}

// OverlayPackages returns the live category -> package mapping.
// The map is not copied: writes through it change the option.
func (o *Option) OverlayPackages() map[string]string {
	return o.overlays
}

// Categories returns the categories this option overlays, sorted.
func (o *Option) Categories() []string {
	return slices.Sorted(maps.Keys(o.overlays))
}

// ResolveColor returns the dark color when dark is true, the light one otherwise.
func (o *Option) ResolveColor(dark bool) lipgloss.Color {
	if dark {
		return o.dark
	}
	return o.light
}

// String returns the title, tagged when the option is the default.
func (o *Option) String() string {
	if o.isDefault {
		return o.title + " [default]"
	}
	return o.title
}
