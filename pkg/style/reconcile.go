// ABOUTME: Activity reconciliation: compares an option's overlays with the live overlay state
// ABOUTME: Default options are active when no style category has an overlay enabled

package style

// OverlayStateProvider reports which overlay package is enabled for a
// (target, category) pair. ok is false when none is enabled.
type OverlayStateProvider interface {
	EnabledPackageName(target, category string) (pkg string, ok bool)
}

// ProviderFunc adapts a function to OverlayStateProvider.
type ProviderFunc func(target, category string) (string, bool)

// EnabledPackageName calls f.
func (f ProviderFunc) EnabledPackageName(target, category string) (string, bool) {
	return f(target, category)
}

// MismatchReason explains why a category failed reconciliation.
type MismatchReason int

const (
	// UnknownCategory: the registry has no target for the category.
	UnknownCategory MismatchReason = iota
	// EmptyPackage: the option names no package for the category.
	EmptyPackage
	// NoneEnabled: the provider reports nothing enabled.
	NoneEnabled
	// OtherEnabled: a different package is enabled.
	OtherEnabled
	// UnexpectedEnabled: a default option sees an enabled overlay.
	UnexpectedEnabled
)

func (r MismatchReason) String() string {
	switch r {
	case UnknownCategory:
		return "unknown category"
	case EmptyPackage:
		return "empty package"
	case NoneEnabled:
		return "none enabled"
	case OtherEnabled:
		return "other enabled"
	case UnexpectedEnabled:
		return "unexpected overlay"
	default:
		return "unknown"
	}
}

// Mismatch is one category whose live state disagrees with the option.
type Mismatch struct {
	Category string
	Target   string
	Want     string // empty for default options
	Got      string // empty when nothing is enabled
	Reason   MismatchReason
}

// IsActive reports whether the live overlay state matches this option.
//
// A default option is active when the provider reports no overlay for every
// category the registry declares. Any other option is active when every
// (category, package) pair it holds is exactly what the provider reports for
// that category's target; an unknown category never matches.
func (o *Option) IsActive(reg *Registry, p OverlayStateProvider) bool {
	if o.isDefault {
		for _, category := range reg.StyleCategories() {
			target, _ := reg.Target(category)
			if _, enabled := p.EnabledPackageName(target, category); enabled {
				return false
			}
		}
		return true
	}

	for category, want := range o.overlays {
		if _, ok := o.check(reg, p, category, want); !ok {
			return false
		}
	}
	return true
}

// Mismatches returns every category that keeps the option from being active,
// sorted by category. It is empty exactly when IsActive is true.
func (o *Option) Mismatches(reg *Registry, p OverlayStateProvider) []Mismatch {
	var out []Mismatch
	if o.isDefault {
		for _, category := range reg.StyleCategories() {
			target, _ := reg.Target(category)
			if got, enabled := p.EnabledPackageName(target, category); enabled {
				out = append(out, Mismatch{
					Category: category,
					Target:   target,
					Got:      got,
					Reason:   UnexpectedEnabled,
				})
			}
		}
		return out
	}

	for _, category := range o.Categories() {
		if m, ok := o.check(reg, p, category, o.overlays[category]); !ok {
			out = append(out, m)
		}
	}
	return out
}

func (o *Option) check(reg *Registry, p OverlayStateProvider, category, want string) (Mismatch, bool) {
	m := Mismatch{Category: category, Want: want}
	target, known := reg.Target(category)
	if !known {
		m.Reason = UnknownCategory
		return m, false
	}
	m.Target = target
	if want == "" {
		m.Reason = EmptyPackage
		return m, false
	}
	got, enabled := p.EnabledPackageName(target, category)
	if !enabled {
		m.Reason = NoneEnabled
		return m, false
	}
	if got != want {
		m.Got = got
		m.Reason = OtherEnabled
		return m, false
	}
	return m, true
}

// IsValid reports whether the option overlays as many categories as the
// registry requires. Counting is enough when options are assembled from the
// same registry; IsComplete is the stricter check.
func (o *Option) IsValid(reg *Registry) bool {
	return len(o.overlays) == len(reg.Required())
}

// IsComplete reports whether the option's categories are exactly the
// registry's required set.
func (o *Option) IsComplete(reg *Registry) bool {
	required := reg.Required()
	if len(o.overlays) != len(required) {
		return false
	}
	for _, category := range required {
		if _, ok := o.overlays[category]; !ok {
			return false
		}
	}
	return true
}
