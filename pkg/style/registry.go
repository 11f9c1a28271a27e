// ABOUTME: Category registry: which categories a complete style needs and where each one applies
// ABOUTME: Passed explicitly to reconciliation; loadable from YAML, with a built-in reference set

package style

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Reference categories and their target packages.
const (
	CategorySysUI    = "android.theme.customization.style.sysui"
	CategorySettings = "android.theme.customization.style.settings"
	CategoryAndroid  = "android.theme.customization.style.android"

	TargetSysUI    = "com.android.systemui"
	TargetSettings = "com.android.settings"
	TargetAndroid  = "android"
)

var (
	ErrEmptyCategory        = errors.New("category id is empty")
	ErrEmptyTarget          = errors.New("category target is empty")
	ErrDuplicateCategory    = errors.New("duplicate category")
	ErrNoRequiredCategories = errors.New("registry declares no required categories")
)

// Category is one overlayable axis of a style and the subsystem it targets.
type Category struct {
	ID     string `yaml:"id"`
	Target string `yaml:"target"`

	// Optional categories take part in the default check but are not needed
	// for an option to be valid.
	Optional bool `yaml:"optional,omitempty"`
}

// Registry maps categories to targets and lists the categories a complete
// style must overlay. A Registry is immutable once built.
type Registry struct {
	categories []Category
	byID       map[string]int
}

// NewRegistry builds a registry, rejecting empty or duplicate entries.
func NewRegistry(categories ...Category) (*Registry, error) {
	r := &Registry{
		categories: make([]Category, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if c.ID == "" {
			return nil, ErrEmptyCategory
		}
		if c.Target == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTarget, c.ID)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.ID)
		}
		r.byID[c.ID] = len(r.categories)
		r.categories = append(r.categories, c)
	}
	return r, nil
}

// DefaultRegistry returns the reference registry: system UI, settings and the
// platform package, all required.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(
		Category{ID: CategorySysUI, Target: TargetSysUI},
		Category{ID: CategorySettings, Target: TargetSettings},
		Category{ID: CategoryAndroid, Target: TargetAndroid},
	)
	return r
}

// Target returns the target subsystem for category, or false when the
// category is unknown.
func (r *Registry) Target(category string) (string, bool) {
	i, ok := r.byID[category]
	if !ok {
		return "", false
	}
	return r.categories[i].Target, true
}

// Required returns the non-optional categories in declaration order.
func (r *Registry) Required() []string {
	out := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		if !c.Optional {
			out = append(out, c.ID)
		}
	}
	return out
}

// StyleCategories returns every declared category in declaration order.
func (r *Registry) StyleCategories() []string {
	out := make([]string, len(r.categories))
	for i, c := range r.categories {
		out[i] = c.ID
	}
	return out
}

// Categories returns a copy of the declared categories.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Validate reports configuration errors that make every option trivially
// valid. Call it once at startup.
func (r *Registry) Validate() error {
	if len(r.Required()) == 0 {
		return ErrNoRequiredCategories
	}
	return nil
}

type registryFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadRegistry reads a YAML registry file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes a YAML registry document.
func ParseRegistry(data []byte) (*Registry, error) {
	var rf registryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	r, err := NewRegistry(rf.Categories...)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	return r, nil
}
