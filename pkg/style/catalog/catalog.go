// ABOUTME: Assembles catalog entries into style options and answers which one is active
// ABOUTME: Catalog is goroutine-safe; options are read-only once assembled

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/uistyle-go/pkg/style"
)

var (
	ErrNoTitle       = errors.New("style has no title")
	ErrMissingColors = errors.New("style needs both color_light and color_dark")
	ErrIncomplete    = errors.New("style does not cover the required categories")
)

// Options controls assembly.
type Options struct {
	// Strict requires the exact required category set instead of the
	// required number of categories.
	Strict bool
}

// Rejection records a catalog entry that was not turned into an option.
type Rejection struct {
	Title  string
	Source string
	Err    error
}

func (r Rejection) String() string {
	if r.Source == "" {
		return fmt.Sprintf("%s: %v", r.Title, r.Err)
	}
	return fmt.Sprintf("%s (%s): %v", r.Title, r.Source, r.Err)
}

// Catalog is the ordered set of selectable options.
type Catalog struct {
	mu      sync.RWMutex
	options []*style.Option
}

// Assemble builds options from entries. Entries with missing or malformed
// colors, and non-default entries that fail the validity check, are returned
// as rejections. Default entries carry no overlays and skip that check.
// A later entry replaces an earlier one with the same title.
func Assemble(reg *style.Registry, entries []Entry, opts Options) (*Catalog, []Rejection) {
	c := &Catalog{}
	var rejected []Rejection

	for _, e := range entries {
		opt, err := build(e)
		if err == nil && !opt.IsDefault() {
			err = checkValidity(opt, reg, opts.Strict)
		}
		if err != nil {
			rejected = append(rejected, Rejection{Title: e.Title, Source: e.Source, Err: err})
			continue
		}
		c.put(opt)
	}
	return c, rejected
}

func build(e Entry) (*style.Option, error) {
	if e.Title == "" {
		return nil, ErrNoTitle
	}
	if e.ColorLight == "" || e.ColorDark == "" {
		return nil, ErrMissingColors
	}
	light, err := style.ParseColor(e.ColorLight)
	if err != nil {
		return nil, fmt.Errorf("color_light: %w", err)
	}
	dark, err := style.ParseColor(e.ColorDark)
	if err != nil {
		return nil, fmt.Errorf("color_dark: %w", err)
	}

	opt := style.NewOption(e.Title, e.Default)
	for category, pkg := range e.Overlays {
		opt.AddOverlayPackage(category, pkg)
	}
	opt.AddStyleInfo(light, dark)
	return opt, nil
}

func checkValidity(opt *style.Option, reg *style.Registry, strict bool) error {
	ok := opt.IsValid(reg)
	if strict {
		ok = opt.IsComplete(reg)
	}
	if ok {
		return nil
	}
	return fmt.Errorf("%w: has %v, registry requires %v",
		ErrIncomplete, opt.Categories(), reg.Required())
}

// Options returns the options in catalog order.
func (c *Catalog) Options() []*style.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.options)
}

// Len returns the number of options.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.options)
}

// Add appends an option, replacing any option with the same title.
func (c *Catalog) Add(opt *style.Option) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(opt)
}

// put replaces or appends opt. Caller holds mu or owns c exclusively.
func (c *Catalog) put(opt *style.Option) {
	for i, o := range c.options {
		if o.Title() == opt.Title() {
			c.options[i] = opt
			return
		}
	}
	c.options = append(c.options, opt)
}

// Default returns the first default option, or nil.
func (c *Catalog) Default() *style.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.options {
		if o.IsDefault() {
			return o
		}
	}
	return nil
}

// Get returns the option titled title, compared case-insensitively.
func (c *Catalog) Get(title string) *style.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()
	title = normalizeTitle(title)
	for _, o := range c.options {
		if strings.EqualFold(o.Title(), title) {
			return o
		}
	}
	return nil
}

// Active returns the option matching the live overlay state. Non-default
// options are preferred; the default is returned only when no other option
// matches. Returns nil when nothing matches, e.g. a custom overlay mix.
func (c *Catalog) Active(reg *style.Registry, p style.OverlayStateProvider) *style.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var def *style.Option
	for _, o := range c.options {
		if o.IsDefault() {
			if def == nil && o.IsActive(reg, p) {
				def = o
			}
			continue
		}
		if o.IsActive(reg, p) {
			return o
		}
	}
	return def
}

type titles []*style.Option

func (t titles) String(i int) string { return t[i].Title() }
func (t titles) Len() int            { return len(t) }

// Find returns options whose titles fuzzy-match query, best first.
// An exact title match always comes first.
func (c *Catalog) Find(query string) []*style.Option {
	opts := c.Options()
	query = normalizeTitle(query)
	if query == "" {
		return opts
	}

	matches := fuzzy.FindFrom(query, titles(opts))
	out := make([]*style.Option, 0, len(matches))
	for _, m := range matches {
		out = append(out, opts[m.Index])
	}

	if exact := slices.IndexFunc(out, func(o *style.Option) bool {
		return strings.EqualFold(o.Title(), query)
	}); exact > 0 {
		hit := out[exact]
		out = slices.Delete(out, exact, exact+1)
		out = slices.Insert(out, 0, hit)
	}
	return out
}
