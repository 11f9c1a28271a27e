// ABOUTME: Command implementations: list, active, show, check, watch
// ABOUTME: Text output goes through swatch rendering; --json goes through the report encoder

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/uistyle-go/internal/config"
	"github.com/mauromedda/uistyle-go/internal/watch"
	"github.com/mauromedda/uistyle-go/pkg/style"
	"github.com/mauromedda/uistyle-go/pkg/style/report"
	"github.com/mauromedda/uistyle-go/pkg/tui/swatch"
)

var errCheckFailed = errors.New("check failed")

func joinArgs(rest []string) string {
	return strings.Join(rest, " ")
}

func (a *app) chip(opt *style.Option, active bool) string {
	if a.color {
		return swatch.Chip(opt, a.dark, active)
	}
	return swatch.Plain(opt, a.dark, active)
}

func (a *app) writeReport(st *watch.State) error {
	data, err := report.Build(st.Catalog, st.Registry, st.Provider, a.dark).JSON()
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "%s\n", data)
	return err
}

func (a *app) list() error {
	st, err := a.loadState()
	if err != nil {
		return err
	}
	if a.json {
		return a.writeReport(st)
	}

	active := st.Catalog.Active(st.Registry, st.Provider)
	for _, opt := range st.Catalog.Options() {
		var notes []string
		if opt.IsDefault() {
			notes = append(notes, "default")
		} else if !opt.IsComplete(st.Registry) {
			notes = append(notes, "partial coverage")
		}
		line := a.chip(opt, opt == active)
		if len(notes) > 0 {
			line += "  (" + strings.Join(notes, ", ") + ")"
		}
		fmt.Fprintln(a.out, line)
	}
	if st.Catalog.Len() == 0 {
		fmt.Fprintln(a.out, "no styles found in", strings.Join(a.cfg.CatalogDirs, ", "))
	}
	return nil
}

func (a *app) active() error {
	st, err := a.loadState()
	if err != nil {
		return err
	}
	if a.json {
		return a.writeReport(st)
	}

	if opt := st.Catalog.Active(st.Registry, st.Provider); opt != nil {
		fmt.Fprintln(a.out, opt.Title())
		return nil
	}
	fmt.Fprintln(a.out, "(custom)")
	return nil
}

func (a *app) show(query string) error {
	st, err := a.loadState()
	if err != nil {
		return err
	}
	matches := st.Catalog.Find(query)
	if len(matches) == 0 {
		return fmt.Errorf("no style matches %q", query)
	}
	opt := matches[0]
	active := opt.IsActive(st.Registry, st.Provider)

	fmt.Fprintln(a.out, a.chip(opt, active))
	fmt.Fprintf(a.out, "title:    %s\n", opt.Title())
	fmt.Fprintf(a.out, "default:  %t\n", opt.IsDefault())
	fmt.Fprintf(a.out, "active:   %t\n", active)
	fmt.Fprintf(a.out, "valid:    %t\n", opt.IsValid(st.Registry))
	fmt.Fprintf(a.out, "complete: %t\n", opt.IsComplete(st.Registry))
	fmt.Fprintf(a.out, "colors:   light %s, dark %s\n", opt.ResolveColor(false), opt.ResolveColor(true))

	categories := opt.Categories()
	if opt.IsDefault() {
		categories = st.Registry.StyleCategories()
	}
	width := 0
	for _, c := range categories {
		width = max(width, runewidth.StringWidth(c))
	}
	fmt.Fprintln(a.out, "overlays:")
	for _, c := range categories {
		target, ok := st.Registry.Target(c)
		if !ok {
			target = "?"
		}
		want := opt.OverlayPackages()[c]
		if opt.IsDefault() {
			want = "-"
		}
		fmt.Fprintf(a.out, "  %s  %s -> %s\n", runewidth.FillRight(c, width), target, want)
	}

	if ms := opt.Mismatches(st.Registry, st.Provider); len(ms) > 0 {
		fmt.Fprintln(a.out, "mismatches:")
		for _, m := range ms {
			fmt.Fprintf(a.out, "  %s: %s", m.Category, m.Reason)
			if m.Got != "" {
				fmt.Fprintf(a.out, " (enabled %s)", m.Got)
			}
			fmt.Fprintln(a.out)
		}
	}
	return nil
}

func (a *app) check() error {
	st, rejected, err := a.load()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registry: %d categories, %d required\n",
		len(st.Registry.StyleCategories()), len(st.Registry.Required()))
	fmt.Fprintf(a.out, "styles:   %d selectable\n", st.Catalog.Len())
	if st.Catalog.Default() == nil {
		fmt.Fprintln(a.out, "warning:  no default style")
	}
	for _, opt := range st.Catalog.Options() {
		if !opt.IsDefault() && !opt.IsComplete(st.Registry) {
			fmt.Fprintf(a.out, "warning:  %s matches the required count but not the required categories %v\n",
				opt.Title(), st.Registry.Required())
		}
	}
	for _, r := range rejected {
		fmt.Fprintf(a.out, "rejected: %s\n", r)
	}
	if len(rejected) > 0 {
		return fmt.Errorf("%w: %d styles rejected", errCheckFailed, len(rejected))
	}
	return nil
}

func (a *app) watch(ctx context.Context) error {
	paths := []string{a.cfg.StateFile}
	if a.cfg.Registry != "" {
		paths = append(paths, a.cfg.Registry)
	}
	for _, dir := range a.cfg.CatalogDirs {
		paths = append(paths, dir, filepath.Join(dir, "*.yaml"), filepath.Join(dir, "*.yml"))
	}

	m := watch.NewMonitor(a.loadState)
	m.Subscribe(func(c watch.Change) {
		current := c.Current
		if current == "" {
			current = "(custom)"
		}
		fmt.Fprintf(a.out, "%s %s\n", c.At.Format("15:04:05"), current)
	})

	err := m.Run(ctx, config.NewWatcher(paths, a.cfg.WatchInterval()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
