// ABOUTME: CLI entry point for uistyle: which overlay style is active, and which styles are valid
// ABOUTME: Loads settings, registry, catalogs and the overlay state snapshot, then dispatches

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/mauromedda/uistyle-go/internal/config"
	uilog "github.com/mauromedda/uistyle-go/internal/log"
	"github.com/mauromedda/uistyle-go/internal/nightmode"
	"github.com/mauromedda/uistyle-go/internal/watch"
	"github.com/mauromedda/uistyle-go/pkg/style"
	"github.com/mauromedda/uistyle-go/pkg/style/catalog"
	"github.com/mauromedda/uistyle-go/pkg/style/overlaystate"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("uistyle %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app is the per-invocation state shared by commands.
type app struct {
	cfg   *config.Settings
	out   io.Writer
	dark  bool
	color bool
	json  bool
}

// run performs the initialization sequence and dispatches the command.
func run(ctx context.Context, args cliArgs, out io.Writer) error {
	if args.verbose {
		uilog.SetLevel(uilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := newApp(cfg, out, args)
	if err != nil {
		return err
	}
	return a.dispatch(ctx, args.command, args.rest)
}

// applyOverrides lets CLI flags win over config files.
func applyOverrides(cfg *config.Settings, args cliArgs) {
	if args.registry != "" {
		cfg.Registry = args.registry
	}
	if args.state != "" {
		cfg.StateFile = args.state
	}
	if args.night != "" {
		cfg.NightMode = args.night
	}
	if args.strict {
		cfg.StrictValidity = true
	}
}

func newApp(cfg *config.Settings, out io.Writer, args cliArgs) (*app, error) {
	dark, err := nightmode.Resolve(cfg.NightMode, nil)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:   cfg,
		out:   out,
		dark:  dark,
		color: !args.plain && isTerminal(out),
		json:  args.json,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) dispatch(ctx context.Context, command string, rest []string) error {
	switch command {
	case "list":
		return a.list()
	case "active":
		return a.active()
	case "show":
		if len(rest) == 0 {
			return fmt.Errorf("show: missing style name")
		}
		return a.show(joinArgs(rest))
	case "check":
		return a.check()
	case "watch":
		return a.watch(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// load reads registry, catalogs and live state. Catalog rejections are
// returned alongside the catalog rather than failing the load.
func (a *app) load() (*watch.State, []catalog.Rejection, error) {
	reg := style.DefaultRegistry()
	if a.cfg.Registry != "" {
		r, err := style.LoadRegistry(a.cfg.Registry)
		if err != nil {
			return nil, nil, err
		}
		reg = r
	}
	if err := reg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("registry: %w", err)
	}

	entries, err := catalog.LoadDirs(a.cfg.CatalogDirs...)
	if err != nil {
		return nil, nil, err
	}
	cat, rejected := catalog.Assemble(reg, entries, catalog.Options{Strict: a.cfg.StrictValidity})
	uilog.Debug("catalog: %d styles, %d rejected", cat.Len(), len(rejected))

	provider, err := overlaystate.LoadSnapshot(a.cfg.StateFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, nil, err
		}
		uilog.Debug("state: %s not found, assuming no overlays enabled", a.cfg.StateFile)
		provider = overlaystate.NewMemory()
	}

	return &watch.State{Registry: reg, Catalog: cat, Provider: provider}, rejected, nil
}

// loadState is load for commands that only warn about rejections.
func (a *app) loadState() (*watch.State, error) {
	st, rejected, err := a.load()
	if err != nil {
		return nil, err
	}
	for _, r := range rejected {
		uilog.Warn("skipping style %s", r)
	}
	return st, nil
}
