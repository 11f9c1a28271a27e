// ABOUTME: Tests for flag parsing and the list/active/show/check commands
// ABOUTME: Builds catalogs and state snapshots in temp dirs; output captured in a buffer

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/uistyle-go/internal/config"
	"github.com/mauromedda/uistyle-go/pkg/style"
	"github.com/mauromedda/uistyle-go/pkg/style/overlaystate"
)

const testCatalog = `styles:
  - title: Default
    default: true
    color_light: "#f8f9fa"
    color_dark: "#202124"
  - title: Rounded
    color_light: "#e8f0fe"
    color_dark: "#174ea6"
    overlays:
      android.theme.customization.style.sysui: com.example.rounded.sysui
      android.theme.customization.style.settings: com.example.rounded.settings
      android.theme.customization.style.android: com.example.rounded.android
  - title: Broken
    color_light: "#ffffff"
    color_dark: "#000000"
    overlays:
      android.theme.customization.style.sysui: com.example.broken.sysui
`

type fixture struct {
	cfg   *config.Settings
	state string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	styles := filepath.Join(dir, "styles")
	if err := os.MkdirAll(styles, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(styles, "builtin.yaml"), []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	return fixture{
		cfg: &config.Settings{
			CatalogDirs: []string{styles},
			StateFile:   filepath.Join(dir, "state.json"),
			NightMode:   config.NightLight,
		},
		state: filepath.Join(dir, "state.json"),
	}
}

func (f fixture) enableRounded(t *testing.T) {
	t.Helper()
	m := overlaystate.NewMemory()
	m.Enable(style.TargetSysUI, style.CategorySysUI, "com.example.rounded.sysui")
	m.Enable(style.TargetSettings, style.CategorySettings, "com.example.rounded.settings")
	m.Enable(style.TargetAndroid, style.CategoryAndroid, "com.example.rounded.android")
	if err := overlaystate.WriteSnapshot(f.state, overlaystate.SnapshotOf(m)); err != nil {
		t.Fatal(err)
	}
}

func (f fixture) app(t *testing.T, args cliArgs) (*app, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	a, err := newApp(f.cfg, &buf, args)
	if err != nil {
		t.Fatalf("newApp() error: %v", err)
	}
	return a, &buf
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"-json", "-night", "dark", "show", "Rounded", "Corners"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if !args.json || args.night != "dark" {
		t.Errorf("flags = %+v", args)
	}
	if args.command != "show" || joinArgs(args.rest) != "Rounded Corners" {
		t.Errorf("command = %q, rest = %v", args.command, args.rest)
	}

	if _, err := parseFlags(nil, io.Discard); err == nil {
		t.Error("parseFlags() without a command should fail")
	}
	if args, err := parseFlags([]string{"-version"}, io.Discard); err != nil || !args.version {
		t.Errorf("parseFlags(-version) = %+v, %v", args, err)
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Settings{NightMode: config.NightAuto, StateFile: "a"}
	applyOverrides(cfg, cliArgs{night: "dark", state: "b", registry: "r.yaml", strict: true})
	if cfg.NightMode != "dark" || cfg.StateFile != "b" || cfg.Registry != "r.yaml" || !cfg.StrictValidity {
		t.Errorf("applyOverrides() = %+v", cfg)
	}
}

func TestActive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, buf := f.app(t, cliArgs{})

	if err := a.active(); err != nil {
		t.Fatalf("active() error: %v", err)
	}
	if got := buf.String(); got != "Default\n" {
		t.Errorf("active() with no state file = %q; want Default", got)
	}

	f.enableRounded(t)
	buf.Reset()
	if err := a.active(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Rounded\n" {
		t.Errorf("active() = %q; want Rounded", got)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.enableRounded(t)
	a, buf := f.app(t, cliArgs{plain: true})

	if err := a.list(); err != nil {
		t.Fatalf("list() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("list() printed %d lines; want 2 (Broken rejected):\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "○ #f8f9fa Default") || !strings.Contains(lines[0], "(default)") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "● #e8f0fe Rounded") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestList_JSON(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, buf := f.app(t, cliArgs{json: true})

	if err := a.list(); err != nil {
		t.Fatalf("list() error: %v", err)
	}
	var decoded struct {
		Active  string `json:"active"`
		Options []struct {
			Title string `json:"title"`
		} `json:"options"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Active != "Default" || len(decoded.Options) != 2 {
		t.Errorf("report = %+v", decoded)
	}
}

func TestShow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, buf := f.app(t, cliArgs{plain: true})

	if err := a.show("Rnd"); err != nil {
		t.Fatalf("show() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"title:    Rounded",
		"active:   false",
		"complete: true",
		"colors:   light #e8f0fe, dark #174ea6",
		"com.android.systemui -> com.example.rounded.sysui",
		"mismatches:",
		"none enabled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show() output missing %q:\n%s", want, out)
		}
	}

	if err := a.show("zzzz"); err == nil {
		t.Error("show() with no match should fail")
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, buf := f.app(t, cliArgs{})

	err := a.check()
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("check() error = %v; want errCheckFailed", err)
	}
	out := buf.String()
	if !strings.Contains(out, "registry: 3 categories, 3 required") {
		t.Errorf("check() output:\n%s", out)
	}
	if !strings.Contains(out, "rejected: Broken") {
		t.Errorf("check() should report Broken:\n%s", out)
	}
}

func TestCheck_InvalidRegistry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	reg := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(reg, []byte("categories:\n  - {id: a, target: t, optional: true}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f.cfg.Registry = reg
	a, _ := f.app(t, cliArgs{})

	if err := a.check(); !errors.Is(err, style.ErrNoRequiredCategories) {
		t.Errorf("check() error = %v; want ErrNoRequiredCategories", err)
	}
}

func TestDispatch_Unknown(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, _ := f.app(t, cliArgs{})
	if err := a.dispatch(t.Context(), "frobnicate", nil); err == nil {
		t.Error("dispatch() should reject unknown commands")
	}
	if err := a.dispatch(t.Context(), "show", nil); err == nil {
		t.Error("show without a query should fail")
	}
}
