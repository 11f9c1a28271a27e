// ABOUTME: Settings loading with global + project config merge and env overrides
// ABOUTME: JSON-based configuration using encoding/json; project values override global ones

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Night mode values.
const (
	NightAuto  = "auto"
	NightDark  = "dark"
	NightLight = "light"
)

// EnvStateFile overrides the state file from any config file.
const EnvStateFile = "UISTYLE_STATE_FILE"

const defaultWatchInterval = 2 * time.Second

// Settings holds the merged configuration.
type Settings struct {
	// Registry is a YAML category registry; empty means the built-in one.
	Registry string `json:"registry,omitempty"`
	// CatalogDirs are extra style catalog directories, loaded after the
	// standard ones.
	CatalogDirs []string `json:"catalog_dirs,omitempty"`
	// StateFile is the overlay state snapshot read as the live state.
	StateFile string `json:"state_file,omitempty"`
	// NightMode is auto, dark or light.
	NightMode string `json:"night_mode,omitempty"`
	// StrictValidity requires the exact required category set.
	StrictValidity bool `json:"strict_validity,omitempty"`
	// WatchIntervalMS is the polling interval of the watch command.
	WatchIntervalMS int `json:"watch_interval_ms,omitempty"`
}

// WatchInterval returns the polling interval, defaulting to 2s.
func (s *Settings) WatchInterval() time.Duration {
	if s.WatchIntervalMS <= 0 {
		return defaultWatchInterval
	}
	return time.Duration(s.WatchIntervalMS) * time.Millisecond
}

// Load reads and merges global and project-local settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadWithHome(projectRoot, homeDir())
}

// LoadWithHome is Load with an explicit home directory.
// Project settings override global settings; relative paths in a file are
// resolved against that file's directory.
func LoadWithHome(projectRoot, home string) (*Settings, error) {
	globalPath := filepath.Join(globalDirIn(home), "config.json")
	global, err := loadFile(globalPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	resolvePaths(global, filepath.Dir(globalPath), home)

	projectPath := ProjectConfigFile(projectRoot)
	project, err := loadFile(projectPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	resolvePaths(project, filepath.Dir(projectPath), home)

	merged := merge(global, project)
	applyDefaults(merged, projectRoot, home)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	ResolveEnvVars(&s)
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; catalog dirs accumulate.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	result.CatalogDirs = slices.Clone(global.CatalogDirs)

	if project.Registry != "" {
		result.Registry = project.Registry
	}
	if project.StateFile != "" {
		result.StateFile = project.StateFile
	}
	if project.NightMode != "" {
		result.NightMode = project.NightMode
	}
	if project.StrictValidity {
		result.StrictValidity = true
	}
	if project.WatchIntervalMS != 0 {
		result.WatchIntervalMS = project.WatchIntervalMS
	}
	result.CatalogDirs = append(result.CatalogDirs, project.CatalogDirs...)

	return &result
}

func resolvePaths(s *Settings, base, home string) {
	if s == nil {
		return
	}
	resolve := func(p string) string {
		if p == "" {
			return p
		}
		p = expandHome(p, home)
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		return p
	}
	s.Registry = resolve(s.Registry)
	s.StateFile = resolve(s.StateFile)
	for i, d := range s.CatalogDirs {
		s.CatalogDirs[i] = resolve(d)
	}
}

func applyDefaults(s *Settings, projectRoot, home string) {
	if v := os.Getenv(EnvStateFile); v != "" {
		s.StateFile = expandHome(v, home)
	}
	if s.StateFile == "" {
		s.StateFile = filepath.Join(globalDirIn(home), "state.json")
	}
	if s.NightMode == "" {
		s.NightMode = NightAuto
	}
	s.CatalogDirs = append(stylesDirsIn(home, projectRoot), s.CatalogDirs...)
}

// Validate checks enumerated fields.
func (s *Settings) Validate() error {
	switch s.NightMode {
	case "", NightAuto, NightDark, NightLight:
	default:
		return fmt.Errorf("night_mode must be %q, %q or %q, got %q", NightAuto, NightDark, NightLight, s.NightMode)
	}
	if s.WatchIntervalMS < 0 {
		return fmt.Errorf("watch_interval_ms must not be negative")
	}
	return nil
}
