// ABOUTME: YAML style catalog loading from files and directories
// ABOUTME: Directories load in parallel via errgroup; later directories override earlier ones by title

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Entry is one style as written in a catalog file.
type Entry struct {
	Title      string            `yaml:"title"`
	Default    bool              `yaml:"default,omitempty"`
	ColorLight string            `yaml:"color_light"`
	ColorDark  string            `yaml:"color_dark"`
	Overlays   map[string]string `yaml:"overlays,omitempty"`

	// Source is the file the entry was read from.
	Source string `yaml:"-"`
}

type catalogFile struct {
	Styles []Entry `yaml:"styles"`
}

// LoadFile reads the styles declared in one YAML catalog file.
// Titles are NFC-normalized and trimmed.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	for i := range cf.Styles {
		cf.Styles[i].Title = normalizeTitle(cf.Styles[i].Title)
		cf.Styles[i].Source = path
	}
	return cf.Styles, nil
}

// LoadDirs reads every *.yaml and *.yml file in dirs. Missing directories are
// skipped. Files inside a directory load in lexical order; when two entries
// share a title the one loaded last wins, so later dirs override earlier ones.
func LoadDirs(dirs ...string) ([]Entry, error) {
	perDir := make([][]Entry, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		g.Go(func() error {
			entries, err := loadDir(dir)
			if err != nil {
				return err
			}
			perDir[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, entries := range perDir {
		all = append(all, entries...)
	}
	return dedupe(all), nil
}

func loadDir(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog dir: %w", err)
	}

	var names []string
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".yaml", ".yml":
			names = append(names, de.Name())
		}
	}
	slices.Sort(names)

	var out []Entry
	for _, name := range names {
		entries, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

// dedupe keeps the last entry per title, in order of first appearance.
func dedupe(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	var out []Entry
	for _, e := range entries {
		if i, ok := index[e.Title]; ok {
			out[i] = e
			continue
		}
		index[e.Title] = len(out)
		out = append(out, e)
	}
	return out
}

func normalizeTitle(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
