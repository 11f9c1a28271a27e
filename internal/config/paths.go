// ABOUTME: Standard filesystem paths for uistyle configuration and data
// ABOUTME: Resolves ~/.uistyle/ for global and .uistyle/ for project-local paths

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	globalDirName  = ".uistyle"
	projectDirName = ".uistyle"
)

// homeDir returns the user's home directory, or "." when unknown.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// globalDirIn returns the user-global config directory (~/.uistyle/).
func globalDirIn(home string) string {
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.uistyle/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// stylesDirsIn returns the catalog directories in load order: global first,
// then project, so project styles override global ones with the same title.
func stylesDirsIn(home, projectRoot string) []string {
	return []string{
		filepath.Join(globalDirIn(home), "styles"),
		filepath.Join(ProjectDir(projectRoot), "styles"),
	}
}

// expandHome replaces a leading "~/" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
