// ABOUTME: Environment variable expansion in config path fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the path fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Registry = expandEnv(s.Registry)
	s.StateFile = expandEnv(s.StateFile)
	s.NightMode = expandEnv(s.NightMode)
	for i, d := range s.CatalogDirs {
		s.CatalogDirs[i] = expandEnv(d)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
