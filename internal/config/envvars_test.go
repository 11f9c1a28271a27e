// ABOUTME: Tests for ${VAR} expansion in settings path fields
// ABOUTME: TestResolveEnvVars uses t.Setenv and therefore is not parallel

package config

import "testing"

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("UISTYLE_TEST_ROOT", "/srv/styles")

	s := &Settings{
		Registry:    "${UISTYLE_TEST_ROOT}/registry.yaml",
		StateFile:   "${UISTYLE_TEST_UNSET}state.json",
		CatalogDirs: []string{"${UISTYLE_TEST_ROOT}/extra", "plain"},
	}
	ResolveEnvVars(s)

	if s.Registry != "/srv/styles/registry.yaml" {
		t.Errorf("Registry = %q", s.Registry)
	}
	if s.StateFile != "state.json" {
		t.Errorf("StateFile = %q; unset vars should expand to empty", s.StateFile)
	}
	if s.CatalogDirs[0] != "/srv/styles/extra" || s.CatalogDirs[1] != "plain" {
		t.Errorf("CatalogDirs = %v", s.CatalogDirs)
	}
}

func TestExpandEnv_Empty(t *testing.T) {
	t.Parallel()

	if got := expandEnv(""); got != "" {
		t.Errorf("expandEnv(\"\") = %q", got)
	}
}
