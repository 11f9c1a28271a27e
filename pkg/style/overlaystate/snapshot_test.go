// ABOUTME: Tests for snapshot decoding and file I/O
// ABOUTME: Covers disabled entries, unknown fields, nulls, version checks, and write/load

package overlaystate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSnapshot(t *testing.T) {
	t.Parallel()

	data := `{
		"version": 1,
		"generated_by": "adb",
		"overlays": [
			{"target": "com.android.systemui", "category": "sysui", "package": "pkg.sysui", "enabled": true, "priority": 3},
			{"target": "android", "category": "android", "package": "pkg.android", "enabled": false},
			{"target": "com.android.settings", "category": "settings", "package": null, "enabled": true}
		]
	}`

	s, err := ParseSnapshot([]byte(data))
	if err != nil {
		t.Fatalf("ParseSnapshot() error: %v", err)
	}
	if s.Version != 1 {
		t.Errorf("Version = %d; want 1", s.Version)
	}
	if len(s.Overlays) != 3 {
		t.Fatalf("len(Overlays) = %d; want 3", len(s.Overlays))
	}

	p := s.Provider()
	if pkg, ok := p.EnabledPackageName("com.android.systemui", "sysui"); !ok || pkg != "pkg.sysui" {
		t.Errorf("sysui = %q, %v; want pkg.sysui, true", pkg, ok)
	}
	if _, ok := p.EnabledPackageName("android", "android"); ok {
		t.Error("disabled entries should not be enabled")
	}
	if _, ok := p.EnabledPackageName("com.android.settings", "settings"); ok {
		t.Error("entries without a package should not be enabled")
	}
}

func TestParseSnapshot_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ParseSnapshot([]byte(`{"version": 2, "overlays": []}`)); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("ParseSnapshot(v2) error = %v; want ErrUnsupportedVersion", err)
	}
	if _, err := ParseSnapshot([]byte(`{"overlays": [`)); err == nil {
		t.Error("ParseSnapshot() should fail for truncated JSON")
	}
	if _, err := ParseSnapshot([]byte(`{"version": "one"}`)); err == nil {
		t.Error("ParseSnapshot() should fail for a non-numeric version")
	}
}

func TestParseSnapshot_EmptyObject(t *testing.T) {
	t.Parallel()

	s, err := ParseSnapshot([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseSnapshot() error: %v", err)
	}
	if s.Provider().Len() != 0 {
		t.Error("empty snapshot should enable nothing")
	}
}

func TestWriteAndLoadSnapshot(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	m.Enable("com.android.systemui", "sysui", `pkg."quoted"`)
	m.Enable("android", "android", "pkg.android")

	path := filepath.Join(t.TempDir(), "state.json")
	if err := WriteSnapshot(path, SnapshotOf(m)); err != nil {
		t.Fatalf("WriteSnapshot() error: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("Len() = %d; want 2", loaded.Len())
	}
	if pkg, _ := loaded.EnabledPackageName("com.android.systemui", "sysui"); pkg != `pkg."quoted"` {
		t.Errorf("sysui = %q", pkg)
	}
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSnapshot() error = %v; want os.ErrNotExist", err)
	}
}
