// ABOUTME: Overlay state snapshot files: JSON list of (target, category, package, enabled)
// ABOUTME: LoadSnapshot decodes a file into a Memory provider; disabled entries are dropped

package overlaystate

import (
	"errors"
	"fmt"
	"os"

	"github.com/mailru/easyjson"
)

// SnapshotVersion is the newest snapshot format this package reads.
const SnapshotVersion = 1

// ErrUnsupportedVersion is returned for snapshots newer than SnapshotVersion.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Entry is one overlay record in a snapshot.
type Entry struct {
	Target   string `json:"target"`
	Category string `json:"category"`
	Package  string `json:"package"`
	Enabled  bool   `json:"enabled"`
}

// Snapshot is the on-disk form of an overlay state.
type Snapshot struct {
	Version  int     `json:"version"`
	Overlays []Entry `json:"overlays"`
}

// ParseSnapshot decodes snapshot JSON.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := easyjson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	return &s, nil
}

// Provider builds a Memory provider from the enabled entries. When a slot is
// listed twice, the last enabled entry wins.
func (s *Snapshot) Provider() *Memory {
	m := NewMemory()
	for _, e := range s.Overlays {
		if e.Enabled && e.Package != "" {
			m.Enable(e.Target, e.Category, e.Package)
		}
	}
	return m
}

// LoadSnapshot reads a snapshot file and returns its provider.
func LoadSnapshot(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	s, err := ParseSnapshot(data)
	if err != nil {
		return nil, err
	}
	return s.Provider(), nil
}

// SnapshotOf captures the current state of m.
func SnapshotOf(m *Memory) *Snapshot {
	return &Snapshot{Version: SnapshotVersion, Overlays: m.Entries()}
}

// WriteSnapshot encodes s to path.
func WriteSnapshot(path string, s *Snapshot) error {
	data, err := easyjson.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
