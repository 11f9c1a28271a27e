// ABOUTME: In-memory overlay state provider guarded by a RWMutex
// ABOUTME: Used as the deterministic fake in tests and as the decoded form of snapshot files

package overlaystate

import (
	"maps"
	"slices"
	"sync"
)

// Key identifies an overlay slot: one category on one target.
type Key struct {
	Target   string
	Category string
}

// Memory holds enabled overlays keyed by (target, category).
// It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	enabled map[Key]string
}

// NewMemory returns an empty provider: nothing is enabled.
func NewMemory() *Memory {
	return &Memory{enabled: make(map[Key]string)}
}

// Enable records pkg as the overlay enabled for (target, category),
// replacing whatever was there.
func (m *Memory) Enable(target, category, pkg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled[Key{Target: target, Category: category}] = pkg
}

// Disable clears the overlay for (target, category).
func (m *Memory) Disable(target, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.enabled, Key{Target: target, Category: category})
}

// EnabledPackageName implements style.OverlayStateProvider.
func (m *Memory) EnabledPackageName(target, category string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pkg, ok := m.enabled[Key{Target: target, Category: category}]
	return pkg, ok
}

// Len returns the number of enabled overlays.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.enabled)
}

// Entries returns the enabled overlays sorted by target, then category.
func (m *Memory) Entries() []Entry {
	m.mu.RLock()
	keys := slices.Collect(maps.Keys(m.enabled))
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Target: k.Target, Category: k.Category, Package: m.enabled[k], Enabled: true})
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if a.Target != b.Target {
			if a.Target < b.Target {
				return -1
			}
			return 1
		}
		if a.Category < b.Category {
			return -1
		}
		if a.Category > b.Category {
			return 1
		}
		return 0
	})
	return out
}
