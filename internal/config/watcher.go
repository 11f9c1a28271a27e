// ABOUTME: Polling-based file watcher for the state snapshot, registry and catalogs
// ABOUTME: Compares mtime and size at a fixed interval; Run blocks until the context ends

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type fileStamp struct {
	mtime time.Time
	size  int64
}

// Watcher reports which of its paths changed since the previous check.
// Files that appear, disappear, or change mtime or size count as changed.
// Paths containing glob metacharacters are re-expanded on every check, so
// files created after the watcher started are tracked too.
type Watcher struct {
	paths    []string
	interval time.Duration

	mu     sync.Mutex
	stamps map[string]fileStamp
}

// NewWatcher creates a watcher and records the current state of paths.
func NewWatcher(paths []string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	w := &Watcher{
		paths:    paths,
		interval: interval,
		stamps:   make(map[string]fileStamp, len(paths)),
	}
	w.Check()
	return w
}

// Check re-stats every path and returns the ones that changed.
func (w *Watcher) Check() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var changed []string
	seen := make(map[string]bool, len(w.stamps))
	for _, path := range w.expand() {
		if seen[path] {
			continue
		}
		seen[path] = true
		prev, existed := w.stamps[path]
		info, err := os.Stat(path)
		if err != nil {
			if existed {
				delete(w.stamps, path)
				changed = append(changed, path)
			}
			continue
		}
		cur := fileStamp{mtime: info.ModTime(), size: info.Size()}
		w.stamps[path] = cur
		if existed && cur.mtime.Equal(prev.mtime) && cur.size == prev.size {
			continue
		}
		changed = append(changed, path)
	}
	for path := range w.stamps {
		if !seen[path] {
			delete(w.stamps, path)
			changed = append(changed, path)
		}
	}
	return changed
}

// expand returns the literal paths plus the current matches of each pattern.
func (w *Watcher) expand() []string {
	out := make([]string, 0, len(w.paths))
	for _, p := range w.paths {
		if !strings.ContainsAny(p, "*?[") {
			out = append(out, p)
			continue
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			continue
		}
		out = append(out, matches...)
	}
	return out
}

// Run polls until ctx is done, calling onChange with each non-empty set of
// changed paths. It returns ctx.Err().
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if changed := w.Check(); len(changed) > 0 {
				onChange(changed)
			}
		}
	}
}
