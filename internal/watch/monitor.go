// ABOUTME: Re-evaluates the active style when watched files change and notifies subscribers
// ABOUTME: Subscribers only hear about transitions of the active title, not every reload

package watch

import (
	"context"
	"sync"
	"time"

	"github.com/mauromedda/uistyle-go/internal/config"
	"github.com/mauromedda/uistyle-go/internal/log"
	"github.com/mauromedda/uistyle-go/pkg/style"
	"github.com/mauromedda/uistyle-go/pkg/style/catalog"
)

// State is everything needed to decide which style is active.
type State struct {
	Registry *style.Registry
	Catalog  *catalog.Catalog
	Provider style.OverlayStateProvider
}

// Loader rebuilds State from disk.
type Loader func() (*State, error)

// Change describes a transition of the active style. Titles are empty when no
// option was active.
type Change struct {
	Previous string
	Current  string
	At       time.Time
}

// Handler receives changes.
type Handler func(Change)

// Monitor tracks the active style title.
type Monitor struct {
	load Loader
	now  func() time.Time

	mu        sync.Mutex
	evaluated bool
	current   string

	subMu  sync.RWMutex
	subs   map[int]Handler
	nextID int
}

// NewMonitor creates a monitor that reloads state with load.
func NewMonitor(load Loader) *Monitor {
	return &Monitor{
		load: load,
		now:  time.Now,
		subs: make(map[int]Handler),
	}
}

// Subscribe registers h and returns a function that removes it.
func (m *Monitor) Subscribe(h Handler) func() {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = h
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// Current returns the last evaluated active title.
func (m *Monitor) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Evaluate reloads state and recomputes the active title. The first call
// always publishes; later calls publish only when the title changes.
func (m *Monitor) Evaluate() (Change, bool, error) {
	st, err := m.load()
	if err != nil {
		return Change{}, false, err
	}

	title := ""
	if active := st.Catalog.Active(st.Registry, st.Provider); active != nil {
		title = active.Title()
	}

	m.mu.Lock()
	changed := !m.evaluated || title != m.current
	ch := Change{Previous: m.current, Current: title, At: m.now()}
	m.evaluated = true
	m.current = title
	m.mu.Unlock()

	if changed {
		m.publish(ch)
	}
	return ch, changed, nil
}

func (m *Monitor) publish(ch Change) {
	m.subMu.RLock()
	snapshot := make([]Handler, 0, len(m.subs))
	for _, h := range m.subs {
		snapshot = append(snapshot, h)
	}
	m.subMu.RUnlock()

	for _, h := range snapshot {
		h(ch)
	}
}

// Run evaluates once, then again whenever w reports a change, until ctx is
// done. Reload errors are logged and the previous title is kept.
func (m *Monitor) Run(ctx context.Context, w *config.Watcher) error {
	if _, _, err := m.Evaluate(); err != nil {
		return err
	}
	return w.Run(ctx, func(changed []string) {
		log.Debug("watch: changed %v", changed)
		if _, _, err := m.Evaluate(); err != nil {
			log.Warn("watch: reload failed: %v", err)
		}
	})
}
