// Package windows implements the simulated-desktop window manager: a closed
// registry of window entities with open/minimize/z-order state and a taskbar
// projection.
package windows

import (
	"sync"

	"github.com/deskshell/deskshell/internal/core/observability/log"
)

// baseZ is the floor for z assignment; the first focused window gets baseZ+1.
const baseZ = 10

// ID names one window of the closed set registered at construction.
type ID string

// Definition declares a window at registry-initialization time.
type Definition struct {
	ID    ID
	Title string
	Icon  string
}

// Entity is the state of one simulated application window.
type Entity struct {
	ID        ID
	Title     string
	Icon      string
	Open      bool
	Minimized bool
	Z         int
	// Content is an opaque payload owned by the caller. It survives
	// minimize and restore; visibility is a projection over Open and
	// Minimized, never a create/destroy decision.
	Content any
}

// Manager owns all window entities for one session. All state transitions go
// through its methods; reads return copies.
type Manager struct {
	mu       sync.Mutex
	entities map[ID]*Entity
	// order is registration order and drives desktop icons.
	order []ID
	// openedOrder is the append-only open history. Entries are never removed
	// on close, only filtered by Open at render time, so a window re-opened
	// later keeps its original taskbar slot.
	openedOrder []ID
	active      ID
	logger      log.Log
}

// NewManager registers the closed window set, all windows starting closed.
func NewManager(logger log.Log, defs ...Definition) *Manager {
	if logger == nil {
		logger = log.Nop()
	}
	m := &Manager{
		entities: make(map[ID]*Entity, len(defs)),
		logger:   logger,
	}
	for _, d := range defs {
		if _, dup := m.entities[d.ID]; dup {
			logger.Warn("duplicate window definition ignored", log.String("id", string(d.ID)))
			continue
		}
		m.entities[d.ID] = &Entity{ID: d.ID, Title: d.Title, Icon: d.Icon}
		m.order = append(m.order, d.ID)
	}
	return m
}

// Open opens the window, brings it to front and focuses it. Repeat opens are
// idempotent with respect to openedOrder.
func (m *Manager) Open(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entity(id)
	if e == nil {
		return
	}
	e.Open = true
	e.Minimized = false
	if !m.everOpened(id) {
		m.openedOrder = append(m.openedOrder, id)
	}
	m.bringToFrontLocked(e)
}

// Close closes the window. The openedOrder entry is kept; taskbar rendering
// filters by Open.
func (m *Manager) Close(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entity(id)
	if e == nil {
		return
	}
	e.Open = false
	e.Minimized = false
	if m.active == id {
		m.active = ""
	}
}

// Minimize hides the window without closing it. Minimizing the active window
// clears active-window state.
func (m *Manager) Minimize(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entity(id)
	if e == nil || !e.Open {
		return
	}
	e.Minimized = true
	if m.active == id {
		m.active = ""
	}
}

// ToggleFromTaskbar is the single-click taskbar behavior: restore when
// minimized, minimize when active, otherwise just bring to front.
func (m *Manager) ToggleFromTaskbar(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entity(id)
	if e == nil || !e.Open {
		return
	}
	switch {
	case e.Minimized:
		e.Minimized = false
		m.bringToFrontLocked(e)
	case m.active == id:
		e.Minimized = true
		m.active = ""
	default:
		m.bringToFrontLocked(e)
	}
}

// BringToFront assigns the next z value and focuses the window.
func (m *Manager) BringToFront(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entity(id)
	if e == nil || !e.Open {
		return
	}
	m.bringToFrontLocked(e)
}

// bringToFrontLocked issues z = max(existing, baseZ) + 1, so the sequence of
// assigned z values is strictly increasing and never ties.
func (m *Manager) bringToFrontLocked(e *Entity) {
	maxZ := baseZ
	for _, cur := range m.entities {
		if cur.Z > maxZ {
			maxZ = cur.Z
		}
	}
	e.Z = maxZ + 1
	m.active = e.ID
}

// SetContent attaches the caller-owned payload for a window.
func (m *Manager) SetContent(id ID, content any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.entity(id); e != nil {
		e.Content = content
	}
}

// Content returns the caller-owned payload for a window.
func (m *Manager) Content(id ID) any {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.entity(id); e != nil {
		return e.Content
	}
	return nil
}

// Retitle replaces window titles, used when the locale changes.
func (m *Manager) Retitle(titles map[ID]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, title := range titles {
		if e := m.entities[id]; e != nil {
			e.Title = title
		}
	}
}

// Get returns a copy of the window state.
func (m *Manager) Get(id ID) (Entity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entities[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Active returns the focused window id, or "" when none is focused.
func (m *Manager) Active() ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// OpenedOrder returns a copy of the open-history sequence.
func (m *Manager) OpenedOrder() []ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ID, len(m.openedOrder))
	copy(out, m.openedOrder)
	return out
}

// IDs returns the closed window set in registration order.
func (m *Manager) IDs() []ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ID, len(m.order))
	copy(out, m.order)
	return out
}

// AnyOpen reports whether at least one window is open.
func (m *Manager) AnyOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entities {
		if e.Open {
			return true
		}
	}
	return false
}

func (m *Manager) entity(id ID) *Entity {
	e, ok := m.entities[id]
	if !ok {
		// ids are a closed compile-time set; reaching this is a programmer
		// error and the operation is dropped.
		m.logger.Warn("unknown window id", log.String("id", string(id)))
		return nil
	}
	return e
}

func (m *Manager) everOpened(id ID) bool {
	for _, cur := range m.openedOrder {
		if cur == id {
			return true
		}
	}
	return false
}
