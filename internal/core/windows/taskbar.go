package windows

import "github.com/deskshell/deskshell/pkg/sequence"

// TaskbarButton is the render state of one taskbar entry. It is a pure
// function of the manager state and recomputed on every call, never cached.
type TaskbarButton struct {
	ID        ID
	Title     string
	Icon      string
	Active    bool
	Minimized bool
}

// Taskbar projects the open windows onto taskbar buttons in openedOrder:
// the history list keeps closed windows' slots, so the projection filters by
// Open here rather than pruning the order.
func (m *Manager) Taskbar() []TaskbarButton {
	m.mu.Lock()
	defer m.mu.Unlock()

	open := sequence.From(m.openedOrder).
		Filter(func(id ID) bool {
			e := m.entities[id]
			return e != nil && e.Open
		})

	return sequence.Map(open, func(id ID) TaskbarButton {
		e := m.entities[id]
		return TaskbarButton{
			ID:        id,
			Title:     e.Title,
			Icon:      e.Icon,
			Active:    m.active == id && !e.Minimized,
			Minimized: e.Minimized,
		}
	}).Collect()
}

// DesktopIcon is one clickable desktop shortcut.
type DesktopIcon struct {
	ID    ID
	Title string
	Icon  string
}

// DesktopIcons lists every registered window in registration order,
// independent of open state.
func (m *Manager) DesktopIcons() []DesktopIcon {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sequence.Map(sequence.From(m.order), func(id ID) DesktopIcon {
		e := m.entities[id]
		return DesktopIcon{ID: id, Title: e.Title, Icon: e.Icon}
	}).Collect()
}

// Stack returns the open, non-minimized windows ordered back to front.
func (m *Manager) Stack() []Entity {
	m.mu.Lock()
	defer m.mu.Unlock()
	visible := sequence.FromMap(m.entities).
		Filter(func(e *Entity) bool { return e.Open && !e.Minimized })
	return sequence.Map(visible, func(e *Entity) Entity { return *e }).
		Sorted(func(a, b Entity) bool { return a.Z < b.Z })
}
