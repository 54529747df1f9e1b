// Package camera provides the named-view registry and the animator that
// flies the camera between views.
package camera

import (
	"sync"
	"time"

	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/pkg/geom"
)

// Well-known view names. The registry may carry more, but these are the ones
// the interaction layer routes to.
const (
	ViewDesktop   = "desktop"
	ViewMonitor   = "monitor"
	ViewConsole   = "console"
	ViewWindows   = "windows"
	ViewBlackHole = "blackhole"
	ViewTrash     = "trash"
)

// View is one immutable camera configuration.
type View struct {
	Name             string
	Position         geom.Vec3
	Target           geom.Vec3
	FOV              float64
	PositionDuration time.Duration
	FOVDuration      time.Duration
	Easing           string
}

// DefaultViews returns the built-in view table.
func DefaultViews() []View {
	return []View{
		{
			Name:             ViewDesktop,
			Position:         geom.V3(0, 2.4, 4.2),
			Target:           geom.V3(0, 1.1, 0),
			FOV:              45,
			PositionDuration: 1200 * time.Millisecond,
			FOVDuration:      900 * time.Millisecond,
			Easing:           "cubic.inOut",
		},
		{
			Name:             ViewMonitor,
			Position:         geom.V3(0, 1.6, 1.4),
			Target:           geom.V3(0, 1.35, 0),
			FOV:              30,
			PositionDuration: 1000 * time.Millisecond,
			FOVDuration:      800 * time.Millisecond,
			Easing:           "cubic.inOut",
		},
		{
			Name:             ViewConsole,
			Position:         geom.V3(0, 2, 2.2),
			Target:           geom.V3(0, 1.27, 0),
			FOV:              18,
			PositionDuration: 1000 * time.Millisecond,
			FOVDuration:      800 * time.Millisecond,
			Easing:           "quad.inOut",
		},
		{
			Name:             ViewWindows,
			Position:         geom.V3(0, 1.45, 0.6),
			Target:           geom.V3(0, 1.35, 0),
			FOV:              22,
			PositionDuration: 900 * time.Millisecond,
			FOVDuration:      700 * time.Millisecond,
			Easing:           "quad.inOut",
		},
		{
			Name:             ViewBlackHole,
			Position:         geom.V3(0, 6, -14),
			Target:           geom.V3(0, 4, -30),
			FOV:              60,
			PositionDuration: 2500 * time.Millisecond,
			FOVDuration:      2000 * time.Millisecond,
			Easing:           "expo.out",
		},
		{
			Name:             ViewTrash,
			Position:         geom.V3(-1.1, 1.2, 1.6),
			Target:           geom.V3(-1.1, 0.4, 0),
			FOV:              35,
			PositionDuration: 900 * time.Millisecond,
			FOVDuration:      700 * time.Millisecond,
			Easing:           "quad.inOut",
		},
	}
}

// Registry is the immutable name -> View table, fixed at construction. An
// unknown name resolves to the desktop view with a diagnostic, never an
// error.
type Registry struct {
	views  map[string]View
	logger log.Log

	mu     sync.Mutex
	misses map[string]struct{}
}

// NewRegistry builds a registry from the given views. A desktop view is
// always present: when the input omits one, the built-in default is added.
func NewRegistry(logger log.Log, views ...View) *Registry {
	if logger == nil {
		logger = log.Nop()
	}
	r := &Registry{
		views:  make(map[string]View, len(views)),
		logger: logger,
		misses: make(map[string]struct{}),
	}
	for _, v := range views {
		r.views[v.Name] = v
	}
	if _, ok := r.views[ViewDesktop]; !ok {
		for _, v := range DefaultViews() {
			if v.Name == ViewDesktop {
				r.views[ViewDesktop] = v
				break
			}
		}
	}
	return r
}

// Get returns the named view, or the desktop default for unknown names. Each
// distinct unknown name is logged once.
func (r *Registry) Get(name string) View {
	if v, ok := r.views[name]; ok {
		return v
	}
	r.mu.Lock()
	if _, seen := r.misses[name]; !seen {
		r.misses[name] = struct{}{}
		r.logger.Warn("unknown camera view, using desktop",
			log.String("view", name))
	}
	r.mu.Unlock()
	return r.views[ViewDesktop]
}

// Has reports whether the name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.views[name]
	return ok
}

// Names returns all registered view names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.views))
	for name := range r.views {
		out = append(out, name)
	}
	return out
}
