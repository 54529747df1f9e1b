// Package interaction turns pointer input into scene hit tests and routes
// the results: clicks trigger at most one action via the capability map,
// pointer moves drive the hover cursor affordance.
package interaction

import (
	"sync"

	"github.com/deskshell/deskshell/internal/core/camera"
	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/internal/core/scene"
)

// Sink receives the routed interactions. The shell implements it.
type Sink interface {
	// RequestView asks for a camera transition to a named view.
	RequestView(name string)
	// OpenDocument opens an external document (the printer's resume).
	OpenDocument(name string)
	// KeyPressed forwards a 3D keyboard key press.
	KeyPressed(r rune)
}

// Dispatcher hit-tests pointer events against the scene graph. All of its
// entry points are safe before the scene has loaded: they skip and return.
type Dispatcher struct {
	graph  *scene.Graph
	cam    *scene.Camera
	sink   Sink
	logger log.Log

	mu       sync.Mutex
	width    int
	height   int
	hovering bool
}

// New wires a dispatcher for one camera and scene graph.
func New(graph *scene.Graph, cam *scene.Camera, sink Sink, logger log.Log) *Dispatcher {
	if logger == nil {
		logger = log.Nop()
	}
	return &Dispatcher{graph: graph, cam: cam, sink: sink, logger: logger}
}

// SetViewport records the device-pixel viewport used to unproject pointers.
func (d *Dispatcher) SetViewport(width, height int) {
	d.mu.Lock()
	d.width, d.height = width, height
	d.mu.Unlock()
}

// Click routes a pointer click. The nearest hit wins and fires at most one
// action; zero intersections or an unloaded scene is a no-op.
func (d *Dispatcher) Click(x, y float64) {
	hit, ok := d.pick(x, y)
	if !ok {
		return
	}
	obj := hit.Object
	d.logger.Debug("click hit",
		log.String("object", obj.Name),
		log.String("capability", obj.Capability.String()),
		log.Float64("distance", hit.Distance))

	switch obj.Capability {
	case scene.CapDeskSurface:
		d.sink.RequestView(camera.ViewDesktop)
	case scene.CapMonitorSurface:
		d.sink.RequestView(camera.ViewMonitor)
	case scene.CapTrashBin:
		d.sink.RequestView(camera.ViewTrash)
	case scene.CapBlackHole:
		d.sink.RequestView(camera.ViewBlackHole)
	case scene.CapPrinter:
		d.sink.OpenDocument("resume")
	case scene.CapKey:
		d.sink.KeyPressed(obj.KeyRune)
	}
}

// Hover re-evaluates the cursor affordance for a pointer move: interactive
// when the nearest intersected object has a capability, cleared otherwise.
func (d *Dispatcher) Hover(x, y float64) {
	hovering := false
	if hit, ok := d.pick(x, y); ok {
		hovering = hit.Object.Capability.Interactive()
	}
	d.mu.Lock()
	d.hovering = hovering
	d.mu.Unlock()
}

// Hovering reports whether the pointer currently rests on an interactive
// object.
func (d *Dispatcher) Hovering() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hovering
}

func (d *Dispatcher) pick(x, y float64) (scene.Hit, bool) {
	if !d.graph.Loaded() {
		return scene.Hit{}, false
	}
	d.mu.Lock()
	w, h := d.width, d.height
	d.mu.Unlock()
	if w <= 0 || h <= 0 {
		return scene.Hit{}, false
	}
	return d.graph.RaycastFirst(d.cam.ScreenRay(x, y, w, h))
}
