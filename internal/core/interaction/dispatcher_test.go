package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskshell/deskshell/internal/core/camera"
	"github.com/deskshell/deskshell/internal/core/scene"
	"github.com/deskshell/deskshell/pkg/geom"
)

type recordingSink struct {
	views []string
	docs  []string
	keys  []rune
}

func (s *recordingSink) RequestView(name string)  { s.views = append(s.views, name) }
func (s *recordingSink) OpenDocument(name string) { s.docs = append(s.docs, name) }
func (s *recordingSink) KeyPressed(r rune)        { s.keys = append(s.keys, r) }

// testRig puts the camera on -Z looking at the origin so a center click
// travels down +Z.
func testRig() (*scene.Graph, *scene.Camera, *recordingSink, *Dispatcher) {
	g := scene.NewGraph()
	cam := scene.NewCamera(geom.V3(0, 0, -10), geom.V3(0, 0, 0), 60)
	sink := &recordingSink{}
	d := New(g, cam, sink, nil)
	d.SetViewport(800, 600)
	return g, cam, sink, d
}

func addTagged(g *scene.Graph, name string, pos geom.Vec3, radius float64, capability scene.Capability, key rune) {
	o := scene.NewObject(name, pos, radius)
	o.Capability = capability
	o.KeyRune = key
	g.Add(o)
}

func TestClickBeforeLoadIsNoop(t *testing.T) {
	g, _, sink, d := testRig()
	addTagged(g, "monitor_screen", geom.V3(0, 0, 0), 2, scene.CapMonitorSurface, 0)

	d.Click(400, 300)
	assert.Empty(t, sink.views)

	g.SetLoaded(true)
	d.Click(400, 300)
	assert.Equal(t, []string{camera.ViewMonitor}, sink.views)
}

func TestNearestHitWinsAndOnlyOneRouteFires(t *testing.T) {
	g, _, sink, d := testRig()
	g.SetLoaded(true)
	// desk surface behind the monitor along the same ray
	addTagged(g, "mesa_top", geom.V3(0, 0, 5), 2, scene.CapDeskSurface, 0)
	addTagged(g, "monitor_screen", geom.V3(0, 0, 0), 2, scene.CapMonitorSurface, 0)

	d.Click(400, 300)
	require.Equal(t, []string{camera.ViewMonitor}, sink.views)
	assert.Empty(t, sink.docs)
	assert.Empty(t, sink.keys)
}

func TestMissIsNoop(t *testing.T) {
	g, _, sink, d := testRig()
	g.SetLoaded(true)
	addTagged(g, "monitor_screen", geom.V3(50, 0, 0), 1, scene.CapMonitorSurface, 0)
	d.Click(400, 300)
	assert.Empty(t, sink.views)
}

func TestNonInteractiveHitIsNoop(t *testing.T) {
	g, _, sink, d := testRig()
	g.SetLoaded(true)
	addTagged(g, "plant", geom.V3(0, 0, 0), 2, scene.CapNone, 0)
	d.Click(400, 300)
	assert.Empty(t, sink.views)
	assert.Empty(t, sink.docs)
}

func TestPrinterOpensDocument(t *testing.T) {
	g, _, sink, d := testRig()
	g.SetLoaded(true)
	addTagged(g, "hp_printer", geom.V3(0, 0, 0), 2, scene.CapPrinter, 0)
	d.Click(400, 300)
	assert.Equal(t, []string{"resume"}, sink.docs)
}

func TestKeyRouting(t *testing.T) {
	g, _, sink, d := testRig()
	g.SetLoaded(true)
	addTagged(g, "key_q", geom.V3(0, 0, 0), 2, scene.CapKey, 'q')
	d.Click(400, 300)
	assert.Equal(t, []rune{'q'}, sink.keys)
}

func TestTrashAndBlackHoleViews(t *testing.T) {
	g, _, sink, d := testRig()
	g.SetLoaded(true)
	addTagged(g, "Bin_Body", geom.V3(0, 0, 0), 2, scene.CapTrashBin, 0)
	d.Click(400, 300)

	g.Add(scene.NewObject("Bin_Body", geom.V3(50, 0, 0), 2)) // move it away
	addTagged(g, "hole", geom.V3(0, 0, 0), 2, scene.CapBlackHole, 0)
	d.Click(400, 300)

	assert.Equal(t, []string{camera.ViewTrash, camera.ViewBlackHole}, sink.views)
}

func TestHoverTracksInteractivity(t *testing.T) {
	g, _, _, d := testRig()
	g.SetLoaded(true)
	addTagged(g, "monitor_screen", geom.V3(0, 0, 0), 2, scene.CapMonitorSurface, 0)
	addTagged(g, "plant", geom.V3(30, 0, 0), 2, scene.CapNone, 0)

	d.Hover(400, 300)
	assert.True(t, d.Hovering())

	// pointer drifts into empty space: affordance clears
	d.Hover(0, 0)
	assert.False(t, d.Hovering())
}

func TestZeroViewportIsNoop(t *testing.T) {
	g, cam, sink, _ := testRig()
	g.SetLoaded(true)
	addTagged(g, "monitor_screen", geom.V3(0, 0, 0), 2, scene.CapMonitorSurface, 0)
	d := New(g, cam, sink, nil)
	d.Click(400, 300)
	assert.Empty(t, sink.views)
}
