package scene

import (
	"math"
	"sync"

	"github.com/deskshell/deskshell/pkg/geom"
)

// Camera is the mutable viewing state owned by the renderer and driven by the
// camera animator. FOV is the vertical field of view in degrees.
type Camera struct {
	mu       sync.Mutex
	position geom.Vec3
	fov      float64
	up       geom.Vec3
	lookAt   geom.Vec3
}

// NewCamera creates a camera at position looking at lookAt.
func NewCamera(position, lookAt geom.Vec3, fov float64) *Camera {
	return &Camera{
		position: position,
		fov:      fov,
		up:       geom.V3(0, 1, 0),
		lookAt:   lookAt,
	}
}

func (c *Camera) Position() geom.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *Camera) SetPosition(p geom.Vec3) {
	c.mu.Lock()
	c.position = p
	c.mu.Unlock()
}

func (c *Camera) FOV() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *Camera) SetFOV(fov float64) {
	c.mu.Lock()
	c.fov = fov
	c.mu.Unlock()
}

// LookAt re-orients the camera toward p.
func (c *Camera) LookAt(p geom.Vec3) {
	c.mu.Lock()
	c.lookAt = p
	c.mu.Unlock()
}

// LookTarget returns the point the camera currently faces.
func (c *Camera) LookTarget() geom.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookAt
}

// Forward returns the unit view direction.
func (c *Camera) Forward() geom.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookAt.Sub(c.position).Normalize()
}

// ScreenRay builds a world-space ray through the given device pixel for a
// viewport of width x height pixels.
func (c *Camera) ScreenRay(x, y float64, width, height int) geom.Ray {
	c.mu.Lock()
	position := c.position
	lookAt := c.lookAt
	fov := c.fov
	up := c.up
	c.mu.Unlock()

	if width <= 0 || height <= 0 {
		return geom.NewRay(position, lookAt.Sub(position))
	}

	forward := lookAt.Sub(position).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	aspect := float64(width) / float64(height)
	tanHalf := math.Tan(geom.Radians(fov) / 2)

	// device pixels -> normalized device coordinates
	ndcX := 2*x/float64(width) - 1
	ndcY := 1 - 2*y/float64(height)

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(trueUp.Scale(ndcY * tanHalf))
	return geom.NewRay(position, dir)
}

// OrbitControls is the controls collaborator: the orbit target the animator
// tweens alongside the camera position.
type OrbitControls struct {
	mu     sync.Mutex
	target geom.Vec3
}

// NewOrbitControls creates controls aimed at target.
func NewOrbitControls(target geom.Vec3) *OrbitControls {
	return &OrbitControls{target: target}
}

func (o *OrbitControls) Target() geom.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.target
}

func (o *OrbitControls) SetTarget(t geom.Vec3) {
	o.mu.Lock()
	o.target = t
	o.mu.Unlock()
}
