// Package scene is the in-memory renderer collaborator: a flat scene graph
// with name lookup, ray intersection and one-time capability tagging.
package scene

import (
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/deskshell/deskshell/pkg/geom"
)

// Object is one named, hit-testable node of the scene graph.
type Object struct {
	Name     string
	Handle   uint64 // stable 64-bit id derived from the name
	Position geom.Vec3
	Radius   float64 // bounding sphere

	Capability Capability
	KeyRune    rune // set when Capability == CapKey
}

// NewObject builds an object with its handle precomputed.
func NewObject(name string, position geom.Vec3, radius float64) *Object {
	return &Object{
		Name:     name,
		Handle:   xxhash.Sum64String(name),
		Position: position,
		Radius:   radius,
	}
}

// Hit is one ray intersection.
type Hit struct {
	Object   *Object
	Distance float64
}

// Graph holds the scene objects. Reads are frequent (every pointer move);
// writes happen at load time only.
type Graph struct {
	mu       sync.RWMutex
	objects  []*Object
	byName   map[string]*Object
	byHandle map[uint64]*Object
	loaded   bool
}

// NewGraph creates an empty, not-yet-loaded graph.
func NewGraph() *Graph {
	return &Graph{
		byName:   make(map[string]*Object),
		byHandle: make(map[uint64]*Object),
	}
}

// Add inserts an object, replacing any previous object with the same name.
func (g *Graph) Add(o *Object) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.byName[o.Name]; ok {
		for i, cur := range g.objects {
			if cur == prev {
				g.objects[i] = o
				break
			}
		}
	} else {
		g.objects = append(g.objects, o)
	}
	g.byName[o.Name] = o
	g.byHandle[o.Handle] = o
}

// Lookup returns the named object or nil. Absence is not an error; callers
// that depend on not-yet-loaded objects skip and retry after load.
func (g *Graph) Lookup(name string) *Object {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.byName[name]
}

// ByHandle returns the object with the given handle or nil.
func (g *Graph) ByHandle(h uint64) *Object {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.byHandle[h]
}

// Objects returns a snapshot of all objects.
func (g *Graph) Objects() []*Object {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Object, len(g.objects))
	copy(out, g.objects)
	return out
}

// Len returns the number of objects.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objects)
}

// SetLoaded marks the graph ready for interaction.
func (g *Graph) SetLoaded(loaded bool) {
	g.mu.Lock()
	g.loaded = loaded
	g.mu.Unlock()
}

// Loaded reports whether the scene assets resolved.
func (g *Graph) Loaded() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loaded
}

// Raycast returns all intersections sorted nearest first.
func (g *Graph) Raycast(r geom.Ray) []Hit {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var hits []Hit
	for _, o := range g.objects {
		if o.Radius <= 0 {
			continue
		}
		if d, ok := r.IntersectSphere(o.Position, o.Radius); ok {
			hits = append(hits, Hit{Object: o, Distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// RaycastFirst returns the nearest intersection, if any.
func (g *Graph) RaycastFirst(r geom.Ray) (Hit, bool) {
	hits := g.Raycast(r)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
