package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	assert.Equal(t, V3(5, 7, 9), a.Add(b))
	assert.Equal(t, V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.Equal(t, V3(-3, 6, -3), a.Cross(b))
}

func TestNormalize(t *testing.T) {
	v := V3(3, 0, 4).Normalize()
	assert.InDelta(t, 1, v.Length(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestLerpClamps(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 10, 10)
	assert.Equal(t, V3(5, 5, 5), a.Lerp(b, 0.5))
	assert.Equal(t, b, a.Lerp(b, 2))
	assert.Equal(t, a, a.Lerp(b, -1))
	assert.InDelta(t, 7.5, Lerp(5, 10, 0.5), 1e-12)
}

func TestRaySphere(t *testing.T) {
	r := NewRay(V3(0, 0, -5), V3(0, 0, 1))

	d, ok := r.IntersectSphere(V3(0, 0, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-9)

	_, ok = r.IntersectSphere(V3(5, 0, 0), 1)
	assert.False(t, ok)

	// ray starting inside reports the exit
	inside := NewRay(V3(0, 0, 0), V3(0, 0, 1))
	d, ok = inside.IntersectSphere(V3(0, 0, 0), 2)
	require.True(t, ok)
	assert.InDelta(t, 2, d, 1e-9)

	// sphere fully behind the origin
	_, ok = r.IntersectSphere(V3(0, 0, -20), 1)
	assert.False(t, ok)
}

func TestRayAABB(t *testing.T) {
	box := AABB{Min: V3(-1, -1, -1), Max: V3(1, 1, 1)}

	d, ok := NewRay(V3(0, 0, -5), V3(0, 0, 1)).IntersectAABB(box)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-9)

	_, ok = NewRay(V3(0, 5, -5), V3(0, 0, 1)).IntersectAABB(box)
	assert.False(t, ok)

	// axis-parallel ray outside the slab
	_, ok = NewRay(V3(3, 0, -5), V3(0, 0, 1)).IntersectAABB(box)
	assert.False(t, ok)
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
	assert.InDelta(t, 180, Degrees(math.Pi), 1e-12)
}
