package world

import (
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/assert"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
)

var (
	_ collision.World       = (*World)(nil)
	_ collision.ProxyWriter = (*World)(nil)
)

// Plane is a solid half-space: every point x with Normal·x <= Distance is inside it.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// PlaneThrough returns the half-space bounded by the plane through point with the given outward normal.
func PlaneThrough(normal, point mgl64.Vec3) Plane {
	assert.IsTrue(normal.Len() > 0, "plane normal must not be zero")
	n := normal.Normalize()
	return Plane{Normal: n, Distance: n.Dot(point)}
}

type proxy struct {
	shapes shape.ActorShapes
	pos    mgl64.Vec3
}

// World is a collision world made of static axis-aligned boxes and half-spaces. Shapes are tested through their
// axis-aligned bounds, so capsules behave like boxes here. Queries may run concurrently; proxy writes take an
// exclusive lock.
type World struct {
	mu      sync.RWMutex
	boxes   []cube.BBox
	planes  []Plane
	proxies map[game.ActorID]proxy
}

// New returns an empty world.
func New() *World {
	return &World{proxies: make(map[game.ActorID]proxy)}
}

// AddBox adds a static box to the world.
func (w *World) AddBox(bb cube.BBox) {
	min, max := bb.Min(), bb.Max()
	assert.IsTrue(min[0] < max[0] && min[1] < max[1] && min[2] < max[2], "box %v-%v has no volume", min, max)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.boxes = append(w.boxes, bb)
}

// AddPlane adds a static half-space to the world.
func (w *World) AddPlane(p Plane) {
	assert.IsTrue(game.Float64ApproxEq(p.Normal.Len(), 1), "plane normal %v is not unit length", p.Normal)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.planes = append(w.planes, p)
}

// AddGround adds an infinite flat floor whose surface lies at height z.
func (w *World) AddGround(z float64) {
	w.AddPlane(PlaneThrough(game.Up, mgl64.Vec3{0, 0, z}))
}

// Boxes returns a copy of the static boxes in the world.
func (w *World) Boxes() []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]cube.BBox(nil), w.boxes...)
}

// UpdateProxy places the shapes of an actor in the world.
func (w *World) UpdateProxy(id game.ActorID, shapes shape.ActorShapes, pos mgl64.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.proxies[id] = proxy{shapes: shapes, pos: pos}
}

// RemoveProxy removes the shapes of an actor from the world.
func (w *World) RemoveProxy(id game.ActorID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.proxies, id)
}

// Proxy returns the last position written for an actor.
func (w *World) Proxy(id game.ActorID) (mgl64.Vec3, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p, ok := w.proxies[id]
	return p.pos, ok
}
