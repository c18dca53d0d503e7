package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
)

// World answers read-only geometric queries against registered geometry. Implementations own the broadphase
// and narrowphase; the solver never adds or removes geometry.
type World interface {
	// Sweep moves s from `from` to `to` and reports the first contact on the way.
	Sweep(s shape.Shape, from, to mgl64.Vec3) TraceResult
	// ContactTest returns every contact between s placed at `at` and overlapping geometry.
	ContactTest(s shape.Shape, at mgl64.Vec3) ContactManifold
	// RayTest casts a ray from `from` to `to`.
	RayTest(from, to mgl64.Vec3) TraceResult
}

// ProxyWriter is implemented by worlds that index actor transforms. Only the tick scheduler calls it, and never
// concurrently.
type ProxyWriter interface {
	UpdateProxy(id game.ActorID, shapes shape.ActorShapes, pos mgl64.Vec3)
	RemoveProxy(id game.ActorID)
}

// Contact is a single overlap between a queried shape and a piece of geometry.
type Contact struct {
	// Point is a point inside the overlapping region.
	Point mgl64.Vec3
	// Normal is the unit direction that pushes the queried shape out of the geometry.
	Normal mgl64.Vec3
	// Depth is the signed separation along Normal; negative when overlapping.
	Depth float64
	// Owner is the actor the geometry belongs to, or game.NoActor for world geometry.
	Owner game.ActorID
}

// ContactManifold is the set of contacts found for one shape in one query.
type ContactManifold []Contact

// Penetrating returns the world contacts that overlap by more than tolerance. Contacts with actor proxies are
// dropped: they include the queried actor's own shapes, which always overlap each other.
func (m ContactManifold) Penetrating(tolerance float64) ContactManifold {
	var out ContactManifold
	for _, c := range m {
		if c.Owner != game.NoActor {
			continue
		}
		if c.Depth < -tolerance {
			out = append(out, c)
		}
	}
	return out
}

// Deepest returns the contact with the most negative depth.
func (m ContactManifold) Deepest() (Contact, bool) {
	if len(m) == 0 {
		return Contact{}, false
	}
	best := m[0]
	for _, c := range m[1:] {
		if c.Depth < best.Depth {
			best = c
		}
	}
	return best, true
}
