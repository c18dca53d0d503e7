package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
)

// ContactTest returns a contact for every static solid and actor proxy that s overlaps when placed at `at`.
func (w *World) ContactTest(s shape.Shape, at mgl64.Vec3) collision.ContactManifold {
	bb := s.Bounds(at)

	w.mu.RLock()
	defer w.mu.RUnlock()

	var m collision.ContactManifold
	for _, solid := range w.boxes {
		if c, ok := boxContact(bb, solid); ok {
			m = append(m, c)
		}
	}
	centre := s.Centre(at)
	for _, p := range w.planes {
		r := supportRadius(s.HalfExtents, p.Normal)
		if sep := p.Normal.Dot(centre) - p.Distance - r; sep < 0 {
			m = append(m, collision.Contact{
				Point:  centre.Sub(p.Normal.Mul(r + sep/2)),
				Normal: p.Normal,
				Depth:  sep,
			})
		}
	}
	for id, px := range w.proxies {
		for _, other := range []shape.Shape{px.shapes.External(), px.shapes.Internal()} {
			if c, ok := boxContact(bb, other.Bounds(px.pos)); ok {
				c.Owner = id
				m = append(m, c)
			}
		}
	}
	return m
}

// boxContact returns the contact pushing a out of b, if the two boxes intersect. Boxes that only touch do not.
func boxContact(a, b cube.BBox) (collision.Contact, bool) {
	if !a.IntersectsWith(b) {
		return collision.Contact{}, false
	}
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	n, depth := pushOut(a, b)

	var lo, hi mgl64.Vec3
	for i := range 3 {
		lo[i], hi[i] = max(aMin[i], bMin[i]), min(aMax[i], bMax[i])
	}
	return collision.Contact{
		Point:  lo.Add(hi).Mul(0.5),
		Normal: n,
		Depth:  -depth,
		Owner:  game.NoActor,
	}, true
}
