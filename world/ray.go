package world

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
)

// RayTest casts a ray from `from` to `to` against the static geometry. A ray that starts inside a solid hits it at
// fraction 0.
func (w *World) RayTest(from, to mgl64.Vec3) collision.TraceResult {
	dir := to.Sub(from)
	if dir.Len() == 0 {
		return collision.Miss(from)
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	best, bestNormal, found := math.Inf(1), mgl64.Vec3{}, false
	for _, bb := range w.boxes {
		if t, n, ok := rayBox(from, dir, bb); ok && t < best {
			best, bestNormal, found = t, n, true
		}
	}
	for _, p := range w.planes {
		if t, n, ok := rayPlane(from, dir, p); ok && t < best {
			best, bestNormal, found = t, n, true
		}
	}
	if !found {
		return collision.Miss(to)
	}
	return collision.Hit(best, from.Add(dir.Mul(best)), bestNormal)
}

// rayBox intersects the segment from origin to origin+dir with a box. A segment starting inside the box hits it
// immediately.
func rayBox(origin, dir mgl64.Vec3, bb cube.BBox) (float64, mgl64.Vec3, bool) {
	if bb.Vec3Within(origin) {
		return 0, dir.Normalize().Mul(-1), true
	}
	res, ok := trace.BBoxIntercept(bb, origin, origin.Add(dir))
	if !ok {
		return 0, mgl64.Vec3{}, false
	}
	return res.Position().Sub(origin).Len() / dir.Len(), faceNormal(res.Face()), true
}

// faceNormal returns the outward normal of a box face. Faces are named for a y-up world, so north and south lie on
// the z axis here.
func faceNormal(f cube.Face) mgl64.Vec3 {
	switch f {
	case cube.FaceWest:
		return mgl64.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl64.Vec3{1, 0, 0}
	case cube.FaceDown:
		return mgl64.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl64.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl64.Vec3{0, 0, -1}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

func rayPlane(origin, dir mgl64.Vec3, p Plane) (float64, mgl64.Vec3, bool) {
	s := p.Normal.Dot(origin) - p.Distance
	if s < 0 {
		return 0, p.Normal, true
	}
	dn := p.Normal.Dot(dir)
	if dn >= 0 {
		return 0, mgl64.Vec3{}, false
	}
	t := s / -dn
	if t > 1 {
		return 0, mgl64.Vec3{}, false
	}
	return t, p.Normal, true
}
