package world

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
)

// touchEpsilon is the overlap below which two boxes are considered to be touching rather than intersecting. It is
// the tolerance cube.BBox.IntersectsWith applies, so sweeps and contact tests agree on what touches.
const touchEpsilon = 1e-5

// Sweep moves the bounds of s from `from` to `to` and returns the first static surface it touches. The returned
// position keeps game.Skin of clearance from that surface.
func (w *World) Sweep(s shape.Shape, from, to mgl64.Vec3) collision.TraceResult {
	delta := to.Sub(from)
	if game.IsZeroVec(delta) {
		return collision.Miss(from)
	}
	moving := s.Bounds(from)
	swept := moving.Extend(delta).Grow(game.Skin)

	w.mu.RLock()
	defer w.mu.RUnlock()

	best, bestNormal, found := math.Inf(1), mgl64.Vec3{}, false
	consider := func(t float64, n mgl64.Vec3) {
		if t < best-1e-12 || (math.Abs(t-best) <= 1e-12 && n.Dot(delta) < bestNormal.Dot(delta)) {
			best, bestNormal, found = t, n, true
		}
	}

	for _, bb := range w.boxes {
		if !swept.IntersectsWith(bb) {
			continue
		}
		if t, n, ok := sweepBox(moving, delta, bb); ok {
			consider(t, n)
		}
	}
	centre, radius := s.Centre(from), 0.0
	for _, p := range w.planes {
		radius = supportRadius(s.HalfExtents, p.Normal)
		if t, n, ok := sweepPlane(centre, radius, delta, p); ok {
			consider(t, n)
		}
	}

	if !found {
		return collision.Miss(to)
	}
	return collision.Hit(best, from.Add(delta.Mul(best)), bestNormal)
}

// sweepBox returns the time of impact of the moving box travelling by delta against a stationary box, already
// backed off by game.Skin along the contact normal.
func sweepBox(moving cube.BBox, delta mgl64.Vec3, stationary cube.BBox) (float64, mgl64.Vec3, bool) {
	aMin, aMax := moving.Min(), moving.Max()
	bMin, bMax := stationary.Min(), stationary.Max()

	tEnter, tExit, axis := math.Inf(-1), math.Inf(1), -1
	for i := range 3 {
		d := delta[i]
		if math.Abs(d) < 1e-12 {
			if aMax[i] <= bMin[i]+touchEpsilon || aMin[i] >= bMax[i]-touchEpsilon {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		var t0, t1 float64
		if d > 0 {
			t0, t1 = (bMin[i]-aMax[i])/d, (bMax[i]-aMin[i])/d
		} else {
			t0, t1 = (bMax[i]-aMin[i])/d, (bMin[i]-aMax[i])/d
		}
		if t0 > tEnter {
			tEnter, axis = t0, i
		}
		tExit = math.Min(tExit, t1)
	}
	if axis < 0 || tEnter > tExit || tEnter >= 1 || tExit <= 0 {
		return 0, mgl64.Vec3{}, false
	}

	if tEnter <= 0 {
		// Already touching or overlapping: only block movement that goes deeper.
		n, _ := pushOut(moving, stationary)
		if n.Dot(delta) >= 0 {
			return 0, mgl64.Vec3{}, false
		}
		return 0, n, true
	}

	var n mgl64.Vec3
	n[axis] = -math.Copysign(1, delta[axis])
	t := math.Max(0, tEnter-game.Skin/math.Abs(delta[axis]))
	return t, n, true
}

// sweepPlane returns the time of impact of a box, summarised by its centre and its support radius along the plane
// normal, against a half-space.
func sweepPlane(centre mgl64.Vec3, radius float64, delta mgl64.Vec3, p Plane) (float64, mgl64.Vec3, bool) {
	sep := p.Normal.Dot(centre) - p.Distance - radius
	dn := p.Normal.Dot(delta)
	if dn >= 0 {
		return 0, mgl64.Vec3{}, false
	}
	if sep <= touchEpsilon {
		return 0, p.Normal, true
	}
	t := sep / -dn
	if t >= 1 {
		return 0, mgl64.Vec3{}, false
	}
	return math.Max(0, (sep-game.Skin)/-dn), p.Normal, true
}

// supportRadius is the extent of a box with the given half-extents projected onto n.
func supportRadius(he, n mgl64.Vec3) float64 {
	return math.Abs(n[0])*he[0] + math.Abs(n[1])*he[1] + math.Abs(n[2])*he[2]
}

// pushOut returns the axis-aligned direction that separates a from b with the least movement, and that
// movement's length.
func pushOut(a, b cube.BBox) (mgl64.Vec3, float64) {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	best, n := math.Inf(1), mgl64.Vec3{}
	for i := range 3 {
		if pos := bMax[i] - aMin[i]; pos < best {
			best, n = pos, mgl64.Vec3{}
			n[i] = 1
		}
		if neg := aMax[i] - bMin[i]; neg < best {
			best, n = neg, mgl64.Vec3{}
			n[i] = -1
		}
	}
	return n, best
}
