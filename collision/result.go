package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
)

// TraceResult is the outcome of a single sweep or ray query. It is immutable; build one with Miss or Hit.
type TraceResult struct {
	fraction float64
	end      mgl64.Vec3
	normal   mgl64.Vec3
	hit      bool
}

// Miss returns the result of a query that reached end without touching anything.
func Miss(end mgl64.Vec3) TraceResult {
	return TraceResult{fraction: 1, end: end}
}

// Hit returns the result of a query that stopped at the given fraction of its path against a surface with the
// given normal. The fraction is clamped to [0, 1] and the normal normalised.
func Hit(fraction float64, end, normal mgl64.Vec3) TraceResult {
	if l := normal.Len(); l > 0 {
		normal = normal.Mul(1 / l)
	}
	return TraceResult{
		fraction: game.ClampFloat(fraction, 0, 1),
		end:      end,
		normal:   normal,
		hit:      true,
	}
}

// Fraction is the proportion of the requested displacement achieved: 0 when blocked immediately, 1 when
// unobstructed.
func (r TraceResult) Fraction() float64 {
	return r.fraction
}

// EndPosition is where the queried shape or ray stopped.
func (r TraceResult) EndPosition() mgl64.Vec3 {
	return r.end
}

// PlaneNormal is the unit normal of the surface that was hit. It is the zero vector for a miss.
func (r TraceResult) PlaneNormal() mgl64.Vec3 {
	return r.normal
}

// HitSomething reports whether the query was obstructed.
func (r TraceResult) HitSomething() bool {
	return r.hit
}

func (r TraceResult) String() string {
	if !r.hit {
		return fmt.Sprintf("miss(end=%v)", r.end)
	}
	return fmt.Sprintf("hit(fraction=%.4f end=%v normal=%v)", r.fraction, r.end, r.normal)
}
