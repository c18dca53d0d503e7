package shape

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind is the primitive a Shape describes.
type Kind uint8

const (
	KindBox Kind = iota
	KindCapsule
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Shape is a convex collision primitive positioned by the bottom centre of its bounds. For capsules, HalfExtents
// holds (radius, radius, halfHeight).
type Shape struct {
	Kind        Kind
	HalfExtents mgl64.Vec3
}

// Box returns a box shape with the given half-size.
func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Kind: KindBox, HalfExtents: halfExtents}
}

// Capsule returns an upright capsule with the given radius and total half-height.
func Capsule(radius, halfHeight float64) Shape {
	return Shape{Kind: KindCapsule, HalfExtents: mgl64.Vec3{radius, radius, halfHeight}}
}

// Radius returns the horizontal reach of the shape from its centre line.
func (s Shape) Radius() float64 {
	return math.Max(s.HalfExtents.X(), s.HalfExtents.Y())
}

// Height returns the full vertical size of the shape.
func (s Shape) Height() float64 {
	return s.HalfExtents.Z() * 2
}

// Bounds returns the axis-aligned bounding box of the shape with its bottom centre at pos.
func (s Shape) Bounds(pos mgl64.Vec3) cube.BBox {
	he := s.HalfExtents
	return cube.Box(
		pos[0]-he[0],
		pos[1]-he[1],
		pos[2],
		pos[0]+he[0],
		pos[1]+he[1],
		pos[2]+he[2]*2,
	)
}

// Centre returns the centre of the shape's bounds when positioned at pos.
func (s Shape) Centre(pos mgl64.Vec3) mgl64.Vec3 {
	return pos.Add(mgl64.Vec3{0, 0, s.HalfExtents.Z()})
}

// Valid reports whether every extent is finite and strictly positive.
func (s Shape) Valid() bool {
	for _, v := range s.HalfExtents {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return s.Kind == KindBox || s.Kind == KindCapsule
}

// Contains reports whether o fits inside s in every dimension.
func (s Shape) Contains(o Shape) bool {
	for i := range 3 {
		if o.HalfExtents[i] > s.HalfExtents[i] {
			return false
		}
	}
	return true
}

// Scale returns the shape with every extent multiplied by f.
func (s Shape) Scale(f float64) Shape {
	return Shape{Kind: s.Kind, HalfExtents: s.HalfExtents.Mul(f)}
}
