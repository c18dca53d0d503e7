package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world-up axis. The solver treats Z as vertical.
var Up = mgl64.Vec3{0, 0, 1}

// Float64ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float64ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-5
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl64.Vec3) float64 {
	return vec3.X()*vec3.X() + vec3.Y()*vec3.Y()
}

// Horizontal returns the vector with its vertical component removed.
func Horizontal(vec3 mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{vec3.X(), vec3.Y(), 0}
}

// Vertical returns only the vertical component of the vector.
func Vertical(vec3 mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{0, 0, vec3.Z()}
}

// IsZeroVec reports whether every component of the vector is within MinVelocity of zero.
func IsZeroVec(vec3 mgl64.Vec3) bool {
	return vec3.LenSqr() <= MinVelocity*MinVelocity
}

// IsFiniteVec reports whether the vector contains neither NaN nor infinite components.
func IsFiniteVec(vec3 mgl64.Vec3) bool {
	for _, v := range vec3 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}
