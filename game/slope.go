package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// slopeTolerance absorbs acos rounding so that a surface lying exactly on the threshold stays walkable.
const slopeTolerance = 1e-9

// SlopeAngle returns the angle in degrees between the surface normal and the world-up axis. A zero-length
// normal carries no orientation and is reported as a vertical wall.
func SlopeAngle(normal mgl64.Vec3) float64 {
	l := normal.Len()
	if l == 0 {
		return 90
	}
	cos := ClampFloat(normal.Dot(Up)/l, -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// IsWalkable returns true if an actor may stand on a surface with the given normal. The threshold is inclusive.
func IsWalkable(normal mgl64.Vec3, maxSlopeDegrees float64) bool {
	return SlopeAngle(normal) <= maxSlopeDegrees+slopeTolerance
}
