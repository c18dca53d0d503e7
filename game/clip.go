package game

import "github.com/go-gl/mathgl/mgl64"

// ClipVelocity removes the component of v along normal. The removed amount is scaled by overbounce when v points
// into the plane and divided by it otherwise, so an overbounce of 1 is an exact projection onto the plane.
func ClipVelocity(v, normal mgl64.Vec3, overbounce float64) mgl64.Vec3 {
	backoff := v.Dot(normal)
	if backoff < 0 {
		backoff *= overbounce
	} else {
		backoff /= overbounce
	}
	return v.Sub(normal.Mul(backoff))
}

// ProjectVelocity returns the part of v that lies along direction. A zero-length direction yields the zero
// vector: there is no line to move along.
func ProjectVelocity(v, direction mgl64.Vec3) mgl64.Vec3 {
	l := direction.Len()
	if l <= MinVelocity {
		return mgl64.Vec3{}
	}
	dir := direction.Mul(1 / l)
	return dir.Mul(v.Dot(dir))
}
