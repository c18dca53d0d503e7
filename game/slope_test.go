package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func normalAt(degrees float64) mgl64.Vec3 {
	r := mgl64.DegToRad(degrees)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

func TestSlopeAngle(t *testing.T) {
	require.InDelta(t, 0, SlopeAngle(Up), 1e-9)
	require.InDelta(t, 90, SlopeAngle(mgl64.Vec3{1, 0, 0}), 1e-9)
	require.InDelta(t, 180, SlopeAngle(mgl64.Vec3{0, 0, -1}), 1e-9)
	require.InDelta(t, 30, SlopeAngle(normalAt(30).Mul(7)), 1e-9)
	require.Equal(t, 90.0, SlopeAngle(mgl64.Vec3{}))
}

func TestIsWalkableThreshold(t *testing.T) {
	const eps = 0.01
	max := DefaultMaxSlope

	require.True(t, IsWalkable(Up, max))
	require.True(t, IsWalkable(normalAt(max-eps), max))
	require.True(t, IsWalkable(normalAt(max), max), "threshold is inclusive")
	require.False(t, IsWalkable(normalAt(max+eps), max))
	require.False(t, IsWalkable(mgl64.Vec3{0, -1, 0}, max))
	require.False(t, IsWalkable(mgl64.Vec3{0, 0, -1}, max))
}

func TestIsWalkableCustomThreshold(t *testing.T) {
	require.False(t, IsWalkable(normalAt(50), 45))
	require.True(t, IsWalkable(normalAt(50), 60))
}
