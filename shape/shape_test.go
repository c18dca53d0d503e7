package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/stretchr/testify/require"
)

func TestBoundsPositionIsBottomCentre(t *testing.T) {
	bb := Box(mgl64.Vec3{20, 20, 50}).Bounds(mgl64.Vec3{10, 0, 5})
	require.Equal(t, mgl64.Vec3{-10, -20, 5}, bb.Min())
	require.Equal(t, mgl64.Vec3{30, 20, 105}, bb.Max())
}

func TestNewActorShapesRequiresContainment(t *testing.T) {
	ext := Box(mgl64.Vec3{20, 20, 50})

	pair, err := NewActorShapes(ext, ext.Scale(0.9))
	require.NoError(t, err)
	require.Equal(t, ext, pair.External())
	require.InDelta(t, 18, pair.Internal().HalfExtents.X(), 1e-9)

	_, err = NewActorShapes(ext, Box(mgl64.Vec3{10, 25, 10}))
	require.ErrorIs(t, err, oerror.ErrInvalidShape)
}

func TestNewActorShapesRejectsDegenerateExtents(t *testing.T) {
	for _, he := range []mgl64.Vec3{
		{0, 1, 1},
		{1, -1, 1},
		{1, 1, math.NaN()},
		{math.Inf(1), 1, 1},
	} {
		_, err := NewActorShapes(Box(he), Box(mgl64.Vec3{0.1, 0.1, 0.1}))
		require.ErrorIs(t, err, oerror.ErrInvalidShape, "extents %v", he)
	}
}

func TestFromHalfExtentsScale(t *testing.T) {
	_, err := FromHalfExtents(mgl64.Vec3{1, 1, 1}, 1.5)
	require.ErrorIs(t, err, oerror.ErrInvalidShape)

	pair, err := FromHalfExtents(mgl64.Vec3{1, 2, 3}, 1)
	require.NoError(t, err)
	require.Equal(t, pair.External(), pair.Internal())
}

func TestStaticCatalog(t *testing.T) {
	c := NewStaticCatalog()
	_, err := LoadActorShapes(c, 1)
	require.ErrorIs(t, err, oerror.ErrMissingShape)

	pair, err := FromHalfExtents(mgl64.Vec3{20, 20, 50}, 0.9)
	require.NoError(t, err)
	c.Set(1, pair)

	loaded, err := LoadActorShapes(c, 1)
	require.NoError(t, err)
	require.Equal(t, pair, loaded)

	c.Remove(1)
	_, err = c.InternalShape(1)
	require.ErrorIs(t, err, oerror.ErrMissingShape)

	_, err = LoadActorShapes(nil, 1)
	require.ErrorIs(t, err, oerror.ErrMissingShape)
}

func TestCapsuleExtents(t *testing.T) {
	c := Capsule(15, 40)
	require.Equal(t, KindCapsule, c.Kind)
	require.Equal(t, 15.0, c.Radius())
	require.Equal(t, 80.0, c.Height())
	require.Equal(t, "capsule", c.Kind.String())
}
