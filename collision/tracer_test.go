package collision_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
	"github.com/oomph-ac/kinematic/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitClampsAndNormalises(t *testing.T) {
	r := collision.Hit(1.5, mgl64.Vec3{}, mgl64.Vec3{0, 0, 4})
	assert.Equal(t, 1.0, r.Fraction())
	assert.Equal(t, game.Up, r.PlaneNormal())
	assert.True(t, r.HitSomething())

	r = collision.Hit(-0.2, mgl64.Vec3{}, mgl64.Vec3{3, 0, 0})
	assert.Equal(t, 0.0, r.Fraction())

	m := collision.Miss(mgl64.Vec3{1, 2, 3})
	assert.False(t, m.HitSomething())
	assert.Equal(t, 1.0, m.Fraction())
	assert.Equal(t, mgl64.Vec3{}, m.PlaneNormal())
}

func TestTracerDegenerateSweep(t *testing.T) {
	w := world.New()
	tr := collision.NewTracer(w, 1)

	from := mgl64.Vec3{5, 5, 5}
	r := tr.Sweep(shape.Box(mgl64.Vec3{1, 1, 1}), from, from)
	assert.False(t, r.HitSomething())
	assert.Equal(t, 1.0, r.Fraction())
	assert.Equal(t, from, r.EndPosition())
	assert.Zero(t, tr.Queries())
}

func TestTracerRayDownward(t *testing.T) {
	w := world.New()
	w.AddGround(0)
	tr := collision.NewTracer(w, 1)

	var seen []collision.TraceResult
	tr.OnTrace = func(r collision.TraceResult) { seen = append(seen, r) }

	resting := tr.RayDownward(mgl64.Vec3{0, 0, 0}, 10)
	require.True(t, resting.HitSomething())
	assert.InDelta(t, 0, resting.Fraction(), 1e-9)

	above := tr.RayDownward(mgl64.Vec3{0, 0, 4}, 10)
	require.True(t, above.HitSomething())
	assert.InDelta(t, 0.4, above.Fraction(), 1e-9)
	assert.Equal(t, game.Up, above.PlaneNormal())

	far := tr.RayDownward(mgl64.Vec3{0, 0, 40}, 10)
	assert.False(t, far.HitSomething())

	assert.Len(t, seen, 3)
	assert.Equal(t, 3, tr.Queries())
}

func TestTracerContactsSkipOwnProxy(t *testing.T) {
	w := world.New()
	pair, err := shape.FromHalfExtents(mgl64.Vec3{15, 15, 30}, 0.9)
	require.NoError(t, err)
	w.UpdateProxy(1, pair, mgl64.Vec3{})
	w.UpdateProxy(2, pair, mgl64.Vec3{20, 0, 0})

	tr := collision.NewTracer(w, 1)
	m := tr.Contacts(pair.Internal(), mgl64.Vec3{})
	require.NotEmpty(t, m)
	for _, c := range m {
		assert.Equal(t, game.ActorID(2), c.Owner)
	}

	tr.Reset(w, 2)
	assert.Zero(t, tr.Queries())
	assert.Equal(t, game.ActorID(2), tr.Actor())
}

func TestManifoldDeepest(t *testing.T) {
	m := collision.ContactManifold{
		{Depth: -1},
		{Depth: -3, Normal: game.Up},
		{Depth: 0.5},
		{Depth: -10, Owner: 4},
	}
	p := m.Penetrating(0.01)
	require.Len(t, p, 2)
	d, ok := p.Deepest()
	require.True(t, ok)
	assert.Equal(t, -3.0, d.Depth)

	_, ok = collision.ContactManifold(nil).Deepest()
	assert.False(t, ok)
}
