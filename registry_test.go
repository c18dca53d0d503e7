package kinematic

import (
	"io"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/oomph-ac/kinematic/simulation"
	"github.com/oomph-ac/kinematic/world"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actorExtents = mgl64.Vec3{20, 20, 50}

func testRegistry(t *testing.T, w *world.World, parallel bool) *Registry {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := settings.DefaultSettings()
	s.Simulation.Parallel = parallel
	s.Simulation.Workers = 4
	r := New(Config{World: w, Settings: s, Log: log})
	t.Cleanup(r.Close)
	return r
}

func flatWorld() *world.World {
	w := world.New()
	w.AddGround(0)
	return w
}

func TestAddAndLookup(t *testing.T) {
	r := testRegistry(t, flatWorld(), false)

	id, err := r.Add("alice", simulation.NewActor(mgl64.Vec3{}, actorExtents))
	require.NoError(t, err)
	assert.Equal(t, IDFromName("alice"), id)
	assert.NotEqual(t, game.NoActor, id)
	assert.Equal(t, 1, r.Len())

	name, ok := r.Name(id)
	require.True(t, ok)
	assert.Equal(t, "alice", name)

	_, err = r.Add("alice", simulation.NewActor(mgl64.Vec3{}, actorExtents))
	assert.True(t, errors.Is(err, oerror.ErrDuplicateActor))

	_, err = r.Position(12345)
	assert.True(t, errors.Is(err, oerror.ErrUnknownActor))
	assert.True(t, errors.Is(r.RequestJump(12345), oerror.ErrUnknownActor))
}

func TestAddRejectsInvalidShape(t *testing.T) {
	r := testRegistry(t, flatWorld(), false)

	_, err := r.Add("flat", simulation.NewActor(mgl64.Vec3{}, mgl64.Vec3{20, 20, 0}))
	assert.True(t, errors.Is(err, oerror.ErrInvalidShape))
	assert.Zero(t, r.Len())
}

func TestTickMovesActor(t *testing.T) {
	w := flatWorld()
	r := testRegistry(t, w, false)
	id, err := r.Add("walker", simulation.NewActor(mgl64.Vec3{}, actorExtents))
	require.NoError(t, err)

	require.NoError(t, r.SetDesiredVelocity(id, mgl64.Vec2{100, 0}))
	results := r.Tick(1)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)

	pos, err := r.Position(id)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{100, 0, 0}, pos[:], 1e-6)

	grounded, err := r.IsGrounded(id)
	require.NoError(t, err)
	assert.True(t, grounded)

	proxy, ok := w.Proxy(id)
	require.True(t, ok)
	assert.Equal(t, pos, proxy)
}

func TestTickOrderFollowsRegistration(t *testing.T) {
	r := testRegistry(t, flatWorld(), false)
	names := []string{"c", "a", "b", "d"}
	for i, name := range names {
		_, err := r.Add(name, simulation.NewActor(mgl64.Vec3{float64(i) * 100, 0, 0}, actorExtents))
		require.NoError(t, err)
	}

	results := r.Tick(1.0 / 20)
	require.Len(t, results, len(names))
	for i, name := range names {
		assert.Equal(t, IDFromName(name), results[i].ID)
	}
}

func TestJumpThroughRegistry(t *testing.T) {
	r := testRegistry(t, flatWorld(), false)
	id, err := r.Add("jumper", simulation.NewActor(mgl64.Vec3{}, actorExtents))
	require.NoError(t, err)

	r.Tick(1.0 / 20)
	require.NoError(t, r.RequestJump(id))
	r.Tick(1.0 / 20)

	grounded, err := r.IsGrounded(id)
	require.NoError(t, err)
	assert.False(t, grounded)
	pos, err := r.Position(id)
	require.NoError(t, err)
	assert.Greater(t, pos.Z(), 0.0)
}

func TestRemove(t *testing.T) {
	w := flatWorld()
	r := testRegistry(t, w, false)
	id, err := r.Add("ghost", simulation.NewActor(mgl64.Vec3{}, actorExtents))
	require.NoError(t, err)
	_, ok := w.Proxy(id)
	require.True(t, ok)

	require.NoError(t, r.Remove(id))
	_, ok = w.Proxy(id)
	assert.False(t, ok)
	assert.True(t, errors.Is(r.Remove(id), oerror.ErrUnknownActor))
	assert.Empty(t, r.Tick(1))
}

func TestRenderState(t *testing.T) {
	r := testRegistry(t, flatWorld(), false)
	id, err := r.Add("renderable", simulation.NewActor(mgl64.Vec3{10, 20, 0}, actorExtents))
	require.NoError(t, err)
	require.NoError(t, r.SetRotation(id, 90))
	r.Tick(1.0 / 20)

	rs, err := r.RenderState(id)
	require.NoError(t, err)
	assert.InDelta(t, 10, rs.Position.X(), 1e-4)
	assert.InDelta(t, 20, rs.Position.Y(), 1e-4)
	assert.True(t, rs.OnGround)
	assert.Equal(t, simulation.VerticalGrounded, rs.State)

	assert.InDelta(t, -10, rs.Bounds.Min().X(), 1e-4)
	assert.InDelta(t, 40, rs.Bounds.Max().Y(), 1e-4)
	assert.InDelta(t, 100, rs.Bounds.Max().Z(), 1e-3)

	q, err := r.Orientation(id)
	require.NoError(t, err)
	assert.InDelta(t, q.W, float64(rs.Orientation.W), 1e-6)
	assert.InDelta(t, q.V.Z(), float64(rs.Orientation.V.Z()), 1e-6)

	// A quarter turn around the up axis maps +x onto +y.
	rotated := q.Rotate(mgl64.Vec3{1, 0, 0})
	assert.InDeltaSlice(t, []float64{0, 1, 0}, rotated[:], 1e-9)
}

func TestRenderStateInterpolates(t *testing.T) {
	r := testRegistry(t, flatWorld(), false)
	id, err := r.Add("mover", simulation.NewActor(mgl64.Vec3{}, actorExtents))
	require.NoError(t, err)
	require.NoError(t, r.SetDesiredVelocity(id, mgl64.Vec2{100, 0}))
	r.Tick(1.0 / 20)
	r.Tick(1.0 / 20)

	rs, err := r.RenderState(id)
	require.NoError(t, err)
	assert.InDelta(t, 5, rs.PrevPosition.X(), 1e-3)
	assert.InDelta(t, 10, rs.Position.X(), 1e-3)
	assert.InDelta(t, 7.5, rs.Interpolate(0.5).X(), 1e-3)
	assert.Equal(t, rs.Position, rs.Interpolate(3))
	assert.Equal(t, rs.PrevPosition, rs.Interpolate(-1))
}

func TestParallelTickMatchesSequential(t *testing.T) {
	build := func(parallel bool) (*Registry, []game.ActorID) {
		w := flatWorld()
		w.AddBox(cube.Box(300, -1000, 0, 330, 1000, 200))
		w.AddBox(cube.Box(-1000, 300, 0, 1000, 330, 20))
		r := testRegistry(t, w, parallel)

		var ids []game.ActorID
		for i := range 8 {
			a := simulation.NewActor(mgl64.Vec3{float64(i) * 35, float64(i) * -40, 0}, actorExtents)
			a.HorizontalVel = mgl64.Vec2{120 + float64(i)*10, 90 - float64(i)*25}
			id, err := r.Add(string(rune('a'+i)), a)
			require.NoError(t, err)
			ids = append(ids, id)
		}
		return r, ids
	}
	seq, ids := build(false)
	par, _ := build(true)

	for range 40 {
		seq.Tick(1.0 / 20)
		par.Tick(1.0 / 20)
	}
	for _, id := range ids {
		a, err := seq.Position(id)
		require.NoError(t, err)
		b, err := par.Position(id)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCollisionToggle(t *testing.T) {
	w := flatWorld()
	w.AddBox(cube.Box(50, -200, 0, 80, 200, 200))
	r := testRegistry(t, w, false)
	id, err := r.Add("noclip", simulation.NewActor(mgl64.Vec3{0, 0, 1000}, actorExtents))
	require.NoError(t, err)

	require.NoError(t, r.SetCollisionEnabled(id, false))
	require.NoError(t, r.SetDesiredVelocity(id, mgl64.Vec2{100, 0}))
	results := r.Tick(1)
	assert.Equal(t, simulation.SimulationOutcomeNoCollision, results[0].Result.Outcome)

	pos, err := r.Position(id)
	require.NoError(t, err)
	assert.InDelta(t, 100, pos.X(), 1e-9)

	require.NoError(t, r.Teleport(id, mgl64.Vec3{}))
	d, err := r.Diagnostics(id)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{}, d.Pos)
	assert.Zero(t, d.VerticalVel)
}
