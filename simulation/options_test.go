package simulation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/stretchr/testify/require"
)

func TestParseSolver(t *testing.T) {
	require.Equal(t, SolverKinematic, ParseSolver("kinematic"))
	require.Equal(t, SolverSlide, ParseSolver("slide"))
	require.Equal(t, SolverSlide, ParseSolver("unknown"))
	require.Equal(t, "kinematic", SolverKinematic.String())
}

func TestOptionsFromDefaultSettings(t *testing.T) {
	o := OptionsFromSettings(settings.DefaultSettings())
	d := DefaultOptions()
	d.Debug = o.Debug
	require.Equal(t, d, o)
}

func TestActorOrientation(t *testing.T) {
	a := NewActor(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	a.Rotation = 180

	forward := a.Orientation().Rotate(mgl64.Vec3{1, 0, 0})
	require.InDeltaSlice(t, []float64{-1, 0, 0}, forward[:], 1e-9)
	require.Equal(t, "falling", a.State.String())
}
