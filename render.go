package kinematic

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
	"github.com/oomph-ac/kinematic/simulation"
)

// RenderState is a single precision snapshot of an actor for animation and rendering.
type RenderState struct {
	Position mgl32.Vec3
	// PrevPosition is where the actor was before the last completed tick.
	PrevPosition mgl32.Vec3
	Orientation  mgl32.Quat
	// Bounds is the box covering the actor's external shape.
	Bounds   cube.BBox
	OnGround bool
	State    simulation.VerticalState
}

// Interpolate blends between the previous and current position. An alpha of 0 returns PrevPosition and 1 returns
// Position; values outside that range are clamped.
func (s RenderState) Interpolate(alpha float32) mgl32.Vec3 {
	alpha = math32.Max(0, math32.Min(1, alpha))
	return s.PrevPosition.Add(s.Position.Sub(s.PrevPosition).Mul(alpha))
}

// RenderState returns the snapshot of an actor after the last completed tick.
func (r *Registry) RenderState(id game.ActorID) (RenderState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, err := r.actor(id)
	if err != nil {
		return RenderState{}, err
	}

	ext, err := r.sim.Shapes.ExternalShape(id)
	if err != nil {
		ext = shape.Box(a.HalfExtents)
	}

	q := a.Orientation()
	return RenderState{
		Position:     game.Vec64To32(a.Pos),
		PrevPosition: game.Vec64To32(a.LastPos),
		Orientation:  mgl32.Quat{W: float32(q.W), V: game.Vec64To32(q.V)},
		Bounds:       game.BoxTo32(ext.Bounds(a.Pos)),
		OnGround:     a.OnGround,
		State:        a.State,
	}, nil
}
