package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
)

// stepUp sweeps the external shape straight up by height. It returns the raised position and how far the actor
// actually rose. A walkable surface overhead limits the step to the distance travelled; any other surface cancels
// the vertical gain entirely.
func (s *Simulator) stepUp(ctx *moveContext, pos mgl64.Vec3, height float64) (mgl64.Vec3, float64) {
	if height <= 0 {
		return pos, 0
	}
	r := ctx.tracer.SweepBy(ctx.shapes.External(), pos, game.Up.Mul(height))
	if !r.HitSomething() {
		return r.EndPosition(), height
	}
	if game.IsWalkable(r.PlaneNormal(), s.Options.MaxSlope) {
		return r.EndPosition(), r.EndPosition().Z() - pos.Z()
	}
	return pos, 0
}

// stepDown sweeps the external shape straight down by drop. The actor lands exactly on the first walkable surface
// found, is stopped by any other surface and otherwise falls the full distance.
func (s *Simulator) stepDown(ctx *moveContext, pos mgl64.Vec3, drop float64) (mgl64.Vec3, bool) {
	if drop <= 0 {
		return pos, false
	}
	r := ctx.tracer.SweepBy(ctx.shapes.External(), pos, game.Up.Mul(-drop))
	if !r.HitSomething() {
		return r.EndPosition(), false
	}
	return r.EndPosition(), game.IsWalkable(r.PlaneNormal(), s.Options.MaxSlope)
}

// stepMove tries to carry the horizontal part of displacement over an obstruction: up by the step height, across,
// then back down by the height gained. The result is only usable if the actor made horizontal progress and came
// down on walkable ground, so that a wall is never climbed as if it were a step.
func (s *Simulator) stepMove(ctx *moveContext, pos, displacement mgl64.Vec3) (mgl64.Vec3, bool) {
	across := game.Horizontal(displacement)
	if game.IsZeroVec(across) {
		return pos, false
	}

	raised, offset := s.stepUp(ctx, pos, s.Options.StepHeight)
	if offset <= 0 {
		return pos, false
	}
	moved := ctx.tracer.SweepBy(ctx.shapes.External(), raised, across).EndPosition()
	if game.Vec3HzDistSqr(moved.Sub(pos)) <= game.MinVelocity*game.MinVelocity {
		return pos, false
	}
	landing, landed := s.stepDown(ctx, moved, offset)
	if !landed {
		return pos, false
	}
	s.debugf(ctx.actor.ID, "stepped from %v to %v", pos, landing)
	return landing, true
}
