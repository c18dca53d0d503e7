package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
)

// integrateVertical consumes a pending jump request and applies gravity to the actor's vertical velocity.
func (s *Simulator) integrateVertical(ctx *moveContext) {
	a, o := ctx.actor, s.Options

	if a.JumpRequested {
		a.JumpRequested = false
		if a.OnGround {
			a.SetVerticalVel(o.JumpSpeed)
			a.State = VerticalJumping
			ctx.jumped = true
			s.debugf(a.ID, "jump (vel=%v)", o.JumpSpeed)
		} else {
			s.debugf(a.ID, "jump rejected: actor is %v", a.State)
		}
	}

	vel := a.VerticalVel - o.Gravity*ctx.dt
	a.SetVerticalVel(game.ClampFloat(vel, -o.MaxFallSpeed, o.MaxJumpSpeed))
}

// determineGround decides whether the actor ended the tick on walkable ground. A grounded actor is snapped onto the
// surface and its vertical velocity reset to exactly zero.
func (s *Simulator) determineGround(ctx *moveContext) {
	a, o := ctx.actor, s.Options

	vel := a.VerticalVel
	if ctx.ceiling && vel > 0 {
		vel = 0
	}
	if ctx.landed {
		vel = 0
	}

	found := ctx.landed
	if !found && vel <= 0 && game.IsZeroVec(mgl64.Vec3{a.HorizontalVel[0], a.HorizontalVel[1], 0}) {
		found = s.rayGround(ctx)
	}
	if !found && vel <= 0 {
		r := ctx.tracer.SweepBy(ctx.shapes.External(), ctx.pos, game.Up.Mul(-o.GroundTolerance))
		if r.HitSomething() && game.IsWalkable(r.PlaneNormal(), o.MaxSlope) {
			found = true
			ctx.pos = r.EndPosition()
		}
	}

	wasGrounded := a.OnGround
	if found && vel <= 0 {
		a.OnGround = true
		a.State = VerticalGrounded
		a.SetVerticalVel(0)
		if !wasGrounded {
			ctx.touchedDown = true
			ctx.impactSpeed = max(0, -a.LastVerticalVel)
			s.debugf(a.ID, "landed at %v (impact %v)", ctx.pos, ctx.impactSpeed)
		}
		return
	}

	a.OnGround = false
	a.SetVerticalVel(vel)
	if vel <= 0 || a.State != VerticalJumping {
		a.State = VerticalFalling
	}
}

// rayGround probes for ground straight below the actor's centre, which is enough for an actor at rest. The actor is
// swept down onto the surface unless it is already within the skin distance of it.
func (s *Simulator) rayGround(ctx *moveContext) bool {
	o := s.Options
	r := ctx.tracer.RayDownward(ctx.pos, o.GroundTolerance)
	if !r.HitSomething() || !game.IsWalkable(r.PlaneNormal(), o.MaxSlope) {
		return false
	}
	if gap := r.Fraction() * o.GroundTolerance; gap > game.Skin {
		ctx.pos = ctx.tracer.SweepBy(ctx.shapes.External(), ctx.pos, game.Up.Mul(-gap)).EndPosition()
	}
	return true
}
