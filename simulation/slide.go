package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
)

// creaseEpsilon is the tolerance used when comparing plane normals and velocity directions.
const creaseEpsilon = 1e-9

// slideMove adapts the input velocity to the ground under the actor and slides the actor along it.
func (s *Simulator) slideMove(ctx *moveContext) {
	a, o := ctx.actor, s.Options

	horizontal := mgl64.Vec3{a.HorizontalVel[0], a.HorizontalVel[1], 0}
	vertical := a.VerticalVel

	probe := ctx.tracer.SweepBy(ctx.shapes.External(), ctx.pos, game.Up.Mul(-o.GroundProbeDistance))
	if probe.HitSomething() {
		if n := probe.PlaneNormal(); game.IsWalkable(n, o.MaxSlope) {
			// Follow the terrain instead of launching off it.
			horizontal = game.ClipVelocity(horizontal, n, 1)
			if a.OnGround && vertical <= 0 {
				vertical = 0
			}
		} else {
			horizontal = mgl64.Vec3{}
		}
	}

	ctx.velocity = s.slide(ctx, horizontal.Add(mgl64.Vec3{0, 0, vertical}), true)
}

// slide sweeps the external shape along velocity for the remaining time of the tick, redirecting the velocity at
// every surface hit. It returns the velocity the actor ended with.
func (s *Simulator) slide(ctx *moveContext, velocity mgl64.Vec3, allowStep bool) mgl64.Vec3 {
	o := s.Options
	ext := ctx.shapes.External()

	ctx.primal = velocity
	ctx.lastTrace = collision.Miss(ctx.pos)

	var last mgl64.Vec3
	remaining := ctx.dt
	for remaining > 0 && ctx.iterations < o.MaxIterations {
		if game.IsZeroVec(velocity) {
			return mgl64.Vec3{}
		}
		ctx.iterations++

		r := ctx.tracer.SweepBy(ext, ctx.pos, velocity.Mul(remaining))
		ctx.lastTrace = r
		ctx.pos = r.EndPosition()
		remaining -= remaining * r.Fraction()
		if !r.HitSomething() {
			return velocity
		}

		n := r.PlaneNormal()
		repeated := last.Dot(n) > 1-creaseEpsilon
		ctx.touch(n)

		if repeated || !game.IsWalkable(n, o.MaxSlope) {
			if allowStep {
				if pos, ok := s.stepMove(ctx, ctx.pos, velocity.Mul(remaining)); ok {
					ctx.pos, ctx.landed = pos, true
					return game.Horizontal(velocity)
				}
			}
			velocity = s.deflect(velocity, n)
		} else {
			velocity = game.ClipVelocity(velocity, n, o.Overbounce)
		}
		velocity = ctx.constrain(velocity, n)
		last = n
	}

	if remaining > 0 && !game.IsZeroVec(velocity) {
		ctx.stalled = true
		s.debugf(ctx.actor.ID, "slide stalled after %d iterations at %v (vel=%v)", ctx.iterations, ctx.pos, velocity)
	}
	return velocity
}

// deflect turns velocity that ran into a steep or repeated surface sideways along it. The horizontal part is
// projected onto the horizontal line of the surface and nudged slightly off it; the vertical part is clipped
// against the surface and never turns upward.
func (s *Simulator) deflect(velocity, n mgl64.Vec3) mgl64.Vec3 {
	dir := n.Cross(game.Up)
	if dir.Len() <= game.MinVelocity {
		// The surface is level, so there is no sideways line to follow.
		return game.ClipVelocity(velocity, n, s.Options.Overbounce)
	}

	along := game.ProjectVelocity(game.Horizontal(velocity), dir)
	out := along.Add(n.Mul(along.Len() / s.Options.DeflectDivisor))
	out = out.Add(game.ClipVelocity(game.Vertical(velocity), n, 1))
	if velocity.Z() <= 0 && out.Z() > 0 {
		out[2] = 0
	}
	return out
}

// constrain keeps velocity from heading back against the tick's initial direction or into a surface already hit
// this tick. Velocity entering an earlier plane is moved onto the crease between it and n.
func (ctx *moveContext) constrain(velocity, n mgl64.Vec3) mgl64.Vec3 {
	if velocity.Dot(ctx.primal) <= 0 {
		return mgl64.Vec3{}
	}
	for _, p := range ctx.planes {
		if p.Dot(n) > 1-creaseEpsilon || velocity.Dot(p) >= -creaseEpsilon {
			continue
		}
		velocity = game.ProjectVelocity(velocity, p.Cross(n))
		if velocity.Dot(ctx.primal) <= 0 {
			return mgl64.Vec3{}
		}
		for _, q := range ctx.planes {
			if q.Dot(n) > 1-creaseEpsilon || q.Dot(p) > 1-creaseEpsilon {
				continue
			}
			if velocity.Dot(q) < -creaseEpsilon {
				return mgl64.Vec3{}
			}
		}
		return velocity
	}
	return velocity
}
