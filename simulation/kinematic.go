package simulation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// kinematicMove wraps the horizontal movement of the tick between an up-step and a down-step. A rising actor goes
// up by its vertical displacement on top of the step height; a falling actor comes down by its fall on top of the
// height it gained.
func (s *Simulator) kinematicMove(ctx *moveContext) {
	a, o := ctx.actor, s.Options

	var rise, fall float64
	if a.VerticalVel > 0 {
		rise = a.VerticalVel * ctx.dt
	} else {
		fall = -a.VerticalVel * ctx.dt
	}

	raised, offset := s.stepUp(ctx, ctx.pos, o.StepHeight+rise)
	if rise > 0 && offset < o.StepHeight+rise {
		ctx.ceiling = true
	}
	ctx.pos = raised

	horizontal := mgl64.Vec3{a.HorizontalVel[0], a.HorizontalVel[1], 0}
	ctx.velocity = s.slide(ctx, horizontal, false)

	landing, landed := s.stepDown(ctx, ctx.pos, math.Max(0, offset-rise)+fall)
	ctx.pos = landing
	if landed && rise == 0 {
		ctx.landed = true
	}
}
