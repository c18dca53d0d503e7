package simulation

import "github.com/go-gl/mathgl/mgl64"

// recoverFromPenetration pushes the internal shape out of the world geometry it overlaps. Each pass moves the actor
// by a fraction of every penetration depth, and the move is swept so that it stops at any other obstacle in the
// way. The number of passes is bounded; an actor still embedded afterwards keeps its residual overlap.
func (s *Simulator) recoverFromPenetration(ctx *moveContext) {
	a, o := ctx.actor, s.Options
	internal := ctx.shapes.Internal()

	for pass := 0; pass < o.RecoveryRetries; pass++ {
		contacts := ctx.tracer.Contacts(internal, ctx.pos).Penetrating(o.PenetrationTolerance)
		if len(contacts) == 0 {
			return
		}

		var correction mgl64.Vec3
		for _, c := range contacts {
			correction = correction.Add(c.Normal.Mul(-c.Depth * o.RecoveryFactor))
		}
		r := ctx.tracer.SweepBy(internal, ctx.pos, correction)
		s.debugf(a.ID, "recovery pass %d: %d contacts, correction %v, moved to %v", pass, len(contacts), correction, r.EndPosition())
		ctx.pos = r.EndPosition()
		ctx.recoveryPasses++
	}

	if remaining := ctx.tracer.Contacts(internal, ctx.pos).Penetrating(o.PenetrationTolerance); len(remaining) > 0 {
		ctx.recoveryExhausted = true
		deepest, _ := remaining.Deepest()
		s.logger(a.ID).Warnf("penetration unresolved after %d passes (depth %.4f)", ctx.recoveryPasses, deepest.Depth)
	}
}
