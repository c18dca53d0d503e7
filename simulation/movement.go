package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
)

// Simulate runs one movement tick of dt seconds for the actor and returns the resulting state. Every failure is
// resolved locally: the actor either moves, or is flagged as skipped and stays where it is.
func (s *Simulator) Simulate(a *Actor, dt float64) SimulationResult {
	if a == nil {
		return SimulationResult{}
	}
	s.debugf(a.ID, "START movement simulation (dt=%v)", dt)
	defer s.debugf(a.ID, "END movement simulation")

	ctx := newCtx(s, a, dt)
	defer putCtx(ctx)

	outcome := s.simulateCore(ctx)
	return s.resultFromCtx(ctx, outcome)
}

func (s *Simulator) simulateCore(ctx *moveContext) SimulationOutcome {
	a := ctx.actor

	shapes, err := shape.LoadActorShapes(s.Shapes, a.ID)
	if err != nil {
		a.Skipped = true
		s.logger(a.ID).WithError(err).Warn("skipping actor for this tick")
		return SimulationOutcomeSkippedInvalidShape
	}
	if !game.IsFiniteVec(a.Pos) || !game.IsFiniteVec(a.Velocity()) {
		a.Skipped = true
		s.logger(a.ID).Warnf("skipping actor with non-finite state (pos=%v vel=%v)", a.Pos, a.Velocity())
		return SimulationOutcomeSkippedInvalidState
	}
	a.Skipped = false
	ctx.shapes = shapes

	if ctx.dt <= 0 {
		return SimulationOutcomeNormal
	}

	s.integrateVertical(ctx)
	if !a.CollisionEnabled {
		s.moveFree(ctx)
		return SimulationOutcomeNoCollision
	}

	s.recoverFromPenetration(ctx)
	switch s.Options.Solver {
	case SolverKinematic:
		s.kinematicMove(ctx)
	default:
		s.slideMove(ctx)
	}
	s.determineGround(ctx)
	return SimulationOutcomeNormal
}

// moveFree applies the full displacement of the tick without any collision queries.
func (s *Simulator) moveFree(ctx *moveContext) {
	a := ctx.actor
	ctx.velocity = a.Velocity()
	ctx.pos = ctx.pos.Add(ctx.velocity.Mul(ctx.dt))
	a.OnGround = false
	if a.State == VerticalGrounded || a.VerticalVel <= 0 {
		a.State = VerticalFalling
	}
}

func (s *Simulator) resultFromCtx(ctx *moveContext, outcome SimulationOutcome) SimulationResult {
	a := ctx.actor
	if outcome.Skipped() {
		return SimulationResult{
			Position: a.Pos,
			Velocity: a.Velocity(),
			OnGround: a.OnGround,
			Outcome:  outcome,
		}
	}

	a.SetPos(ctx.pos)
	if ctx.stalled {
		a.StallTicks++
	} else {
		a.StallTicks = 0
	}
	stuck := s.Options.StuckTicks > 0 && a.StallTicks >= s.Options.StuckTicks
	if stuck && !a.PossiblyStuck {
		s.logger(a.ID).Warnf("actor stalled for %d consecutive ticks at %v", a.StallTicks, a.Pos)
	}
	a.PossiblyStuck = stuck

	return SimulationResult{
		Position:          a.Pos,
		Velocity:          mgl64.Vec3{ctx.velocity.X(), ctx.velocity.Y(), a.VerticalVel},
		OnGround:          a.OnGround,
		Jumped:            ctx.jumped,
		Landed:            ctx.touchedDown,
		ImpactSpeed:       ctx.impactSpeed,
		Outcome:           outcome,
		Iterations:        ctx.iterations,
		Stalled:           ctx.stalled,
		RecoveryPasses:    ctx.recoveryPasses,
		RecoveryExhausted: ctx.recoveryExhausted,
		LastTrace:         ctx.lastTrace,
	}
}
