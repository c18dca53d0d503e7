package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
)

// SimulationOutcome describes which path the simulator took for the current tick.
type SimulationOutcome uint8

const (
	SimulationOutcomeNormal SimulationOutcome = iota
	SimulationOutcomeNoCollision
	SimulationOutcomeSkippedInvalidShape
	SimulationOutcomeSkippedInvalidState
)

func (o SimulationOutcome) String() string {
	switch o {
	case SimulationOutcomeNormal:
		return "normal"
	case SimulationOutcomeNoCollision:
		return "no-collision"
	case SimulationOutcomeSkippedInvalidShape:
		return "skipped-invalid-shape"
	case SimulationOutcomeSkippedInvalidState:
		return "skipped-invalid-state"
	default:
		return "unknown"
	}
}

// Skipped reports whether the actor did not move because its tick could not run.
func (o SimulationOutcome) Skipped() bool {
	return o == SimulationOutcomeSkippedInvalidShape || o == SimulationOutcomeSkippedInvalidState
}

// SimulationResult captures the outcome of a single simulation tick.
type SimulationResult struct {
	Position mgl64.Vec3
	// Velocity is the residual velocity after collisions: the horizontal part the solver ended with and the
	// actor's vertical velocity.
	Velocity mgl64.Vec3
	OnGround bool

	// Jumped is set when a jump request was honoured this tick.
	Jumped bool
	// Landed is set when the actor came down on walkable ground this tick, hitting it at ImpactSpeed.
	Landed      bool
	ImpactSpeed float64

	Outcome SimulationOutcome

	// Iterations is the number of sweeps the slide loop issued.
	Iterations int
	// Stalled is set when the slide loop ran out of iterations with time left.
	Stalled bool

	RecoveryPasses    int
	RecoveryExhausted bool

	// LastTrace is the last sweep of the slide loop.
	LastTrace collision.TraceResult
}
