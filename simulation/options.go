package simulation

import (
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/settings"
)

// Solver selects the algorithm used to resolve horizontal movement.
type Solver uint8

const (
	// SolverSlide sweeps along the velocity and deflects off every surface hit, stepping only when blocked.
	SolverSlide Solver = iota
	// SolverKinematic wraps all horizontal movement of a tick between an up-step and a down-step.
	SolverKinematic
)

func (s Solver) String() string {
	if s == SolverKinematic {
		return "kinematic"
	}
	return "slide"
}

// ParseSolver returns the solver with the given name, defaulting to SolverSlide.
func ParseSolver(name string) Solver {
	if name == "kinematic" {
		return SolverKinematic
	}
	return SolverSlide
}

// Options define simulator behaviour. Distances are in world units, speeds in units per second and angles in
// degrees.
type Options struct {
	Solver Solver

	Gravity      float64
	MaxFallSpeed float64
	MaxJumpSpeed float64
	JumpSpeed    float64

	StepHeight float64
	MaxSlope   float64

	MaxIterations  int
	Overbounce     float64
	DeflectDivisor float64

	GroundProbeDistance float64
	GroundTolerance     float64

	RecoveryFactor       float64
	RecoveryRetries      int
	PenetrationTolerance float64

	// StuckTicks is the number of consecutive stalled ticks after which an actor is flagged as possibly stuck.
	StuckTicks int

	// Debug enables per-tick trace logging.
	Debug bool
}

// DefaultOptions returns the default tuning.
func DefaultOptions() Options {
	return Options{
		Solver:               SolverSlide,
		Gravity:              game.DefaultGravity,
		MaxFallSpeed:         game.DefaultMaxFallSpeed,
		MaxJumpSpeed:         game.DefaultMaxJumpSpeed,
		JumpSpeed:            game.DefaultJumpSpeed,
		StepHeight:           game.DefaultStepHeight,
		MaxSlope:             game.DefaultMaxSlope,
		MaxIterations:        game.DefaultMaxIterations,
		Overbounce:           game.DefaultOverbounce,
		DeflectDivisor:       game.DefaultDeflectDivisor,
		GroundProbeDistance:  game.DefaultGroundProbeDistance,
		GroundTolerance:      game.DefaultGroundTolerance,
		RecoveryFactor:       game.DefaultRecoveryFactor,
		RecoveryRetries:      game.DefaultRecoveryRetries,
		PenetrationTolerance: game.DefaultPenetrationTolerance,
		StuckTicks:           game.DefaultStuckTicks,
	}
}

// OptionsFromSettings converts loaded settings into simulator options.
func OptionsFromSettings(s settings.Settings) Options {
	m := s.Movement
	return Options{
		Solver:               ParseSolver(s.Simulation.Solver),
		Gravity:              m.Gravity,
		MaxFallSpeed:         m.MaxFallSpeed,
		MaxJumpSpeed:         m.MaxJumpSpeed,
		JumpSpeed:            m.JumpSpeed,
		StepHeight:           m.StepHeight,
		MaxSlope:             m.MaxSlope,
		MaxIterations:        m.MaxIterations,
		Overbounce:           m.Overbounce,
		DeflectDivisor:       m.DeflectDivisor,
		GroundProbeDistance:  m.GroundProbeDistance,
		GroundTolerance:      m.GroundTolerance,
		RecoveryFactor:       m.RecoveryFactor,
		RecoveryRetries:      m.RecoveryRetries,
		PenetrationTolerance: m.PenetrationTolerance,
		StuckTicks:           s.Simulation.StuckTicks,
		Debug:                s.Debug,
	}
}
