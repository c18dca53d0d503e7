package settings

import (
	"os"

	"github.com/oomph-ac/kinematic/game"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Settings contains every tunable of the movement solver and the tick scheduler.
type Settings struct {
	Movement   Movement
	Simulation struct {
		// Solver is either "slide" or "kinematic".
		Solver string
		// Parallel fans actor solves out over the worker pool. The collision world must allow concurrent reads.
		Parallel bool
		// Workers is the size of the worker pool. Zero uses one worker per CPU.
		Workers    int
		StuckTicks int
	}
	Debug bool
}

// Movement holds the physical tuning of actor movement.
type Movement struct {
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

	InternalScale float64
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Movement = Movement{
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
		InternalScale:        game.DefaultInternalScale,
	}
	settings.Simulation.Solver = "slide"
	settings.Simulation.StuckTicks = game.DefaultStuckTicks
	return settings
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return errors.Wrap(err, "failed encoding default settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed creating settings file")
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist. Values
// missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrap(err, "error reading config")
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, errors.Wrap(err, "error decoding config")
	}
	return settings, nil
}
