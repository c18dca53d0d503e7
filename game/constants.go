package game

// Default tuning values for the movement solver. Units are world units and seconds. None of these are
// load-bearing: every one of them can be overridden through the settings file.
const (
	DefaultGravity      = 627.2
	DefaultMaxFallSpeed = 2000.0
	DefaultMaxJumpSpeed = 2000.0
	DefaultJumpSpeed    = 330.0

	DefaultStepHeight = 30.0
	DefaultMaxSlope   = 45.0

	DefaultMaxIterations  = 50
	DefaultOverbounce     = 1.0
	DefaultDeflectDivisor = 50.0

	DefaultGroundProbeDistance = 10.0
	DefaultGroundTolerance     = 2.0

	DefaultRecoveryFactor       = 0.2
	DefaultRecoveryRetries      = 4
	DefaultPenetrationTolerance = 0.01

	DefaultInternalScale = 0.9
	DefaultStuckTicks    = 10

	// MinVelocity is the speed below which a velocity is considered to be zero.
	MinVelocity = 1e-4
	// Skin is the gap kept between a swept shape and the surface it stops against.
	Skin = 1e-4
)
