package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
)

// VerticalState is the phase of an actor's vertical motion.
type VerticalState uint8

const (
	VerticalGrounded VerticalState = iota
	VerticalFalling
	VerticalJumping
)

func (s VerticalState) String() string {
	switch s {
	case VerticalGrounded:
		return "grounded"
	case VerticalFalling:
		return "falling"
	case VerticalJumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// Actor holds the movement state of a single actor. It is the only state kept between ticks and is mutated only by
// the simulator.
type Actor struct {
	ID game.ActorID

	// Pos is the bottom centre of the actor's collision shape.
	Pos, LastPos mgl64.Vec3
	// HalfExtents is the half-size of the actor's external shape.
	HalfExtents mgl64.Vec3

	// HorizontalVel is the velocity requested by input or AI.
	HorizontalVel mgl64.Vec2
	// VerticalVel is driven by gravity, jumps and landings only.
	VerticalVel, LastVerticalVel float64
	// Rotation is the yaw around the up axis, in degrees.
	Rotation float64

	OnGround         bool
	CollisionEnabled bool
	State            VerticalState
	JumpRequested    bool

	// StallTicks counts consecutive ticks that ended on the iteration cap.
	StallTicks    int
	PossiblyStuck bool
	// Skipped is set when the last tick could not run, for example because the actor had no valid shape.
	Skipped bool
}

// NewActor returns an airborne actor at pos with collision enabled.
func NewActor(pos, halfExtents mgl64.Vec3) *Actor {
	return &Actor{
		Pos:              pos,
		LastPos:          pos,
		HalfExtents:      halfExtents,
		CollisionEnabled: true,
		State:            VerticalFalling,
	}
}

func (a *Actor) SetPos(newPos mgl64.Vec3) {
	a.LastPos = a.Pos
	a.Pos = newPos
}

func (a *Actor) SetVerticalVel(newVel float64) {
	a.LastVerticalVel = a.VerticalVel
	a.VerticalVel = newVel
}

// Velocity returns the combined horizontal and vertical velocity of the actor.
func (a *Actor) Velocity() mgl64.Vec3 {
	return mgl64.Vec3{a.HorizontalVel[0], a.HorizontalVel[1], a.VerticalVel}
}

// Orientation returns the rotation of the actor around the up axis.
func (a *Actor) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(a.Rotation), game.Up)
}
