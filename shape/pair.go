package shape

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/pkg/errors"
)

// ActorShapes owns both collision proxies of an actor. The external shape is swept to decide where the actor can
// go; the smaller internal shape is only used to detect and resolve penetration. Both share the actor's transform.
type ActorShapes struct {
	external Shape
	internal Shape
}

// NewActorShapes validates and pairs an external and internal shape. The internal shape must be contained in the
// external one in every dimension.
func NewActorShapes(external, internal Shape) (ActorShapes, error) {
	if !external.Valid() {
		return ActorShapes{}, errors.Wrapf(oerror.ErrInvalidShape, "external shape %v", external.HalfExtents)
	}
	if !internal.Valid() {
		return ActorShapes{}, errors.Wrapf(oerror.ErrInvalidShape, "internal shape %v", internal.HalfExtents)
	}
	if !external.Contains(internal) {
		return ActorShapes{}, errors.Wrapf(oerror.ErrInvalidShape, "internal shape %v exceeds external shape %v", internal.HalfExtents, external.HalfExtents)
	}
	return ActorShapes{external: external, internal: internal}, nil
}

// FromHalfExtents builds a box pair where the internal box is the external one scaled by internalScale.
func FromHalfExtents(halfExtents mgl64.Vec3, internalScale float64) (ActorShapes, error) {
	if internalScale <= 0 || internalScale > 1 {
		return ActorShapes{}, errors.Wrapf(oerror.ErrInvalidShape, "internal scale %v out of (0,1]", internalScale)
	}
	ext := Box(halfExtents)
	return NewActorShapes(ext, ext.Scale(internalScale))
}

// LoadActorShapes resolves both shapes of an actor from the catalog.
func LoadActorShapes(c Catalog, id game.ActorID) (ActorShapes, error) {
	if c == nil {
		return ActorShapes{}, errors.Wrapf(oerror.ErrMissingShape, "actor %d: no shape catalog", id)
	}
	ext, err := c.ExternalShape(id)
	if err != nil {
		return ActorShapes{}, errors.Wrapf(err, "actor %d: external shape", id)
	}
	in, err := c.InternalShape(id)
	if err != nil {
		return ActorShapes{}, errors.Wrapf(err, "actor %d: internal shape", id)
	}
	return NewActorShapes(ext, in)
}

// External returns the shape used for sweeps.
func (a ActorShapes) External() Shape {
	return a.external
}

// Internal returns the shape used for penetration recovery.
func (a ActorShapes) Internal() Shape {
	return a.internal
}
