package shape

import (
	"sync"

	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/pkg/errors"
)

// Catalog supplies the collision primitives of actors, usually from asset data.
type Catalog interface {
	ExternalShape(id game.ActorID) (Shape, error)
	InternalShape(id game.ActorID) (Shape, error)
}

// StaticCatalog is an in-memory Catalog. It is safe for concurrent use.
type StaticCatalog struct {
	mu     sync.RWMutex
	shapes map[game.ActorID]ActorShapes
}

// NewStaticCatalog returns an empty catalog.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{shapes: make(map[game.ActorID]ActorShapes)}
}

// Set stores the shape pair of an actor, replacing any previous pair.
func (c *StaticCatalog) Set(id game.ActorID, shapes ActorShapes) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shapes[id] = shapes
}

// Remove forgets the shapes of an actor.
func (c *StaticCatalog) Remove(id game.ActorID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.shapes, id)
}

func (c *StaticCatalog) lookup(id game.ActorID) (ActorShapes, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.shapes[id]
	if !ok {
		return ActorShapes{}, errors.Wrapf(oerror.ErrMissingShape, "actor %d", id)
	}
	return s, nil
}

// ExternalShape ...
func (c *StaticCatalog) ExternalShape(id game.ActorID) (Shape, error) {
	s, err := c.lookup(id)
	return s.External(), err
}

// InternalShape ...
func (c *StaticCatalog) InternalShape(id game.ActorID) (Shape, error) {
	s, err := c.lookup(id)
	return s.Internal(), err
}
