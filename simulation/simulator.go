package simulation

import (
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
	"github.com/sirupsen/logrus"
)

// Simulator moves actors through a collision world. It holds no per-actor state, so one simulator may serve any
// number of actors, concurrently if the world allows concurrent reads.
type Simulator struct {
	World   collision.World
	Shapes  shape.Catalog
	Options Options
	Log     logrus.FieldLogger
}

// NewSimulator returns a simulator with default options.
func NewSimulator(w collision.World, shapes shape.Catalog, log logrus.FieldLogger) *Simulator {
	return &Simulator{
		World:   w,
		Shapes:  shapes,
		Options: DefaultOptions(),
		Log:     log,
	}
}

func (s *Simulator) logger(id game.ActorID) logrus.FieldLogger {
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("actor", id)
}

// debugf emits trace logs when debugging is enabled in the options.
func (s *Simulator) debugf(id game.ActorID, format string, args ...any) {
	if !s.Options.Debug {
		return
	}
	s.logger(id).Debugf(format, args...)
}
