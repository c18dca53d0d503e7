package kinematic

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/oomph-ac/kinematic/shape"
	"github.com/oomph-ac/kinematic/simulation"
	"github.com/oomph-ac/kinematic/worker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Config configures a Registry.
type Config struct {
	// World is queried by every actor's solve. If it also implements collision.ProxyWriter, the registry keeps the
	// actors' shapes indexed in it.
	World collision.World
	// Catalog supplies actor shapes. When nil, the registry owns a catalog and builds each actor's shapes from its
	// half-extents.
	Catalog  shape.Catalog
	Settings settings.Settings
	Log      logrus.FieldLogger
}

// ActorResult is the outcome of one actor's tick.
type ActorResult struct {
	ID     game.ActorID
	Result simulation.SimulationResult
}

// Registry owns every actor and resolves the handles other subsystems refer to them by. Actors are ticked in the
// order they were added. All methods are safe for concurrent use; reads block while a tick is in progress.
type Registry struct {
	mu sync.RWMutex

	sim     *simulation.Simulator
	proxies collision.ProxyWriter
	owned   *shape.StaticCatalog
	scale   float64

	actors *orderedmap.OrderedMap[game.ActorID, *simulation.Actor]
	names  map[game.ActorID]string

	pool *worker.Pool
	tick uint64
	log  logrus.FieldLogger
}

// New returns an empty registry. A zero Settings value is replaced by the default settings.
func New(cfg Config) *Registry {
	if cfg.Settings == (settings.Settings{}) {
		cfg.Settings = settings.DefaultSettings()
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &Registry{
		actors: orderedmap.NewOrderedMap[game.ActorID, *simulation.Actor](),
		names:  make(map[game.ActorID]string),
		scale:  cfg.Settings.Movement.InternalScale,
		log:    log,
	}
	if r.scale <= 0 {
		r.scale = game.DefaultInternalScale
	}

	catalog := cfg.Catalog
	if catalog == nil {
		r.owned = shape.NewStaticCatalog()
		catalog = r.owned
	}
	r.sim = &simulation.Simulator{
		World:   cfg.World,
		Shapes:  catalog,
		Options: simulation.OptionsFromSettings(cfg.Settings),
		Log:     log,
	}
	if pw, ok := cfg.World.(collision.ProxyWriter); ok {
		r.proxies = pw
	}
	if cfg.Settings.Simulation.Parallel {
		r.pool = worker.New(cfg.Settings.Simulation.Workers)
	}
	return r
}

// Close stops the worker pool of a parallel registry.
func (r *Registry) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// IDFromName returns the handle an actor registered under name receives.
func IDFromName(name string) game.ActorID {
	id := game.ActorID(xxh3.HashString(name))
	if id == game.NoActor {
		id = game.ActorID(xxh3.HashString(name + "\x00"))
	}
	return id
}

// Add registers an actor under name and returns its handle.
func (r *Registry) Add(name string, a *simulation.Actor) (game.ActorID, error) {
	if a == nil {
		return game.NoActor, errors.Errorf("actor %q is nil", name)
	}
	id := IDFromName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actors.Get(id); ok {
		return game.NoActor, errors.Wrapf(oerror.ErrDuplicateActor, "actor %q", name)
	}
	a.ID = id
	if r.owned != nil {
		pair, err := shape.FromHalfExtents(a.HalfExtents, r.scale)
		if err != nil {
			return game.NoActor, errors.Wrapf(err, "actor %q", name)
		}
		r.owned.Set(id, pair)
	}
	r.actors.Set(id, a)
	r.names[id] = name
	r.writeProxy(a)

	r.log.WithField("actor", id).Debugf("added actor %q at %v", name, a.Pos)
	return id, nil
}

// Remove unregisters an actor.
func (r *Registry) Remove(id game.ActorID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.actors.Delete(id) {
		return errors.Wrapf(oerror.ErrUnknownActor, "actor %d", id)
	}
	delete(r.names, id)
	if r.owned != nil {
		r.owned.Remove(id)
	}
	if r.proxies != nil {
		r.proxies.RemoveProxy(id)
	}
	return nil
}

// Len returns the number of registered actors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.actors.Len()
}

// Name returns the name an actor was registered under.
func (r *Registry) Name(id game.ActorID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[id]
	return name, ok
}

// Tick advances every actor by dt seconds and returns their results in registration order.
func (r *Registry) Tick(dt float64) []ActorResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tick++
	actors := make([]*simulation.Actor, 0, r.actors.Len())
	for el := r.actors.Front(); el != nil; el = el.Next() {
		actors = append(actors, el.Value)
	}

	results := make([]ActorResult, len(actors))
	if r.pool != nil && len(actors) > 1 {
		r.tickParallel(actors, results, dt)
	} else {
		for i, a := range actors {
			results[i] = ActorResult{ID: a.ID, Result: r.sim.Simulate(a, dt)}
		}
	}

	// Actor transforms are indexed by the world, so they are written one at a time once every solve is done.
	for _, a := range actors {
		if !a.Skipped {
			r.writeProxy(a)
		}
	}
	if r.sim.Options.Debug {
		r.log.WithField("tick", r.tick).Debugf("ticked %d actors", len(actors))
	}
	return results
}

func (r *Registry) tickParallel(actors []*simulation.Actor, results []ActorResult, dt float64) {
	tasks := make([]func(), len(actors))
	for i, a := range actors {
		tasks[i] = func() {
			results[i] = ActorResult{ID: a.ID, Result: r.sim.Simulate(a, dt)}
		}
	}
	for i, panicked := range r.pool.Run(tasks) {
		if !panicked {
			continue
		}
		a := actors[i]
		a.Skipped = true
		results[i] = ActorResult{ID: a.ID, Result: simulation.SimulationResult{
			Position: a.Pos,
			Velocity: a.Velocity(),
			OnGround: a.OnGround,
			Outcome:  simulation.SimulationOutcomeSkippedInvalidState,
		}}
		r.log.WithFields(logrus.Fields{"actor": a.ID, "tick": r.tick}).Error("actor solve panicked, skipping actor for this tick")
	}
}

// writeProxy indexes the actor's shapes at its current position in the world.
func (r *Registry) writeProxy(a *simulation.Actor) {
	if r.proxies == nil {
		return
	}
	pair, err := shape.LoadActorShapes(r.sim.Shapes, a.ID)
	if err != nil {
		return
	}
	r.proxies.UpdateProxy(a.ID, pair, a.Pos)
}

// actor resolves a handle. The caller must hold the lock.
func (r *Registry) actor(id game.ActorID) (*simulation.Actor, error) {
	a, ok := r.actors.Get(id)
	if !ok {
		return nil, errors.Wrapf(oerror.ErrUnknownActor, "actor %d", id)
	}
	return a, nil
}

// update runs f on an actor under the write lock.
func (r *Registry) update(id game.ActorID, f func(a *simulation.Actor)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.actor(id)
	if err != nil {
		return err
	}
	f(a)
	return nil
}

// SetDesiredVelocity sets the horizontal velocity the actor tries to move at from the next tick on.
func (r *Registry) SetDesiredVelocity(id game.ActorID, vel mgl64.Vec2) error {
	return r.update(id, func(a *simulation.Actor) {
		a.HorizontalVel = vel
	})
}

// RequestJump asks the actor to jump on its next tick. The request is dropped if the actor is not on the ground
// by then.
func (r *Registry) RequestJump(id game.ActorID) error {
	return r.update(id, func(a *simulation.Actor) {
		a.JumpRequested = true
	})
}

// SetRotation sets the yaw of the actor around the up axis, in degrees.
func (r *Registry) SetRotation(id game.ActorID, yaw float64) error {
	return r.update(id, func(a *simulation.Actor) {
		a.Rotation = yaw
	})
}

// SetCollisionEnabled toggles collision for the actor. Actors without collision move by their full velocity.
func (r *Registry) SetCollisionEnabled(id game.ActorID, enabled bool) error {
	return r.update(id, func(a *simulation.Actor) {
		a.CollisionEnabled = enabled
	})
}

// Teleport places the actor at pos and clears its vertical motion.
func (r *Registry) Teleport(id game.ActorID, pos mgl64.Vec3) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.actor(id)
	if err != nil {
		return err
	}
	a.Pos, a.LastPos = pos, pos
	a.SetVerticalVel(0)
	a.OnGround = false
	a.State = simulation.VerticalFalling
	r.writeProxy(a)
	return nil
}

// Position returns the position of the actor after the last completed tick.
func (r *Registry) Position(id game.ActorID) (mgl64.Vec3, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, err := r.actor(id)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.Pos, nil
}

// Orientation returns the rotation of the actor around the up axis.
func (r *Registry) Orientation(id game.ActorID) (mgl64.Quat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, err := r.actor(id)
	if err != nil {
		return mgl64.QuatIdent(), err
	}
	return a.Orientation(), nil
}

// IsGrounded reports whether the actor ended the last tick on walkable ground.
func (r *Registry) IsGrounded(id game.ActorID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, err := r.actor(id)
	if err != nil {
		return false, err
	}
	return a.OnGround, nil
}

// Diagnostics returns a copy of the actor's state for inspection.
func (r *Registry) Diagnostics(id game.ActorID) (simulation.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, err := r.actor(id)
	if err != nil {
		return simulation.Actor{}, err
	}
	return *a, nil
}
