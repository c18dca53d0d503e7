package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/shape"
)

// RayLift is how far above the queried point a downward ray starts, so that a point resting exactly on a surface
// still reports it.
const RayLift = 0.5

// Tracer issues queries against a World on behalf of one actor and normalises their results.
type Tracer struct {
	world World
	actor game.ActorID

	// OnTrace, when set, observes every result the tracer hands out.
	OnTrace func(TraceResult)

	queries int
}

// NewTracer returns a tracer for the given actor.
func NewTracer(w World, actor game.ActorID) *Tracer {
	return &Tracer{world: w, actor: actor}
}

// Reset rebinds the tracer to a world and actor and clears its statistics.
func (t *Tracer) Reset(w World, actor game.ActorID) {
	t.world, t.actor, t.queries = w, actor, 0
	t.OnTrace = nil
}

// Actor returns the actor the tracer queries for.
func (t *Tracer) Actor() game.ActorID {
	return t.actor
}

// Queries returns the number of world queries issued since the last reset.
func (t *Tracer) Queries() int {
	return t.queries
}

// Sweep sweeps s from `from` to `to` and returns the first contact. A degenerate sweep does not query the world.
func (t *Tracer) Sweep(s shape.Shape, from, to mgl64.Vec3) TraceResult {
	if game.IsZeroVec(to.Sub(from)) || t.world == nil {
		return t.observe(Miss(from))
	}
	t.queries++
	return t.observe(t.world.Sweep(s, from, to))
}

// SweepBy sweeps s from `from` by the displacement delta.
func (t *Tracer) SweepBy(s shape.Shape, from, delta mgl64.Vec3) TraceResult {
	return t.Sweep(s, from, from.Add(delta))
}

// RayDownward casts a ray straight down from position over the given distance. The fraction of the result
// refers to distance, measured from position.
func (t *Tracer) RayDownward(position mgl64.Vec3, distance float64) TraceResult {
	end := position.Sub(game.Up.Mul(distance))
	if distance <= 0 || t.world == nil {
		return t.observe(Miss(position))
	}
	t.queries++

	start := position.Add(game.Up.Mul(RayLift))
	r := t.world.RayTest(start, end)
	if !r.HitSomething() {
		return t.observe(Miss(end))
	}
	travelled := r.Fraction()*(distance+RayLift) - RayLift
	return t.observe(Hit(travelled/distance, r.EndPosition(), r.PlaneNormal()))
}

// Contacts returns the contacts between s placed at `at` and the world. Contacts with the actor's own proxies are
// left out: the internal and external shape always overlap each other.
func (t *Tracer) Contacts(s shape.Shape, at mgl64.Vec3) ContactManifold {
	if t.world == nil {
		return nil
	}
	t.queries++
	all := t.world.ContactTest(s, at)
	out := all[:0:0]
	for _, c := range all {
		if t.actor != game.NoActor && c.Owner == t.actor {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (t *Tracer) observe(r TraceResult) TraceResult {
	if t.OnTrace != nil {
		t.OnTrace(r)
	}
	return r
}
