package game

// ActorID is an opaque handle to an actor. Subsystems refer to actors only through it and resolve it through
// the registry's lookup table every tick.
type ActorID uint64

// NoActor is the owner of world geometry that does not belong to any actor.
const NoActor ActorID = 0
