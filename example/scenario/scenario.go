package main

import (
	"os"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/simulation"
	"github.com/oomph-ac/kinematic/world"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// scenario is a scripted world with actors walking through it.
type scenario struct {
	Ticks    int     `toml:"ticks"`
	TickRate float64 `toml:"tick_rate"`
	// Ground is the height of an infinite floor. The floor is left out if HasGround is false.
	Ground    float64 `toml:"ground"`
	HasGround bool    `toml:"has_ground"`

	Boxes []struct {
		Min []float64 `toml:"min"`
		Max []float64 `toml:"max"`
	} `toml:"box"`
	Planes []struct {
		Normal []float64 `toml:"normal"`
		Point  []float64 `toml:"point"`
	} `toml:"plane"`
	Actors []scenarioActor `toml:"actor"`
}

type scenarioActor struct {
	Name        string    `toml:"name"`
	Position    []float64 `toml:"position"`
	HalfExtents []float64 `toml:"half_extents"`
	Velocity    []float64 `toml:"velocity"`
	Yaw         float64   `toml:"yaw"`
	// JumpAt lists the ticks on which the actor requests a jump.
	JumpAt []int `toml:"jump_at"`
}

func loadScenario(path string) (scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, errors.Wrap(err, "error reading scenario")
	}
	sc := scenario{Ticks: 100, TickRate: 20}
	if err := toml.Unmarshal(data, &sc); err != nil {
		return scenario{}, errors.Wrap(err, "error decoding scenario")
	}
	if sc.TickRate <= 0 {
		return scenario{}, errors.Errorf("tick rate must be positive, got %v", sc.TickRate)
	}
	return sc, nil
}

func vec3(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, errors.Errorf("expected 3 components, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// build creates the world described by the scenario.
func (sc scenario) build() (*world.World, error) {
	w := world.New()
	if sc.HasGround {
		w.AddGround(sc.Ground)
	}
	for i, b := range sc.Boxes {
		lo, err := vec3(b.Min)
		if err != nil {
			return nil, errors.Wrapf(err, "box %d min", i)
		}
		hi, err := vec3(b.Max)
		if err != nil {
			return nil, errors.Wrapf(err, "box %d max", i)
		}
		w.AddBox(cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2]))
	}
	for i, p := range sc.Planes {
		n, err := vec3(p.Normal)
		if err != nil {
			return nil, errors.Wrapf(err, "plane %d normal", i)
		}
		pt, err := vec3(p.Point)
		if err != nil {
			return nil, errors.Wrapf(err, "plane %d point", i)
		}
		if n.Len() == 0 {
			return nil, errors.Errorf("plane %d has a zero normal", i)
		}
		w.AddPlane(world.PlaneThrough(n, pt))
	}
	return w, nil
}

func (a scenarioActor) actor() (*simulation.Actor, error) {
	pos, err := vec3(a.Position)
	if err != nil {
		return nil, errors.Wrapf(err, "actor %q position", a.Name)
	}
	he, err := vec3(a.HalfExtents)
	if err != nil {
		return nil, errors.Wrapf(err, "actor %q half extents", a.Name)
	}
	act := simulation.NewActor(pos, he)
	act.Rotation = a.Yaw
	if len(a.Velocity) == 2 {
		act.HorizontalVel = mgl64.Vec2{a.Velocity[0], a.Velocity[1]}
	} else if len(a.Velocity) != 0 {
		return nil, errors.Errorf("actor %q velocity needs 2 components", a.Name)
	}
	return act, nil
}

func (a scenarioActor) jumpsOn(tick int) bool {
	for _, t := range a.JumpAt {
		if t == tick {
			return true
		}
	}
	return false
}
