package simulation

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinematic/collision"
	"github.com/oomph-ac/kinematic/shape"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &moveContext{}
	},
}

// moveContext is the scratch state of one actor's tick.
type moveContext struct {
	actor  *Actor
	shapes shape.ActorShapes
	tracer collision.Tracer
	dt     float64

	pos      mgl64.Vec3
	velocity mgl64.Vec3
	// primal is the velocity the slide loop started with.
	primal mgl64.Vec3
	// planes are the normals hit by the slide loop this tick.
	planes []mgl64.Vec3

	jumped  bool
	landed  bool
	ceiling bool
	// touchedDown is set when an airborne actor became grounded this tick.
	touchedDown bool
	impactSpeed float64

	iterations        int
	stalled           bool
	recoveryPasses    int
	recoveryExhausted bool
	lastTrace         collision.TraceResult
}

func newCtx(s *Simulator, a *Actor, dt float64) *moveContext {
	ctx := ctxPool.Get().(*moveContext)
	ctx.actor = a
	ctx.dt = dt
	ctx.pos = a.Pos
	ctx.tracer.Reset(s.World, a.ID)
	if s.Options.Debug {
		ctx.tracer.OnTrace = func(r collision.TraceResult) {
			s.debugf(a.ID, "trace %v", r)
		}
	}
	return ctx
}

func putCtx(ctx *moveContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *moveContext) reset() {
	ctx.actor = nil
	ctx.shapes = shape.ActorShapes{}
	ctx.tracer.Reset(nil, 0)
	ctx.dt = 0
	ctx.pos = mgl64.Vec3{}
	ctx.velocity = mgl64.Vec3{}
	ctx.primal = mgl64.Vec3{}
	ctx.planes = ctx.planes[:0]
	ctx.jumped = false
	ctx.landed = false
	ctx.ceiling = false
	ctx.touchedDown = false
	ctx.impactSpeed = 0
	ctx.iterations = 0
	ctx.stalled = false
	ctx.recoveryPasses = 0
	ctx.recoveryExhausted = false
	ctx.lastTrace = collision.TraceResult{}
}

// touch records a surface hit during the tick.
func (ctx *moveContext) touch(n mgl64.Vec3) {
	if n.Z() < -0.5 {
		ctx.ceiling = true
	}
	ctx.planes = append(ctx.planes, n)
}
