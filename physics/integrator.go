package physics

import (
	"math"

	"github.com/milk9111/blocklaunch/common"
)

// StepResult describes one integrated tick.
type StepResult struct {
	// Steps is the number of sub-steps the displacement was split into.
	Steps int
	// SubStep is the 1-based sub-step that collided, or 0 if none did.
	SubStep int
	Contact Contact
}

// Integrator applies gravity and velocity to a body once per tick, checking
// for collisions along the way.
type Integrator struct {
	world    *World
	resolver *Resolver
	cfg      Config
}

func NewIntegrator(world *World, cfg Config) *Integrator {
	return &Integrator{
		world:    world,
		resolver: NewResolver(world, cfg),
		cfg:      cfg,
	}
}

func (in *Integrator) World() *World { return in.world }

func (in *Integrator) Mode() StepMode { return in.cfg.StepMode }

// SetMode switches between continuous and discrete stepping.
func (in *Integrator) SetMode(m StepMode) {
	in.cfg.StepMode = m
	in.resolver.cfg.StepMode = m
}

func (in *Integrator) Config() Config { return in.cfg }

// SetConfig replaces the thresholds used by the integrator and its resolver.
func (in *Integrator) SetConfig(cfg Config) {
	in.cfg = cfg
	in.resolver.cfg = cfg
}

// Step advances b by one tick. Sub-stepping stops at the first sub-step that
// collides; the corrected position and velocity carry into the next tick.
// Air resistance is applied once per tick regardless of the step count.
func (in *Integrator) Step(b *Body) StepResult {
	var res StepResult
	if in == nil || in.world == nil || b == nil {
		return res
	}

	b.VX = common.Finite(b.VX)
	b.VY = common.Finite(b.VY)

	b.VY += in.world.gravity
	if tv := in.cfg.TerminalVelocity; tv > 0 && math.Abs(b.VY) > tv {
		b.VY = tv * common.Sign(b.VY)
	}

	dx, dy := b.VX, b.VY
	steps := in.stepCount(dx, dy)
	stepX := dx / float64(steps)
	stepY := dy / float64(steps)
	prevX, prevY := b.X, b.Y

	res.Steps = steps
	for i := 1; i <= steps; i++ {
		b.X = prevX + stepX*float64(i)
		b.Y = prevY + stepY*float64(i)
		if c := in.resolver.Resolve(b); c.Collided() {
			res.SubStep = i
			res.Contact = c
			break
		}
	}

	b.VX *= in.world.airResistance
	b.VY *= in.world.airResistance
	return res
}

// stepCount is ceil(max(|dx|, |dy|)), at least 1.
func (in *Integrator) stepCount(dx, dy float64) int {
	if in.cfg.StepMode == StepDiscrete {
		return 1
	}
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	if in.cfg.MaxSubSteps > 0 && steps > in.cfg.MaxSubSteps {
		steps = in.cfg.MaxSubSteps
	}
	return steps
}
