package sim

import (
	"errors"
	"log"
	"math"

	"github.com/milk9111/blocklaunch/physics"
)

var (
	ErrWorldNotReady = errors.New("sim: world not ready")
	ErrStopped       = errors.New("sim: stopped")
)

// Simulation owns the body and advances it one fixed tick at a time. Input
// methods may be called from any goroutine; everything else belongs to the
// goroutine calling Tick.
type Simulation struct {
	world      *physics.World
	integrator *physics.Integrator
	body       *physics.Body
	camera     *Camera
	cfg        Config

	launcher  Launcher
	scheduler *Scheduler
	queue     inputQueue
	pending   []Event

	state     blockState
	aimStartX float64
	restTicks int
	moveUp    bool
	done      bool
	stopped   bool
	goals     int
	ticks     uint64
	last      physics.StepResult

	logger *log.Logger
	debug  bool
}

type Option func(*Simulation)

// WithLogger enables logging. State transitions are only logged when debug
// is set.
func WithLogger(l *log.Logger, debug bool) Option {
	return func(s *Simulation) {
		s.logger = l
		s.debug = debug
	}
}

func WithLauncher(l Launcher) Option {
	return func(s *Simulation) {
		if l != nil {
			s.launcher = l
		}
	}
}

// WithSystems appends systems after the default pipeline.
func WithSystems(systems ...System) Option {
	return func(s *Simulation) {
		for _, sys := range systems {
			s.scheduler.Add(sys)
		}
	}
}

// New builds a simulation over world and body. body is owned by the
// simulation from here on.
func New(world *physics.World, body *physics.Body, physCfg physics.Config, cfg Config, opts ...Option) (*Simulation, error) {
	if world == nil || body == nil {
		return nil, ErrWorldNotReady
	}
	s := &Simulation{
		world:      world,
		integrator: physics.NewIntegrator(world, physCfg),
		body:       body,
		camera:     NewCamera(cfg.Camera),
		cfg:        cfg,
		launcher:   NewProportionalLauncher(cfg.Launch),
		scheduler:  NewScheduler(DefaultSystems()...),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.wireLauncherLogger()
	s.camera.SnapTo(body.Y)
	s.setState(stateIdle)
	return s, nil
}

// Tick advances the simulation by one fixed step.
func (s *Simulation) Tick() error {
	if s == nil || s.world == nil || s.body == nil {
		return ErrWorldNotReady
	}
	if s.stopped {
		return ErrStopped
	}
	s.scheduler.Update(s)
	s.ticks++
	return nil
}

// AimStart presses the aim at pointer x. A second press releases it.
func (s *Simulation) AimStart(x float64) { s.queue.push(Event{Kind: EventAimStart, X: x}) }

// AimUpdate moves the aim pointer to x, launching when the gesture allows.
func (s *Simulation) AimUpdate(x float64) { s.queue.push(Event{Kind: EventAimUpdate, X: x}) }

// MoveUp requests a one-shot upward nudge.
func (s *Simulation) MoveUp() { s.queue.push(Event{Kind: EventMoveUp}) }

// Stop makes every later Tick return ErrStopped.
func (s *Simulation) Stop() { s.stopped = true }

func (s *Simulation) Stopped() bool { return s.stopped }

// Body returns a copy of the body.
func (s *Simulation) Body() physics.Body { return *s.body }

func (s *Simulation) World() *physics.World { return s.world }

func (s *Simulation) Camera() *Camera { return s.camera }

func (s *Simulation) CameraY() float64 { return s.camera.Y }

func (s *Simulation) State() State { return s.state.State() }

// IndicatorVisible reports whether the launch indicator should be drawn.
func (s *Simulation) IndicatorVisible() bool {
	st := s.state.State()
	return st == StateIdle || st == StateAiming
}

// Done reports a goal contact not yet reset.
func (s *Simulation) Done() bool { return s.done }

// Goals counts goal contacts since New.
func (s *Simulation) Goals() int { return s.goals }

func (s *Simulation) Ticks() uint64 { return s.ticks }

// LastStep is the integrator result of the latest tick.
func (s *Simulation) LastStep() physics.StepResult { return s.last }

// AimStartX is the pointer x recorded by the current aim.
func (s *Simulation) AimStartX() float64 { return s.aimStartX }

func (s *Simulation) StepMode() physics.StepMode { return s.integrator.Mode() }

func (s *Simulation) SetStepMode(m physics.StepMode) { s.integrator.SetMode(m) }

func (s *Simulation) PhysicsConfig() physics.Config { return s.integrator.Config() }

// SetPhysicsConfig swaps the collision and integration thresholds, step mode
// included.
func (s *Simulation) SetPhysicsConfig(cfg physics.Config) { s.integrator.SetConfig(cfg) }

func (s *Simulation) SetMoveUpNudge(d float64) { s.cfg.MoveUpNudge = d }

func (s *Simulation) SetLauncher(l Launcher) {
	if l != nil {
		s.launcher = l
		s.wireLauncherLogger()
	}
}

// wireLauncherLogger routes script errors to the simulation logger.
func (s *Simulation) wireLauncherLogger() {
	if sl, ok := s.launcher.(*ScriptLauncher); ok && s.logger != nil {
		sl.SetLogger(s.logger)
	}
}

func (s *Simulation) SetCamera(cfg CameraConfig) {
	s.cfg.Camera = cfg
	s.camera.Configure(cfg)
}

func (s *Simulation) SetRest(cfg RestConfig) { s.cfg.Rest = cfg }

// SetRespawn changes where the body goes after a goal.
func (s *Simulation) SetRespawn(p Point) { s.cfg.Respawn = p }

// resting reports whether the body is below the rest thresholds.
func (s *Simulation) resting() bool {
	return math.Abs(s.body.VX) <= s.cfg.Rest.VX && math.Abs(s.body.VY) <= s.cfg.Rest.VY
}

func (s *Simulation) beginAim(x float64) {
	if !s.resting() {
		s.debugf("sim: aim ignored while moving")
		return
	}
	s.aimStartX = x
	if x < s.body.CenterX() {
		s.body.Facing = physics.FacingLeft
	} else {
		s.body.Facing = physics.FacingRight
	}
	s.setState(stateAiming)
}

// launch asks the launcher for an impulse and applies it.
func (s *Simulation) launch(x float64) bool {
	g := Gesture{StartX: s.aimStartX, PointerX: x, Facing: s.body.Facing}
	imp, ok := s.launcher.Launch(g)
	if !ok {
		return false
	}
	s.body.VX = imp.VX
	s.body.VY = imp.VY
	s.logf("sim: launch vx=%.2f vy=%.2f", imp.VX, imp.VY)
	return true
}

func (s *Simulation) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func (s *Simulation) debugf(format string, args ...any) {
	if s.debug {
		s.logf(format, args...)
	}
}
