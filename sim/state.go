package sim

// State is the gameplay state of the block.
type State uint8

const (
	StateIdle State = iota
	StateAiming
	StateLaunched
	StateResting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAiming:
		return "aiming"
	case StateLaunched:
		return "launched"
	case StateResting:
		return "resting"
	default:
		return "unknown"
	}
}

// blockState is the interface each concrete state implements.
type blockState interface {
	State() State
	Enter(s *Simulation)
	HandleInput(s *Simulation, ev Event)
	OnPhysics(s *Simulation)
}

// setState switches states and calls Enter.
func (s *Simulation) setState(st blockState) {
	if s.state == st {
		return
	}
	prev := s.state
	s.state = st
	s.state.Enter(s)
	if prev != nil {
		s.debugf("sim: state %s -> %s", prev.State(), st.State())
	}
}

type idleState struct{}

func (idleState) State() State { return StateIdle }
func (idleState) Enter(s *Simulation) {
	s.restTicks = 0
}
func (idleState) HandleInput(s *Simulation, ev Event) {
	if ev.Kind == EventAimStart {
		s.beginAim(ev.X)
	}
}
func (idleState) OnPhysics(s *Simulation) {
	if !s.resting() {
		s.setState(stateLaunched)
	}
}

type aimingState struct{}

func (aimingState) State() State { return StateAiming }
func (aimingState) Enter(s *Simulation) {}
func (aimingState) HandleInput(s *Simulation, ev Event) {
	switch ev.Kind {
	case EventAimStart:
		// second press releases the aim
		s.setState(stateIdle)
	case EventAimUpdate:
		if !s.resting() {
			return
		}
		if s.launch(ev.X) {
			s.setState(stateLaunched)
		}
	}
}
func (aimingState) OnPhysics(s *Simulation) {
	if !s.resting() {
		s.debugf("sim: aim dropped, block moving")
		s.setState(stateLaunched)
	}
}

type launchedState struct{}

func (launchedState) State() State { return StateLaunched }
func (launchedState) Enter(s *Simulation) {
	s.restTicks = 0
}
func (launchedState) HandleInput(s *Simulation, ev Event) {
	if ev.Kind == EventAimStart {
		s.debugf("sim: aim ignored while moving")
	}
}
func (launchedState) OnPhysics(s *Simulation) {
	if s.resting() {
		s.setState(stateResting)
	}
}

type restingState struct{}

func (restingState) State() State { return StateResting }
func (restingState) Enter(s *Simulation) {
	s.restTicks = 0
}
func (restingState) HandleInput(s *Simulation, ev Event) {
	if ev.Kind == EventAimStart {
		s.beginAim(ev.X)
	}
}
func (restingState) OnPhysics(s *Simulation) {
	if !s.resting() {
		s.setState(stateLaunched)
		return
	}
	s.restTicks++
	if s.restTicks >= s.cfg.dwellTicks() {
		s.setState(stateIdle)
	}
}

// singletons for each state to avoid allocating on every transition
var (
	stateIdle     blockState = &idleState{}
	stateAiming   blockState = &aimingState{}
	stateLaunched blockState = &launchedState{}
	stateResting  blockState = &restingState{}
)
