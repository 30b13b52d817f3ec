package sim

// GoalResetSystem returns the body to the respawn point the tick after it
// touched a goal.
type GoalResetSystem struct{}

func (GoalResetSystem) Update(s *Simulation) {
	if !s.done {
		return
	}
	s.body.Place(s.cfg.Respawn.X, s.cfg.Respawn.Y)
	s.done = false
	s.setState(stateIdle)
	s.logf("sim: goal reached, respawn at (%.1f, %.1f)", s.cfg.Respawn.X, s.cfg.Respawn.Y)
}

// InputSystem drains the input queue into the current state.
type InputSystem struct{}

func (InputSystem) Update(s *Simulation) {
	s.pending = s.queue.drain(s.pending[:0])
	for _, ev := range s.pending {
		if ev.Kind == EventMoveUp {
			s.moveUp = true
			continue
		}
		s.state.HandleInput(s, ev)
	}
}

// MoveUpSystem applies a pending move-up nudge once.
type MoveUpSystem struct{}

func (MoveUpSystem) Update(s *Simulation) {
	if !s.moveUp {
		return
	}
	s.body.Y -= s.cfg.MoveUpNudge
	s.moveUp = false
}

// PhysicsSystem advances the body one tick.
type PhysicsSystem struct{}

func (PhysicsSystem) Update(s *Simulation) {
	s.last = s.integrator.Step(s.body)
	if s.last.Contact.Goal && !s.done {
		s.done = true
		s.goals++
	}
}

type CameraSystem struct{}

func (CameraSystem) Update(s *Simulation) {
	s.camera.Update(s.body.Y)
}

// StateSystem runs the state machine after physics.
type StateSystem struct{}

func (StateSystem) Update(s *Simulation) {
	s.state.OnPhysics(s)
}

// DefaultSystems is the tick pipeline in order.
func DefaultSystems() []System {
	return []System{
		GoalResetSystem{},
		InputSystem{},
		MoveUpSystem{},
		PhysicsSystem{},
		CameraSystem{},
		StateSystem{},
	}
}
