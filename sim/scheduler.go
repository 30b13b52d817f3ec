package sim

// System is one stage of the tick pipeline.
type System interface {
	Update(s *Simulation)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(s *Simulation)

func (f SystemFunc) Update(s *Simulation) { f(s) }

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(sim *Simulation) {
	for _, system := range s.systems {
		system.Update(sim)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
