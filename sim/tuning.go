package sim

// Tuning is the set of live-adjustable physics values.
type Tuning struct {
	Gravity       float64
	AirResistance float64
	Elasticity    float64
	Friction      float64
}

func (s *Simulation) SetGravity(g float64)       { s.world.SetGravity(g) }
func (s *Simulation) SetAirResistance(a float64) { s.world.SetAirResistance(a) }
func (s *Simulation) SetElasticity(e float64)    { s.body.Elasticity = e }
func (s *Simulation) SetFriction(f float64)      { s.body.Friction = f }

// ApplyTuning sets every value in t.
func (s *Simulation) ApplyTuning(t Tuning) {
	s.SetGravity(t.Gravity)
	s.SetAirResistance(t.AirResistance)
	s.SetElasticity(t.Elasticity)
	s.SetFriction(t.Friction)
}

// Tuning returns the current values.
func (s *Simulation) Tuning() Tuning {
	return Tuning{
		Gravity:       s.world.Gravity(),
		AirResistance: s.world.AirResistance(),
		Elasticity:    s.body.Elasticity,
		Friction:      s.body.Friction,
	}
}
