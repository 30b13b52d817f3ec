package physics

// StepMode selects how a tick's displacement is split before collision checks.
type StepMode uint8

const (
	// StepContinuous moves in sub-steps of at most one unit per axis so a fast
	// body cannot pass through an obstacle thicker than two units.
	StepContinuous StepMode = iota
	// StepDiscrete applies the whole displacement at once. Only safe when
	// per-tick speed stays well below obstacle thickness.
	StepDiscrete
)

func (m StepMode) String() string {
	switch m {
	case StepContinuous:
		return "continuous"
	case StepDiscrete:
		return "discrete"
	default:
		return "unknown"
	}
}

// ParseStepMode maps a config string to a StepMode. Unknown values fall back
// to continuous stepping.
func ParseStepMode(s string) StepMode {
	if s == "discrete" {
		return StepDiscrete
	}
	return StepContinuous
}

const (
	DefaultGravity       = 0.5
	DefaultAirResistance = 0.995
	DefaultElasticity    = 0.65
	DefaultFriction      = 0.8
)

// Config holds the collision thresholds and integrator limits. One Config
// covers every game variant; behavior differences are flags, not types.
type Config struct {
	// TerminalVelocity caps |vy| after gravity is applied. 0 disables the cap.
	TerminalVelocity float64
	// EdgeInset shrinks the overlap test on the axis orthogonal to the
	// collision normal so exact edge alignment does not count as contact.
	EdgeInset float64
	// VerticalSkin and HorizontalSkin are the gaps left between a resolved
	// body and the surface it hit.
	VerticalSkin   float64
	HorizontalSkin float64
	// BounceCapX bounds the reflected horizontal speed after a side hit.
	// 0 disables the cap.
	BounceCapX float64
	// SideWalls treats x <= 0 and x+width >= world width as walls.
	SideWalls bool
	StepMode  StepMode
	// MaxSubSteps bounds the sub-step count for pathological velocities.
	// 0 means unbounded.
	MaxSubSteps int
}

func DefaultConfig() Config {
	return Config{
		TerminalVelocity: 30,
		EdgeInset:        1,
		VerticalSkin:     0.01,
		HorizontalSkin:   0.1,
		BounceCapX:       5,
		SideWalls:        true,
		StepMode:         StepContinuous,
		MaxSubSteps:      256,
	}
}
