package sim

import (
	"math"

	"github.com/milk9111/blocklaunch/physics"
)

// Gesture describes an aim drag in world units.
type Gesture struct {
	StartX   float64
	PointerX float64
	// Facing is the anchor side picked when the aim started.
	Facing physics.Facing
}

// Delta is the signed pointer travel since the aim started.
func (g Gesture) Delta() float64 { return g.PointerX - g.StartX }

// Impulse is the velocity handed to the body on launch.
type Impulse struct {
	VX, VY float64
}

// capped limits |VX| to limit. limit <= 0 disables the cap.
func (i Impulse) capped(limit float64) Impulse {
	if limit > 0 {
		i.VX = math.Max(-limit, math.Min(i.VX, limit))
	}
	return i
}

// Launcher turns an aim gesture into a launch impulse. ok is false when the
// gesture does not launch.
type Launcher interface {
	Launch(g Gesture) (imp Impulse, ok bool)
}

type LaunchConfig struct {
	ScaleX float64
	ScaleY float64
	MaxVX  float64
}

func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{ScaleX: 0.5, ScaleY: 0.75, MaxVX: 15}
}

// ProportionalLauncher launches in proportion to the drag distance once the
// pointer crosses to the side opposite the anchor.
type ProportionalLauncher struct {
	LaunchConfig
}

func NewProportionalLauncher(cfg LaunchConfig) *ProportionalLauncher {
	return &ProportionalLauncher{LaunchConfig: cfg}
}

func (p *ProportionalLauncher) Launch(g Gesture) (Impulse, bool) {
	d := g.Delta()
	switch g.Facing {
	case physics.FacingLeft:
		if d <= 0 {
			return Impulse{}, false
		}
	default:
		if d >= 0 {
			return Impulse{}, false
		}
	}
	imp := Impulse{
		VX: d * p.ScaleX,
		VY: -math.Abs(d) * p.ScaleY,
	}
	return imp.capped(p.MaxVX), true
}
