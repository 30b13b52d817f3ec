package sim

import (
	"math"
	"time"

	"github.com/milk9111/blocklaunch/common"
)

// CameraConfig controls vertical camera follow.
type CameraConfig struct {
	// ViewHeight is the visible height in world units.
	ViewHeight float64
	// Smoothing is the fraction of the remaining distance covered per tick
	// (0..1). 0 snaps.
	Smoothing float64
	// MaxY is the lowest the camera may scroll (largest top-edge y).
	MaxY float64
}

// RestConfig decides when the body counts as resting.
type RestConfig struct {
	VX float64
	VY float64
	// Dwell is how long the body must rest before the launch indicator shows.
	Dwell time.Duration
}

type Point struct {
	X, Y float64
}

// Config is the simulation loop configuration. Physics thresholds live in
// physics.Config.
type Config struct {
	Camera CameraConfig
	Rest   RestConfig
	Launch LaunchConfig
	// Respawn is where the body returns after touching a goal.
	Respawn Point
	// MoveUpNudge is how far a move-up request lifts the body.
	MoveUpNudge float64
	TickRate    int
}

func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			ViewHeight: 600,
			Smoothing:  0.1,
			MaxY:       350 - 600/2,
		},
		Rest: RestConfig{
			VX:    0.05,
			VY:    0.5,
			Dwell: 100 * time.Millisecond,
		},
		Launch:      DefaultLaunchConfig(),
		MoveUpNudge: 0.01,
		TickRate:    common.TickRate,
	}
}

// dwellTicks converts the rest dwell into whole ticks, rounding up.
func (c Config) dwellTicks() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = common.TickRate
	}
	n := int(math.Ceil(c.Rest.Dwell.Seconds()*float64(rate) - 1e-9))
	if n < 0 {
		return 0
	}
	return n
}
