package sim

import (
	"math"

	"github.com/milk9111/blocklaunch/common"
)

// Camera follows the body vertically. Y is the world-space top edge of the
// view.
type Camera struct {
	Y float64

	viewHeight float64
	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	maxY   float64
}

func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{}
	c.Configure(cfg)
	return c
}

// Configure replaces the camera settings without moving it.
func (c *Camera) Configure(cfg CameraConfig) {
	c.viewHeight = cfg.ViewHeight
	c.SetSmooth(cfg.Smoothing)
	c.maxY = cfg.MaxY
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

func (c *Camera) ViewHeight() float64 { return c.viewHeight }

// target is the camera position that centers bodyY in the view.
func (c *Camera) target(bodyY float64) float64 {
	return bodyY - c.viewHeight/2
}

// Update moves the camera toward the body. Call once per tick to get
// consistent smoothing.
func (c *Camera) Update(bodyY float64) {
	t := c.target(bodyY)
	if c.smooth <= 0 {
		c.Y = t
	} else {
		c.Y = common.Lerp(c.Y, t, c.smooth)
	}
	c.Y = math.Min(c.Y, c.maxY)
}

// SnapTo places the camera on the body immediately, e.g. after a level
// load.
func (c *Camera) SnapTo(bodyY float64) {
	c.Y = math.Min(c.target(bodyY), c.maxY)
}

// ToScreen converts a world y to a screen y.
func (c *Camera) ToScreen(worldY float64) float64 {
	return worldY - c.Y
}
