package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraUpdate(t *testing.T) {
	tests := []struct {
		name   string
		smooth float64
		start  float64
		bodyY  []float64
		want   float64
	}{
		{"smooths_toward_target", 0.1, 0, []float64{-1000}, -130},
		{"two_ticks", 0.1, 0, []float64{-1000, -1000}, -247},
		{"clamped_at_max", 0.1, 0, []float64{1000}, 50},
		{"zero_smoothing_snaps", 0, 0, []float64{-1000}, -1300},
		{"smoothing_above_one_snaps", 5, 0, []float64{-1000}, -1300},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(CameraConfig{ViewHeight: 600, Smoothing: tc.smooth, MaxY: 50})
			c.Y = tc.start
			for _, y := range tc.bodyY {
				c.Update(y)
			}
			assert.InDelta(t, tc.want, c.Y, eps)
		})
	}
}

func TestCameraSnapTo(t *testing.T) {
	c := NewCamera(DefaultConfig().Camera)
	c.SnapTo(-1400)
	assert.InDelta(t, -1700, c.Y, eps)
	assert.InDelta(t, 300, c.ToScreen(-1400), eps)

	c.SnapTo(559)
	assert.InDelta(t, 50, c.Y, eps)
}

func TestSimulationCameraFollowsBody(t *testing.T) {
	s := newTestSim(t, 100, -1000, nil)
	s.SetGravity(0)
	start := s.CameraY()
	assert.InDelta(t, -1300, start, eps)

	s.body.Y = -2000
	tickN(t, s, 1)
	assert.InDelta(t, -1300+(-2300+1300)*0.1, s.CameraY(), eps)

	s.SetCamera(CameraConfig{ViewHeight: 600, Smoothing: 0, MaxY: 50})
	tickN(t, s, 1)
	assert.InDelta(t, -2300, s.CameraY(), eps)
}
