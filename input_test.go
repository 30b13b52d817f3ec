package main

import (
	"testing"

	"github.com/milk9111/blocklaunch/sim"
	"github.com/stretchr/testify/assert"
)

type fakeAimer struct {
	state sim.State
	calls []string
}

func (f *fakeAimer) AimStart(x float64) {
	f.calls = append(f.calls, "start")
	if f.state == sim.StateAiming {
		f.state = sim.StateIdle
	} else {
		f.state = sim.StateAiming
	}
}
func (f *fakeAimer) AimUpdate(x float64) { f.calls = append(f.calls, "update") }
func (f *fakeAimer) MoveUp()             { f.calls = append(f.calls, "up") }
func (f *fakeAimer) State() sim.State    { return f.state }

func TestInputApply(t *testing.T) {
	type frame struct {
		x                 float64
		pressed, released bool
	}
	tests := []struct {
		name   string
		frames []frame
		want   []string
	}{
		{"press_drag", []frame{{x: 10, pressed: true}, {x: 12}, {x: 12}, {x: 15}}, []string{"start", "update", "update"}},
		{"release_cancels", []frame{{x: 10, pressed: true}, {x: 10, released: true}}, []string{"start", "start"}},
		{"move_without_press", []frame{{x: 10}, {x: 20}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInput()
			a := &fakeAimer{}
			for _, f := range tc.frames {
				in.pointerX = f.x
				in.apply(a, f.pressed, f.released)
			}
			assert.Equal(t, tc.want, a.calls)
		})
	}
}
