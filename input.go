package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/blocklaunch/sim"
)

// aimer is the part of the simulation the mouse drives.
type aimer interface {
	AimStart(x float64)
	AimUpdate(x float64)
	MoveUp()
	State() sim.State
}

// Input turns mouse and keyboard state into simulation requests.
type Input struct {
	pointerX float64
	lastX    float64
	hasLast  bool
}

func NewInput() *Input {
	return &Input{}
}

// PointerX is the cursor x in world units.
func (i *Input) PointerX() float64 { return i.pointerX }

// Update polls the devices and queues requests on a. It reports whether the
// player asked to quit.
func (i *Input) Update(a aimer) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return true
	}

	mx, _ := ebiten.CursorPosition()
	i.pointerX = float64(mx)
	i.apply(a, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		a.MoveUp()
	}
	return false
}

// apply maps one frame of pointer state to aim requests. Pressing starts
// the aim, dragging updates it and releasing an unlaunched aim cancels it.
func (i *Input) apply(a aimer, pressed, released bool) {
	x := i.pointerX
	switch {
	case pressed:
		a.AimStart(x)
	case released:
		if a.State() == sim.StateAiming {
			a.AimStart(x)
		}
	case a.State() == sim.StateAiming && i.hasLast && x != i.lastX:
		a.AimUpdate(x)
	}
	i.lastX = x
	i.hasLast = true
}
