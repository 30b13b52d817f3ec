package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// ErrInvalidSize is returned when a body, obstacle or world has a
// non-positive dimension.
var ErrInvalidSize = errors.New("physics: invalid size")

// Facing is the side the body was aimed from.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Body is the moving rectangle. Position is the top-left corner with y
// growing downward.
type Body struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64

	Elasticity float64
	Friction   float64
	Facing     Facing
}

// NewBody creates a body at rest with the default elasticity and friction.
func NewBody(x, y, width, height float64) (*Body, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("physics: body %gx%g: %w", width, height, ErrInvalidSize)
	}
	return &Body{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Elasticity: DefaultElasticity,
		Friction:   DefaultFriction,
		Facing:     FacingRight,
	}, nil
}

func (b *Body) Right() float64   { return b.X + b.Width }
func (b *Body) Bottom() float64  { return b.Y + b.Height }
func (b *Body) CenterX() float64 { return b.X + b.Width/2 }
func (b *Body) CenterY() float64 { return b.Y + b.Height/2 }

// BB returns the body's bounds as a chipmunk box (B is the top edge in
// screen space).
func (b *Body) BB() cp.BB {
	return cp.BB{L: b.X, B: b.Y, R: b.X + b.Width, T: b.Y + b.Height}
}

// Place moves the body and clears its velocity.
func (b *Body) Place(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
}
