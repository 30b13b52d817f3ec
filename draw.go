package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/blocklaunch/physics"
	"github.com/milk9111/blocklaunch/sim"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = colornames.Midnightblue
	wallColor       = colornames.Lightgrey
	goalColor       = colornames.Gold
	blockColor      = colornames.Crimson
	aimColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
)

func drawWorld(screen *ebiten.Image, s *sim.Simulation) {
	screen.Fill(backgroundColor)
	cam := s.Camera()
	viewH := cam.ViewHeight()
	for _, o := range s.World().Obstacles() {
		y := cam.ToScreen(o.Y)
		if y > viewH || y+o.Height < 0 {
			continue
		}
		clr := wallColor
		if o.IsGoal() {
			clr = goalColor
		}
		vector.DrawFilledRect(screen, float32(o.X), float32(y), float32(o.Width), float32(o.Height), clr, false)
	}
}

func drawBody(screen *ebiten.Image, s *sim.Simulation) {
	b := s.Body()
	y := s.Camera().ToScreen(b.Y)
	vector.DrawFilledRect(screen, float32(b.X), float32(y), float32(b.Width), float32(b.Height), blockColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(y), float32(b.Width), float32(b.Height), 1, colornames.Black, false)
}

// drawIndicator shows the facing anchor and, while aiming, the drag line.
func drawIndicator(screen *ebiten.Image, s *sim.Simulation, pointerX float64) {
	b := s.Body()
	cy := float32(s.Camera().ToScreen(b.CenterY()))
	ax := float32(b.Right() + 6)
	if b.Facing == physics.FacingLeft {
		ax = float32(b.X - 6)
	}
	vector.DrawFilledCircle(screen, ax, cy, 3, aimColor, true)

	if s.State() != sim.StateAiming {
		return
	}
	sx := float32(s.AimStartX())
	vector.StrokeLine(screen, sx, cy, float32(pointerX), cy, 2, aimColor, true)
}
