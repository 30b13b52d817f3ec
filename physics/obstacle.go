package physics

import (
	"strings"

	"github.com/jakecoffman/cp"
)

// Tag classifies an obstacle.
type Tag uint8

const (
	TagSolid Tag = iota
	// TagGoal obstacles collide like solids and also end the level.
	TagGoal
)

func (t Tag) String() string {
	if t == TagGoal {
		return "goal"
	}
	return "solid"
}

// ParseTag maps a level tag string to a Tag. Empty and unknown values are solid.
func ParseTag(s string) Tag {
	if strings.EqualFold(strings.TrimSpace(s), "goal") {
		return TagGoal
	}
	return TagSolid
}

// Obstacle is a static axis-aligned wall.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Tag           Tag
}

func (o Obstacle) Right() float64  { return o.X + o.Width }
func (o Obstacle) Bottom() float64 { return o.Y + o.Height }
func (o Obstacle) MidX() float64   { return o.X + o.Width/2 }
func (o Obstacle) MidY() float64   { return o.Y + o.Height/2 }
func (o Obstacle) IsGoal() bool    { return o.Tag == TagGoal }

func (o Obstacle) BB() cp.BB {
	return cp.BB{L: o.X, B: o.Y, R: o.X + o.Width, T: o.Y + o.Height}
}
