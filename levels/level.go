package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/blocklaunch/physics"
)

// Canvas size and positions used by levels stored in the bare-array format.
const (
	LegacyWidth  = 800
	LegacyHeight = 600
)

var (
	legacySpawn   = Point{X: 50, Y: -1400}
	legacyRespawn = Point{X: 590, Y: 550}
)

// goalImage marks a goal wall in legacy levels that carry no tag.
const goalImage = "tile_234"

// ErrInvalidLevel is returned for structurally broken level data.
var ErrInvalidLevel = errors.New("invalid level")

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wall is one obstacle record. Image is kept for levels exported by the old
// map tool, which only identified the goal by its tile image.
type Wall struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Tag    string  `json:"tag,omitempty"`
	Image  string  `json:"imageSrc,omitempty"`
}

// Level is the on-disk level description.
type Level struct {
	Name   string  `json:"name,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Spawn  Point   `json:"spawn"`
	// Respawn is where the body goes after reaching a goal. Defaults to Spawn.
	Respawn *Point `json:"respawn,omitempty"`
	Walls   []Wall `json:"walls"`
}

// Parse decodes a level. Both the object format and the legacy bare array of
// walls are accepted.
func Parse(data []byte) (*Level, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLevel)
	}

	var lvl Level
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &lvl.Walls); err != nil {
			return nil, fmt.Errorf("unmarshal legacy walls: %w", err)
		}
		lvl.Width = LegacyWidth
		lvl.Height = LegacyHeight
		lvl.Spawn = legacySpawn
		respawn := legacyRespawn
		lvl.Respawn = &respawn
	} else if err := json.Unmarshal(trimmed, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}

	if lvl.Width <= 0 {
		return nil, fmt.Errorf("%w: width %g", ErrInvalidLevel, lvl.Width)
	}
	for i, w := range lvl.Walls {
		if w.Width <= 0 || w.Height <= 0 {
			return nil, fmt.Errorf("%w: wall %d is %gx%g", ErrInvalidLevel, i, w.Width, w.Height)
		}
	}
	return &lvl, nil
}

// TagOf resolves the physics tag of a wall.
func (w Wall) TagOf() physics.Tag {
	if w.Tag != "" {
		return physics.ParseTag(w.Tag)
	}
	if strings.Contains(w.Image, goalImage) {
		return physics.TagGoal
	}
	return physics.TagSolid
}

// Obstacles converts the walls to physics obstacles, keeping level order.
func (l *Level) Obstacles() []physics.Obstacle {
	out := make([]physics.Obstacle, 0, len(l.Walls))
	for _, w := range l.Walls {
		out = append(out, physics.Obstacle{
			X:      w.X,
			Y:      w.Y,
			Width:  w.Width,
			Height: w.Height,
			Tag:    w.TagOf(),
		})
	}
	return out
}

// World builds the physics world for the level.
func (l *Level) World() (*physics.World, error) {
	w, err := physics.NewWorld(l.Width, l.Height, l.Obstacles())
	if err != nil {
		return nil, fmt.Errorf("levels: build world: %w", err)
	}
	return w, nil
}

// RespawnPoint returns where the body restarts after a goal.
func (l *Level) RespawnPoint() Point {
	if l.Respawn != nil {
		return *l.Respawn
	}
	return l.Spawn
}

// Goals returns the number of goal walls.
func (l *Level) Goals() int {
	n := 0
	for _, w := range l.Walls {
		if w.TagOf() == physics.TagGoal {
			n++
		}
	}
	return n
}
