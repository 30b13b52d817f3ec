package physics

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
)

// World is the static level: tunable forces, horizontal bounds and the
// ordered obstacle list. Obstacles never change after NewWorld.
type World struct {
	gravity       float64
	airResistance float64

	width  float64
	height float64

	obstacles []Obstacle

	// space only indexes obstacle bounds; it is never stepped.
	space *cp.Space
}

// NewWorld validates the level geometry and builds the broadphase index.
// height may be 0 for levels without a vertical extent.
func NewWorld(width, height float64, obstacles []Obstacle) (*World, error) {
	if width <= 0 || height < 0 {
		return nil, fmt.Errorf("physics: world %gx%g: %w", width, height, ErrInvalidSize)
	}
	for i, o := range obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return nil, fmt.Errorf("physics: obstacle %d (%gx%g): %w", i, o.Width, o.Height, ErrInvalidSize)
		}
	}

	w := &World{
		gravity:       DefaultGravity,
		airResistance: DefaultAirResistance,
		width:         width,
		height:        height,
		obstacles:     append([]Obstacle(nil), obstacles...),
		space:         cp.NewSpace(),
	}
	w.buildStaticShapes()
	return w, nil
}

func (w *World) buildStaticShapes() {
	for i, o := range w.obstacles {
		shape := cp.NewBox2(w.space.StaticBody, o.BB(), 0)
		shape.UserData = i
		w.space.AddShape(shape)
	}
}

func (w *World) Gravity() float64       { return w.gravity }
func (w *World) AirResistance() float64 { return w.airResistance }
func (w *World) Width() float64         { return w.width }
func (w *World) Height() float64        { return w.height }

func (w *World) SetGravity(g float64)       { w.gravity = g }
func (w *World) SetAirResistance(a float64) { w.airResistance = a }

// Len returns the number of obstacles.
func (w *World) Len() int { return len(w.obstacles) }

// Obstacle returns the obstacle at index i in level order.
func (w *World) Obstacle(i int) Obstacle { return w.obstacles[i] }

// Obstacles returns a copy of the obstacle list in level order.
func (w *World) Obstacles() []Obstacle {
	return append([]Obstacle(nil), w.obstacles...)
}

// Query appends to dst the indices of obstacles whose bounds touch bb, in
// level order.
func (w *World) Query(bb cp.BB, dst []int) []int {
	if w == nil || len(w.obstacles) == 0 {
		return dst
	}
	start := len(dst)
	w.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if i, ok := shape.UserData.(int); ok {
			dst = append(dst, i)
		}
	}, nil)
	sort.Ints(dst[start:])
	return dst
}
