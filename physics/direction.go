package physics

// Direction is the side of the body that touched an obstacle.
type Direction uint8

const (
	DirTop Direction = iota
	DirBottom
	DirLeft
	DirRight
)

// resolveOrder is the fixed evaluation order of the directional tests.
var resolveOrder = [...]Direction{DirTop, DirBottom, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionSet is a bitmask of directions.
type DirectionSet uint8

func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }

func (s DirectionSet) Empty() bool { return s == 0 }

func (s DirectionSet) with(d Direction) DirectionSet { return s | 1<<d }

func (s DirectionSet) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for _, d := range resolveOrder {
		if !s.Has(d) {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += d.String()
	}
	return out
}

// BoundsIndex marks a contact with the world's side walls instead of an
// obstacle.
const BoundsIndex = -1

// Contact is the outcome of one Resolve call.
type Contact struct {
	Dirs DirectionSet
	// Goal is set when any resolved obstacle is tagged as a goal.
	Goal bool

	obstacles [4]int
}

func (c Contact) Collided() bool { return !c.Dirs.Empty() }

// Obstacle returns the obstacle index resolved in direction d, or
// BoundsIndex for a side wall. ok is false when d did not fire.
func (c Contact) Obstacle(d Direction) (int, bool) {
	if !c.Dirs.Has(d) {
		return 0, false
	}
	return c.obstacles[d], true
}

func (c *Contact) add(d Direction, idx int, goal bool) {
	c.Dirs = c.Dirs.with(d)
	c.obstacles[d] = idx
	if goal {
		c.Goal = true
	}
}
