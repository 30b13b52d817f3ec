package physics

import "math"

// Resolver detects and resolves body-vs-obstacle overlap for a single
// candidate position.
//
// The four directional tests run in the order top, bottom, left, right. They
// are independent: a corner overlap can correct both axes in one call, but
// each direction resolves against at most one obstacle (the first in level
// order). A second correction on the same axis needs another call.
//
// A test fires only when the body overlaps the obstacle on the orthogonal axis
// by more than EdgeInset on both sides, and the body's leading edge has passed
// the obstacle's near edge without crossing its midline. Resting exactly on a
// surface or grazing a corner therefore does not count.
type Resolver struct {
	world *World
	cfg   Config

	candidates []int
}

func NewResolver(world *World, cfg Config) *Resolver {
	return &Resolver{world: world, cfg: cfg}
}

// Config returns the thresholds in use.
func (r *Resolver) Config() Config { return r.cfg }

// Resolve moves b out of any obstacle it penetrates, reflects and damps its
// velocity, and reports what it hit.
func (r *Resolver) Resolve(b *Body) Contact {
	var c Contact
	if r == nil || r.world == nil || b == nil {
		return c
	}
	r.resolveTop(b, &c)
	r.resolveBottom(b, &c)
	r.resolveLeft(b, &c)
	r.resolveRight(b, &c)
	return c
}

// query refreshes the candidate list for the body's current position.
func (r *Resolver) query(b *Body) []int {
	bb := b.BB()
	inset := r.cfg.EdgeInset
	bb.L -= inset
	bb.B -= inset
	bb.R += inset
	bb.T += inset
	r.candidates = r.world.Query(bb, r.candidates[:0])
	return r.candidates
}

func (r *Resolver) overlapX(b *Body, o Obstacle) bool {
	return b.Right() > o.X+r.cfg.EdgeInset && b.X < o.Right()-r.cfg.EdgeInset
}

func (r *Resolver) overlapY(b *Body, o Obstacle) bool {
	return b.Bottom() > o.Y+r.cfg.EdgeInset && b.Y < o.Bottom()-r.cfg.EdgeInset
}

func (r *Resolver) resolveTop(b *Body, c *Contact) {
	for _, i := range r.query(b) {
		o := r.world.obstacles[i]
		if !r.overlapX(b, o) || !(o.Bottom() > b.Y && o.MidY() <= b.Y) {
			continue
		}
		b.Y = o.Bottom() + r.cfg.VerticalSkin
		bounceY(b)
		c.add(DirTop, i, o.IsGoal())
		return
	}
}

func (r *Resolver) resolveBottom(b *Body, c *Contact) {
	for _, i := range r.query(b) {
		o := r.world.obstacles[i]
		if !r.overlapX(b, o) || !(o.Y < b.Bottom() && o.MidY() >= b.Bottom()) {
			continue
		}
		b.Y = o.Y - b.Height - r.cfg.VerticalSkin
		bounceY(b)
		c.add(DirBottom, i, o.IsGoal())
		return
	}
}

func (r *Resolver) resolveLeft(b *Body, c *Contact) {
	for _, i := range r.query(b) {
		o := r.world.obstacles[i]
		if !r.overlapY(b, o) || !(o.Right() > b.X && o.MidX() <= b.X) {
			continue
		}
		b.X = o.Right() + r.cfg.HorizontalSkin
		r.bounceX(b, 1)
		c.add(DirLeft, i, o.IsGoal())
		return
	}
	if r.cfg.SideWalls && b.X <= 0 {
		b.X = r.cfg.HorizontalSkin
		r.bounceX(b, 1)
		c.add(DirLeft, BoundsIndex, false)
	}
}

func (r *Resolver) resolveRight(b *Body, c *Contact) {
	for _, i := range r.query(b) {
		o := r.world.obstacles[i]
		if !r.overlapY(b, o) || !(o.X < b.Right() && o.MidX() >= b.Right()) {
			continue
		}
		b.X = o.X - b.Width - r.cfg.HorizontalSkin
		r.bounceX(b, -1)
		c.add(DirRight, i, o.IsGoal())
		return
	}
	if r.cfg.SideWalls && b.Right() >= r.world.width {
		b.X = r.world.width - b.Width - r.cfg.HorizontalSkin
		r.bounceX(b, -1)
		c.add(DirRight, BoundsIndex, false)
	}
}

func bounceY(b *Body) {
	b.VY = -b.VY * b.Elasticity
	b.VX *= b.Friction
}

// bounceX reflects vx and caps it at BounceCapX in direction away (+1 moves
// right, -1 moves left).
func (r *Resolver) bounceX(b *Body, away float64) {
	b.VX = -b.VX * b.Elasticity
	if limit := r.cfg.BounceCapX; limit > 0 {
		if away > 0 {
			b.VX = math.Min(b.VX, limit)
		} else {
			b.VX = math.Max(b.VX, -limit)
		}
	}
	b.VY *= b.Friction
}
