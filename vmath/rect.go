package vmath

// Rect is a center-relative axis-aligned box
// X, Y offset the center from the owner's position; W, H are full extents
type Rect struct {
	X, Y, W, H float64
}

// Box returns a rect centered on its owner
func Box(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// Left returns the world-space left edge for an owner at pos
func (r Rect) Left(pos Vector) float64 { return pos.X + r.X - r.W/2 }

// Right returns the world-space right edge for an owner at pos
func (r Rect) Right(pos Vector) float64 { return pos.X + r.X + r.W/2 }

// Top returns the world-space top edge for an owner at pos
func (r Rect) Top(pos Vector) float64 { return pos.Y + r.Y - r.H/2 }

// Bottom returns the world-space bottom edge for an owner at pos
func (r Rect) Bottom(pos Vector) float64 { return pos.Y + r.Y + r.H/2 }

// Center returns the world-space center for an owner at pos
func (r Rect) Center(pos Vector) Vector {
	return Vec(pos.X+r.X, pos.Y+r.Y)
}

// World returns the rect translated into world space with a zero offset
func (r Rect) World(pos Vector) Rect {
	return Rect{X: pos.X + r.X, Y: pos.Y + r.Y, W: r.W, H: r.H}
}

// Overlap tests r shifted by pos against o shifted by opos
// Touching edges do not overlap
func (r Rect) Overlap(pos Vector, o Rect, opos Vector) bool {
	return r.Left(pos) < o.Right(opos) && r.Right(pos) > o.Left(opos) &&
		r.Top(pos) < o.Bottom(opos) && r.Bottom(pos) > o.Top(opos)
}

// Contains reports whether point p lies inside r shifted by pos
func (r Rect) Contains(pos Vector, p Vector) bool {
	return p.X >= r.Left(pos) && p.X < r.Right(pos) && p.Y >= r.Top(pos) && p.Y < r.Bottom(pos)
}

// FromCorner builds a world rect from a top-left corner and extents
func FromCorner(x, y, w, h float64) Rect {
	return Rect{X: x + w/2, Y: y + h/2, W: w, H: h}
}

// SpanOverlap reports whether open intervals (a0,a1) and (b0,b1) intersect
func SpanOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && a1 > b0
}
