package vmath

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the box midpoint
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether (px, py) lies strictly inside the box
func (r Rect) Contains(px, py float64) bool {
	return px > r.X && px < r.X+r.Width && py > r.Y && py < r.Y+r.Height
}

// Inflate grows the box by margin on all four sides
func (r Rect) Inflate(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// CircleHitsRect is the inflated AABB test for a circular projectile
// The circle center must fall strictly inside the box expanded by radius
func CircleHitsRect(cx, cy, radius float64, r Rect) bool {
	return r.Inflate(radius).Contains(cx, cy)
}
