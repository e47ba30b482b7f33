package gamemath

// Rect is an axis-aligned box anchored at its bottom-left corner (y-up).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports a strict intersection. Rectangles that only share an edge
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Top() && r.Top() > o.Y
}

// OverlapsX reports a strict intersection of the horizontal extents.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X
}

// Union returns the smallest rect containing both. A zero rect is treated as
// empty.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX, maxY := max(r.Right(), o.Right()), max(r.Top(), o.Top())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
