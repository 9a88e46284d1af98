package geometry

import (
	"fmt"
	"math"
)

// Point is an integer position on the canvas.
type Point struct {
	X, Y int
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String formats the rectangle as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// R is shorthand for constructing a Rect.
func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{r.Left(), r.Top()} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{r.Right(), r.Top()} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{r.Left(), r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Valid reports whether the rectangle has non-negative dimensions.
func (r Rect) Valid() bool { return r.Width >= 0 && r.Height >= 0 }

// Area returns Width*Height.
func (r Rect) Area() int { return r.Width * r.Height }

// MoveTo returns r with its top-left corner at p.
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Midpoint returns the midpoint of the requested side. SideNone yields the
// top-left corner.
func (r Rect) Midpoint(side Side) Point {
	switch side {
	case SideTop:
		return Point{r.Left() + r.Width/2, r.Top()}
	case SideBottom:
		return Point{r.Left() + r.Width/2, r.Bottom()}
	case SideLeft:
		return Point{r.Left(), r.Top() + r.Height/2}
	case SideRight:
		return Point{r.Right(), r.Top() + r.Height/2}
	default:
		return r.TopLeft()
	}
}

// Contains reports whether inner lies entirely within r, edges inclusive.
func (r Rect) Contains(inner Rect) bool {
	return inner.Left() >= r.Left() && inner.Top() >= r.Top() &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether p lies within r, edges inclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether the closed rectangles overlap on both axes.
// Rectangles sharing only a border intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() <= o.Right() && o.Left() <= r.Right() &&
		r.Top() <= o.Bottom() && o.Top() <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	left := min(r.Left(), o.Left())
	top := min(r.Top(), o.Top())
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Expand grows r by margin on every side.
func (r Rect) Expand(margin int) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, Width: r.Width + 2*margin, Height: r.Height + 2*margin}
}

// LeftOf reports whether a lies entirely to the left of b (touching allowed).
func LeftOf(a, b Rect) bool { return a.Right() <= b.Left() }

// RightOf reports whether a lies entirely to the right of b.
func RightOf(a, b Rect) bool { return a.Left() >= b.Right() }

// Above reports whether a lies entirely above b.
func Above(a, b Rect) bool { return a.Bottom() <= b.Top() }

// Below reports whether a lies entirely below b.
func Below(a, b Rect) bool { return a.Top() >= b.Bottom() }

// Touching reports whether a side of a coincides exactly with the facing
// side of b while the two rectangles overlap by a positive length along that
// side. The returned side belongs to a; b touches with its opposite.
func Touching(a, b Rect) (Side, bool) {
	overlapX := a.Left() < b.Right() && b.Left() < a.Right()
	overlapY := a.Top() < b.Bottom() && b.Top() < a.Bottom()

	switch {
	case a.Bottom() == b.Top() && overlapX:
		return SideBottom, true
	case a.Top() == b.Bottom() && overlapX:
		return SideTop, true
	case a.Right() == b.Left() && overlapY:
		return SideRight, true
	case a.Left() == b.Right() && overlapY:
		return SideLeft, true
	}
	return SideNone, false
}
