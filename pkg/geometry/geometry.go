// Package geometry provides the 2D primitives used to describe element
// frames and viewports.
package geometry

// Offset represents a 2D point or translation in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromSize constructs a Rect anchored at the origin.
func RectFromSize(size Size) Rect {
	return Rect{Right: size.Width, Bottom: size.Height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// IsEmpty reports whether the rectangle has negative extent on either axis.
// Zero-extent rectangles are not empty: a degenerate frame still has a
// position that can be inside or outside a viewport.
func (r Rect) IsEmpty() bool {
	return r.Right < r.Left || r.Bottom < r.Top
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(offset Offset) Rect {
	return Rect{
		Left:   r.Left + offset.X,
		Top:    r.Top + offset.Y,
		Right:  r.Right + offset.X,
		Bottom: r.Bottom + offset.Y,
	}
}

// ContainsRect reports whether other lies entirely within r.
// Bounds are inclusive: a rectangle that exactly matches r is contained.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left >= r.Left &&
		other.Right <= r.Right &&
		other.Top >= r.Top &&
		other.Bottom <= r.Bottom
}

// Intersects reports whether r and other overlap. Each axis is tested
// independently and bounds are inclusive, so rectangles that merely touch
// an edge still intersect.
func (r Rect) Intersects(other Rect) bool {
	return other.Left <= r.Right &&
		other.Right >= r.Left &&
		other.Top <= r.Bottom &&
		other.Bottom >= r.Top
}
