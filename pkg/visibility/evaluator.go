package visibility

import "github.com/go-drift/inview/pkg/display"

// Mode selects which visibility predicate backs a detector.
type Mode int

const (
	// ModeTotal is satisfied only when the node's entire bounding box lies
	// within the viewport.
	ModeTotal Mode = iota
	// ModePartial is satisfied when any part of the node's bounding box
	// overlaps the viewport.
	ModePartial
)

func (m Mode) String() string {
	if m == ModePartial {
		return "partial"
	}
	return "total"
}

// Visible evaluates the mode's predicate against the node's current
// geometry.
func (m Mode) Visible(n *display.Node) bool {
	if m == ModePartial {
		return PartiallyVisible(n)
	}
	return TotallyVisible(n)
}

// TotallyVisible reports whether every edge of the node's bounding box lies
// within the viewport. Bounds are inclusive, so a box that exactly matches
// the viewport edges is totally visible, as is a degenerate (zero-extent)
// box sitting on an edge. The geometry is read fresh on every call.
//
// A node not attached to a surface is never visible.
func TotallyVisible(n *display.Node) bool {
	if n == nil || n.Surface() == nil {
		return false
	}
	return n.Surface().Viewport().ContainsRect(n.BoundingBox())
}

// PartiallyVisible reports whether the node's bounding box overlaps the
// viewport. The horizontal and vertical extents are tested independently
// with inclusive bounds; a box larger than the viewport that fully spans
// it is partially (not totally) visible.
//
// A node not attached to a surface is never visible.
func PartiallyVisible(n *display.Node) bool {
	if n == nil || n.Surface() == nil {
		return false
	}
	return n.Surface().Viewport().Intersects(n.BoundingBox())
}
