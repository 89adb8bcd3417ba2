package display

import "github.com/go-drift/inview/pkg/geometry"

// Surface is a scrollable display surface: a viewport over a content area
// holding a node tree, plus the three global triggers (load, resize,
// scroll) that can change what is visible.
//
// All methods must be called from a single goroutine; the model is
// cooperative and synchronous, mirroring an event-loop environment.
type Surface struct {
	root       *Node
	viewport   geometry.Size
	content    geometry.Size
	hasContent bool
	x, y       scrollAxis
	loaded     bool

	load   signal
	resize signal
	scroll signal
}

// NewSurface creates a surface with the given viewport size and an empty
// root node attached to it.
func NewSurface(viewport geometry.Size) *Surface {
	s := &Surface{viewport: viewport}
	s.root = NewNode("root")
	s.root.surface = s
	return s
}

// Root returns the root node of the display tree.
func (s *Surface) Root() *Node {
	return s.root
}

// ViewportSize returns the current viewport dimensions.
func (s *Surface) ViewportSize() geometry.Size {
	return s.viewport
}

// Viewport returns the viewport rectangle in viewport-relative
// coordinates, anchored at the origin.
func (s *Surface) Viewport() geometry.Rect {
	return geometry.RectFromSize(s.viewport)
}

// SetViewportSize resizes the viewport. A real size change re-clamps the
// scroll offset and fires the resize signal (and the scroll signal, when
// the clamp moved the offset).
func (s *Surface) SetViewportSize(size geometry.Size) {
	if size == s.viewport {
		return
	}
	s.viewport = size
	moved := s.updateExtents()
	s.resize.emit()
	if moved {
		s.scroll.emit()
	}
}

// ContentSize returns the scrollable content dimensions. When no explicit
// content size has been set, it derives the extents from the node tree,
// never smaller than the viewport.
func (s *Surface) ContentSize() geometry.Size {
	if s.hasContent {
		return s.content
	}
	size := s.viewport
	maxRight, maxBottom := treeExtents(s.root)
	if maxRight > size.Width {
		size.Width = maxRight
	}
	if maxBottom > size.Height {
		size.Height = maxBottom
	}
	return size
}

// SetContentSize fixes the scrollable content dimensions. Content changes
// are not a trigger: no signal fires, but the scroll offset is re-clamped.
func (s *Surface) SetContentSize(size geometry.Size) {
	s.content = size
	s.hasContent = true
	s.updateExtents()
}

func treeExtents(n *Node) (maxRight, maxBottom float64) {
	for _, child := range n.children {
		frame := child.Frame()
		if frame.Right > maxRight {
			maxRight = frame.Right
		}
		if frame.Bottom > maxBottom {
			maxBottom = frame.Bottom
		}
		r, b := treeExtents(child)
		if r > maxRight {
			maxRight = r
		}
		if b > maxBottom {
			maxBottom = b
		}
	}
	return maxRight, maxBottom
}

// updateExtents recomputes both axes' scroll ranges from the content and
// viewport sizes. It reports whether re-clamping moved the offset.
func (s *Surface) updateExtents() bool {
	content := s.ContentSize()
	movedX := s.x.setExtents(0, content.Width-s.viewport.Width)
	movedY := s.y.setExtents(0, content.Height-s.viewport.Height)
	return movedX || movedY
}

// ScrollOffset returns the current scroll offset.
func (s *Surface) ScrollOffset() geometry.Offset {
	return geometry.Offset{X: s.x.offset, Y: s.y.offset}
}

// ScrollTo moves the scroll offset to the given position, clamped to the
// content extents. The scroll signal fires only when the clamped offset
// actually changed.
func (s *Surface) ScrollTo(offset geometry.Offset) {
	s.updateExtents()
	movedX := s.x.setOffset(offset.X)
	movedY := s.y.setOffset(offset.Y)
	if movedX || movedY {
		s.scroll.emit()
	}
}

// ScrollBy moves the scroll offset by the given delta.
func (s *Surface) ScrollBy(delta geometry.Offset) {
	s.ScrollTo(geometry.Offset{X: s.x.offset + delta.X, Y: s.y.offset + delta.Y})
}

// Load marks the surface loaded and fires the load signal. Subsequent
// calls are no-ops: load fires at most once per surface.
func (s *Surface) Load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.load.emit()
}

// Loaded reports whether Load has fired.
func (s *Surface) Loaded() bool {
	return s.loaded
}

// OnLoad registers fn with the load signal and returns its remove func.
func (s *Surface) OnLoad(fn func()) func() {
	return s.load.add(fn)
}

// OnResize registers fn with the resize signal and returns its remove func.
func (s *Surface) OnResize(fn func()) func() {
	return s.resize.add(fn)
}

// OnScroll registers fn with the scroll signal and returns its remove func.
func (s *Surface) OnScroll(fn func()) func() {
	return s.scroll.add(fn)
}

// SignalListeners returns the total number of bindings across the load,
// resize, and scroll signals. Intended for tests and diagnostics.
func (s *Surface) SignalListeners() int {
	return s.load.len() + s.resize.len() + s.scroll.len()
}
