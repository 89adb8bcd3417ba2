package visibility

import "github.com/go-drift/inview/pkg/display"

// bindTriggers registers fn with the surface's load, resize, and scroll
// signals: the three things that can change what is visible in this model.
// The returned unbind removes all three bindings and is idempotent —
// unbinding a detector that is no longer bound is a no-op.
func bindTriggers(s *display.Surface, fn func()) func() {
	removeLoad := s.OnLoad(fn)
	removeResize := s.OnResize(fn)
	removeScroll := s.OnScroll(fn)
	unbound := false
	return func() {
		if unbound {
			return
		}
		unbound = true
		removeLoad()
		removeResize()
		removeScroll()
	}
}
