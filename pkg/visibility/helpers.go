package visibility

import "github.com/go-drift/inview/pkg/display"

// OnViewportTotally invokes handler whenever n's total visibility changes.
// The state at call time is the baseline and does not fire. If once is
// true the detector tears itself down after the first transition; a truthy
// handler return does the same. Cancel on the returned detector stops
// detection at any point.
//
// The node must be attached to a surface; otherwise nil is returned and
// nothing is bound.
func OnViewportTotally(n *display.Node, handler Handler, once bool) *Detector {
	return watch(n, ModeTotal, handler, once)
}

// OnViewportPartially is OnViewportTotally for partial visibility.
func OnViewportPartially(n *display.Node, handler Handler, once bool) *Detector {
	return watch(n, ModePartial, handler, once)
}

func watch(n *display.Node, mode Mode, handler Handler, once bool) *Detector {
	if n == nil || n.Surface() == nil {
		return nil
	}
	d := newDetector(n, mode, handler, once, 0)
	d.unbind = bindTriggers(n.Surface(), d.check)
	return d
}
