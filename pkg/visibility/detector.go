package visibility

import (
	"github.com/go-drift/inview/pkg/display"
	"github.com/go-drift/inview/pkg/errors"
)

// Handler reacts to a visibility transition. visible is the newly computed
// value. Returning true cancels further detection for this subscription.
type Handler func(visible bool, n *display.Node) bool

// Detector tracks one (node, mode) visibility state and invokes its
// handler only when a newly computed value differs from the remembered
// one. The state computed at construction is the baseline and never fires.
//
// The remembered state is the last computed value, not necessarily the
// true current one: staleness is bounded by trigger frequency and, when
// throttled, the cooldown window.
type Detector struct {
	node    *display.Node
	mode    Mode
	handler Handler
	once    bool

	visible bool
	check   func()
	unbind  func()
}

// newDetector computes the baseline state and wires the (optionally
// throttled) check function. It does not bind any triggers.
func newDetector(n *display.Node, mode Mode, handler Handler, once bool, maxChecksPerSecond int) *Detector {
	d := &Detector{
		node:    n,
		mode:    mode,
		handler: handler,
		once:    once,
		visible: mode.Visible(n),
	}
	d.check = Limit(d.Check, maxChecksPerSecond)
	return d
}

// Node returns the observed node.
func (d *Detector) Node() *display.Node {
	return d.node
}

// Mode returns the visibility mode driving this detector.
func (d *Detector) Mode() Mode {
	return d.mode
}

// Visible returns the last computed visibility state.
func (d *Detector) Visible() bool {
	return d.visible
}

// Check recomputes visibility and invokes the handler on a transition.
// The stored state is updated before the handler runs, so a panicking
// handler leaves the detector consistent for subsequent checks. A truthy
// handler return, or the one-shot flag, tears the detector down.
func (d *Detector) Check() {
	v := d.mode.Visible(d.node)
	if v == d.visible {
		return
	}
	d.visible = v
	cancel := d.invoke(v)
	if cancel || d.once {
		d.Cancel()
	}
}

// invoke runs the handler with per-detector panic isolation: a panic is
// reported to the global error handler and the current trigger dispatch
// continues with the remaining detectors.
func (d *Detector) invoke(visible bool) (cancel bool) {
	if d.handler == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "visibility.Detector.Check",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	return d.handler(visible, d.node)
}

// Cancel unbinds the detector from the surface triggers. It is safe to
// call repeatedly and on a detector that was never bound.
func (d *Detector) Cancel() {
	if d.unbind != nil {
		d.unbind()
	}
}
