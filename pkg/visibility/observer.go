package visibility

import (
	"strings"

	"github.com/go-drift/inview/pkg/display"
)

// Observer layers visibility interception in front of a surface's node
// subscription primitives. On and Off delegate unconditionally to
// display.Node.On/Off, so ordinary events pass through unchanged; when the
// event name is one of the four reserved kinds the corresponding detector
// is enabled on first subscription and disabled once no listeners remain.
//
// This is the composition point for the synthetic-event API: it wraps the
// generic subscribe entry point instead of replacing it in place.
type Observer struct {
	surface  *display.Surface
	registry *Registry
}

// NewObserver creates an observer with its own registry for the surface.
func NewObserver(s *display.Surface, opts Options) *Observer {
	return &Observer{
		surface:  s,
		registry: NewRegistry(s, opts),
	}
}

// Registry returns the observer's registration table.
func (o *Observer) Registry() *Registry {
	return o.registry
}

// Subscription identifies one listener attached through an Observer.
type Subscription struct {
	observer  *Observer
	node      *display.Node
	name      string
	id        int
	kind      Kind
	synthetic bool
	canceled  bool
}

// On subscribes listener to events named event on n, exactly like
// display.Node.On, and additionally enables visibility detection when
// event names one of the reserved kinds (case-insensitive).
//
// A nil listener is silently skipped: nothing is registered and the
// returned subscription is inert.
func (o *Observer) On(n *display.Node, event string, listener display.Listener) *Subscription {
	sub := &Subscription{
		observer: o,
		node:     n,
		name:     strings.ToLower(event),
	}
	if n == nil || listener == nil {
		sub.canceled = true
		return sub
	}
	sub.id = n.On(event, listener)
	if kind, ok := KindFromEvent(event); ok {
		sub.kind = kind
		sub.synthetic = true
		o.registry.Enable(kind, n)
	}
	return sub
}

// Cancel removes the listener and, for reserved event names, releases its
// detector registration. Cancel is idempotent: calling it twice has no
// effect beyond the first call.
func (s *Subscription) Cancel() {
	if s == nil || s.canceled {
		return
	}
	s.canceled = true
	s.node.Off(s.name, s.id)
	if s.synthetic {
		s.observer.registry.Disable(s.kind, s.node)
	}
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	return s != nil && !s.canceled
}
