// Package vistest provides a deterministic harness for exercising the
// visibility engine without a real display: a surface with a fixed test
// viewport, node helpers, and an event recorder.
package vistest

import (
	"github.com/go-drift/inview/pkg/display"
	"github.com/go-drift/inview/pkg/geometry"
	"github.com/go-drift/inview/pkg/visibility"
)

const (
	// DefaultTestWidth is the default viewport width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height for the test surface.
	DefaultTestHeight = 600
)

// Harness assembles a surface and observer for scenario tests. Scroll and
// resize are driven directly on Surface; synthetic events land in Recorder.
type Harness struct {
	Surface  *display.Surface
	Observer *visibility.Observer
	Recorder *Recorder
}

// NewHarness creates a harness with the default 800x600 test viewport and
// an unthrottled observer.
func NewHarness() *Harness {
	return NewHarnessWithOptions(visibility.Options{})
}

// NewHarnessWithOptions creates a harness with the given observer options.
func NewHarnessWithOptions(opts visibility.Options) *Harness {
	s := display.NewSurface(geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})
	return &Harness{
		Surface:  s,
		Observer: visibility.NewObserver(s, opts),
		Recorder: &Recorder{},
	}
}

// AddNode attaches a new child of the root with the given frame in content
// coordinates.
func (h *Harness) AddNode(name string, frame geometry.Rect) *display.Node {
	n := display.NewNode(name)
	n.SetFrame(frame)
	h.Surface.Root().AppendChild(n)
	return n
}

// Subscribe attaches the recorder to the named event on n through the
// observer and returns the subscription.
func (h *Harness) Subscribe(n *display.Node, event string) *visibility.Subscription {
	return h.Observer.On(n, event, h.Recorder.Listener())
}

// SubscribeAll attaches the recorder to all four synthetic events on n.
func (h *Harness) SubscribeAll(n *display.Node) []*visibility.Subscription {
	subs := make([]*visibility.Subscription, 0, len(visibility.Kinds()))
	for _, kind := range visibility.Kinds() {
		subs = append(subs, h.Subscribe(n, kind.String()))
	}
	return subs
}

// Recorded is one captured synthetic event.
type Recorded struct {
	Name    string
	Node    *display.Node
	Visible bool
}

// Recorder accumulates synthetic events in dispatch order.
type Recorder struct {
	Events []Recorded
}

// Listener returns a display listener that records each event.
func (r *Recorder) Listener() display.Listener {
	return func(ev *display.Event) {
		rec := Recorded{Name: ev.Name, Node: ev.Target}
		if change, ok := ev.Detail.(visibility.Change); ok {
			rec.Visible = change.Visible
		}
		r.Events = append(r.Events, rec)
	}
}

// Count returns how many events with the given name were recorded.
func (r *Recorder) Count(name string) int {
	count := 0
	for _, ev := range r.Events {
		if ev.Name == name {
			count++
		}
	}
	return count
}

// Names returns the recorded event names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Events))
	for i, ev := range r.Events {
		names[i] = ev.Name
	}
	return names
}

// Reset clears the recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
