package display

// Listener receives dispatched events.
type Listener func(*Event)

// Event is a notification dispatched on a Node.
//
// Bubbling events propagate from the target through its ancestors after the
// target's own listeners run. Detail carries an event-specific payload; the
// synthetic visibility events carry visibility.Change.
type Event struct {
	// Name is the event name. Matching against listeners is
	// case-insensitive; Name preserves the spelling used at dispatch.
	Name string
	// Target is the node the event was dispatched on.
	Target *Node
	// CurrentTarget is the node whose listeners are currently running.
	CurrentTarget *Node
	// Bubbles controls propagation to ancestor nodes.
	Bubbles bool
	// Cancelable reports whether listeners may suppress default behavior.
	// The library itself has no default behaviors; the flag is carried for
	// subscribers that layer their own.
	Cancelable bool
	// Detail is the event payload.
	Detail any

	stopped bool
}

// StopPropagation prevents the event from bubbling to further ancestors.
// Listeners already collected for the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation has been called.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}
