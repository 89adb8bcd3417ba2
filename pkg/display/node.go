// Package display models the host surface the visibility engine observes:
// a tree of positioned nodes inside a scrollable viewport, with the generic
// event subscription and dispatch primitives the interception layer wraps.
package display

import (
	"strings"

	"github.com/go-drift/inview/pkg/geometry"
)

// Node is an addressable element in the display tree.
//
// A node's frame is expressed in content coordinates (the scrollable
// document space). The node is positioned on screen by the surface it is
// attached to; BoundingBox translates the frame into viewport-relative
// coordinates using the surface's current scroll offset.
type Node struct {
	// Name is a debug label. It has no behavioral meaning.
	Name string

	parent   *Node
	children []*Node
	frame    geometry.Rect
	surface  *Surface

	listeners      map[string][]listenerEntry
	nextListenerID int
}

type listenerEntry struct {
	id int
	fn Listener
}

// NewNode creates a detached node with a zero frame.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Parent returns the node's parent, or nil for a detached or root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children. The slice is shared; callers must
// not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// Surface returns the surface this node is attached to, or nil.
func (n *Node) Surface() *Surface {
	return n.surface
}

// Frame returns the node's frame in content coordinates.
func (n *Node) Frame() geometry.Rect {
	return n.frame
}

// SetFrame positions the node in content coordinates. Frame changes do not
// fire any signal: layout mutation is outside the trigger set (load, resize,
// scroll), so visibility is re-evaluated only on the next trigger.
func (n *Node) SetFrame(frame geometry.Rect) {
	n.frame = frame
}

// BoundingBox returns the node's frame in viewport-relative coordinates.
// The value is recomputed from the current scroll offset on every call.
func (n *Node) BoundingBox() geometry.Rect {
	if n.surface == nil {
		return n.frame
	}
	offset := n.surface.ScrollOffset()
	return n.frame.Translate(geometry.Offset{X: -offset.X, Y: -offset.Y})
}

// AppendChild attaches child as the last child of n. A child already
// attached elsewhere is detached first.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	child.setSurface(n.surface)
}

// RemoveChild detaches child from n. Removing a node that is not a child
// is a no-op.
func (n *Node) RemoveChild(child *Node) {
	for i, existing := range n.children {
		if existing == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			child.setSurface(nil)
			return
		}
	}
}

func (n *Node) setSurface(s *Surface) {
	if n.surface == s {
		return
	}
	n.surface = s
	for _, child := range n.children {
		child.setSurface(s)
	}
}

// On subscribes listener to events named event on this node. Event names
// are case-insensitive. The returned id identifies the subscription for
// Off. A nil listener is not registered and yields id 0.
func (n *Node) On(event string, listener Listener) int {
	if listener == nil {
		return 0
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	key := strings.ToLower(event)
	n.nextListenerID++
	id := n.nextListenerID
	n.listeners[key] = append(n.listeners[key], listenerEntry{id: id, fn: listener})
	return id
}

// Off removes the subscription identified by id for the given event name.
// Removing an unknown id is a no-op.
func (n *Node) Off(event string, id int) {
	key := strings.ToLower(event)
	entries := n.listeners[key]
	for i, e := range entries {
		if e.id == id {
			n.listeners[key] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[strings.ToLower(event)])
}

// Dispatch delivers ev synchronously: first to listeners on this node in
// subscription order, then, if ev.Bubbles, up through the ancestor chain.
func (n *Node) Dispatch(ev *Event) {
	if ev == nil {
		return
	}
	ev.Target = n
	for node := n; node != nil; node = node.parent {
		ev.CurrentTarget = node
		node.emit(ev)
		if !ev.Bubbles || ev.stopped {
			return
		}
	}
}

// emit runs this node's listeners for ev. The listener set is snapshotted
// before iteration so a listener adding or removing subscriptions cannot
// skip or double-invoke another listener; entries removed mid-iteration are
// not invoked.
func (n *Node) emit(ev *Event) {
	key := strings.ToLower(ev.Name)
	entries := n.listeners[key]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		if !n.hasListener(key, e.id) {
			continue
		}
		e.fn(ev)
	}
}

func (n *Node) hasListener(key string, id int) bool {
	for _, e := range n.listeners[key] {
		if e.id == id {
			return true
		}
	}
	return false
}
