// Package visibility detects changes in whether a display node is inside
// or outside the visible region of a scrollable surface, and synthesizes
// show, hide, showpart, and hidepart events for those transitions.
//
// The engine recomputes a node's viewport-relative bounding box on every
// load, resize, or scroll trigger, compares the result against the last
// remembered state, and dispatches a bubbling, non-cancelable event on the
// node when the state flips on the edge the event kind cares about:
//
//   - show: total visibility became true
//   - hide: partial visibility became false
//   - showpart: partial visibility became true
//   - hidepart: total visibility became false
//
// Two entry points are provided. The Observer wraps a surface's node
// subscription primitives so that subscribing to one of the four reserved
// event names transparently starts monitoring the target node:
//
//	obs := visibility.NewObserver(surface, visibility.Options{})
//	sub := obs.On(node, "show", func(ev *display.Event) {
//	    change := ev.Detail.(visibility.Change)
//	    fmt.Println("visible:", change.Visible)
//	})
//	defer sub.Cancel()
//
// The helper API attaches a handler directly, without synthetic events:
//
//	det := visibility.OnViewportPartially(node, func(visible bool, n *display.Node) bool {
//	    fmt.Println(n.Name, "partially visible:", visible)
//	    return false // keep watching
//	}, false)
//	defer det.Cancel()
//
// Only bounding-box containment relative to the viewport is considered.
// Visibility changes caused by tree mutation, style changes, or occlusion
// by other nodes are not detected.
package visibility
