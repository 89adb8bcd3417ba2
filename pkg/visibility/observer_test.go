package visibility_test

import (
	"testing"

	"github.com/go-drift/inview/pkg/display"
	"github.com/go-drift/inview/pkg/geometry"
	"github.com/go-drift/inview/pkg/visibility"
	"github.com/go-drift/inview/pkg/vistest"
)

func TestPartialToTotalFiresExactlyOneShow(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	// Box 500..700 against a 600-high viewport: partially but not
	// totally visible.
	n := h.AddNode("n", geometry.RectFromLTWH(0, 500, 100, 200))
	h.SubscribeAll(n)

	h.Surface.ScrollTo(geometry.Offset{Y: 150}) // box 350..550: fully contained

	if got := h.Recorder.Names(); len(got) != 1 || got[0] != "show" {
		t.Fatalf("events = %v, want exactly [show]", got)
	}
	if !h.Recorder.Events[0].Visible {
		t.Fatal("show event must carry visible=true")
	}
}

func TestHideSubscriberSilentOnEntry(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	// Starts fully outside the viewport.
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))
	h.Subscribe(n, "hide")

	// Entering partial view is not a hide edge: baseline was already
	// not-partially-visible, and hide fires on the exit edge only.
	h.Surface.ScrollTo(geometry.Offset{Y: 950})
	if got := h.Recorder.Count("hide"); got != 0 {
		t.Fatalf("hide fired %d times on entry, want 0", got)
	}

	// Leaving to fully hidden is the edge.
	h.Surface.ScrollTo(geometry.Offset{Y: 0})
	if got := h.Recorder.Count("hide"); got != 1 {
		t.Fatalf("hide fired %d times on exit, want 1", got)
	}
	if h.Recorder.Events[0].Visible {
		t.Fatal("hide event must carry visible=false")
	}
}

func TestTwoSubscriptionsShareOneBinding(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))

	first := h.Subscribe(n, "show")
	second := h.Subscribe(n, "show")

	if got := h.Surface.SignalListeners(); got != 3 {
		t.Fatalf("SignalListeners = %d, want 3 (one detector for both subscriptions)", got)
	}

	first.Cancel()
	if !second.Active() {
		t.Fatal("canceling one subscription deactivated the other")
	}
	if got := h.Surface.SignalListeners(); got != 3 {
		t.Fatalf("SignalListeners = %d after one cancel, want 3", got)
	}

	h.Surface.ScrollTo(geometry.Offset{Y: 700})
	if got := h.Recorder.Count("show"); got != 1 {
		t.Fatalf("remaining subscription saw %d show events, want 1", got)
	}

	second.Cancel()
	if got := h.Surface.SignalListeners(); got != 0 {
		t.Fatalf("SignalListeners = %d after both cancels, want 0", got)
	}
}

func TestSubscriptionCancelIdempotent(t *testing.T) {
	h := vistest.NewHarness()
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))

	sub := h.Subscribe(n, "show")
	other := h.Subscribe(n, "show")

	sub.Cancel()
	sub.Cancel()

	if got := h.Observer.Registry().Count(visibility.Show, n); got != 1 {
		t.Fatalf("count = %d after double cancel of one subscription, want 1", got)
	}
	if !other.Active() {
		t.Fatal("double cancel drained another subscription's registration")
	}
}

func TestReservedNamesAreCaseInsensitive(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))

	sub := h.Observer.On(n, "ShowPart", h.Recorder.Listener())
	if !h.Observer.Registry().Bound(visibility.ShowPart, n) {
		t.Fatal("mixed-case reserved name did not enable detection")
	}

	h.Surface.ScrollTo(geometry.Offset{Y: 950})
	if got := h.Recorder.Count("showpart"); got != 1 {
		t.Fatalf("showpart fired %d times, want 1", got)
	}
	sub.Cancel()
}

func TestOrdinaryEventsPassThrough(t *testing.T) {
	h := vistest.NewHarness()
	n := h.AddNode("n", geometry.RectFromLTWH(0, 0, 100, 100))

	taps := 0
	sub := h.Observer.On(n, "tap", func(*display.Event) { taps++ })

	for _, kind := range visibility.Kinds() {
		if h.Observer.Registry().Bound(kind, n) {
			t.Fatalf("ordinary event name enabled the %s detector", kind)
		}
	}
	if h.Surface.SignalListeners() != 0 {
		t.Fatal("ordinary subscription bound surface triggers")
	}

	n.Dispatch(&display.Event{Name: "tap"})
	if taps != 1 {
		t.Fatalf("tap delivered %d times, want 1", taps)
	}

	sub.Cancel()
	n.Dispatch(&display.Event{Name: "tap"})
	if taps != 1 {
		t.Fatal("canceled ordinary subscription still receives events")
	}
}

func TestNilListenerSkipped(t *testing.T) {
	h := vistest.NewHarness()
	n := h.AddNode("n", geometry.RectFromLTWH(0, 0, 100, 100))

	sub := h.Observer.On(n, "show", nil)
	if sub.Active() {
		t.Fatal("nil listener produced an active subscription")
	}
	if h.Observer.Registry().Count(visibility.Show, n) != 0 {
		t.Fatal("nil listener was counted in the registry")
	}
	sub.Cancel() // must remain a no-op
	if n.ListenerCount("show") != 0 {
		t.Fatal("nil listener was registered on the node")
	}
}

func TestSyntheticEventsBubble(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))

	rootEvents := 0
	h.Surface.Root().On("showpart", func(ev *display.Event) {
		rootEvents++
		if ev.Target != n {
			t.Errorf("bubbled event target = %v, want the observed node", ev.Target)
		}
		if ev.Cancelable {
			t.Error("synthetic events must not be cancelable")
		}
	})
	h.Subscribe(n, "showpart")

	h.Surface.ScrollTo(geometry.Offset{Y: 950})
	if rootEvents != 1 {
		t.Fatalf("root saw %d bubbled events, want 1", rootEvents)
	}
}

func TestReentrantCancelFromListener(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))

	var self *visibility.Subscription
	selfCalls := 0
	self = h.Observer.On(n, "showpart", func(*display.Event) {
		selfCalls++
		self.Cancel()
	})
	otherCalls := 0
	h.Observer.On(n, "showpart", func(*display.Event) { otherCalls++ })

	h.Surface.ScrollTo(geometry.Offset{Y: 950}) // into partial view
	h.Surface.ScrollTo(geometry.Offset{Y: 0})   // out
	h.Surface.ScrollTo(geometry.Offset{Y: 950}) // in again

	if selfCalls != 1 {
		t.Fatalf("self-canceling listener ran %d times, want 1", selfCalls)
	}
	if otherCalls != 2 {
		t.Fatalf("surviving listener ran %d times, want 2", otherCalls)
	}
}

func TestOneShotHelper(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	n := h.AddNode("n", geometry.RectFromLTWH(0, 1000, 100, 100))

	calls := 0
	d := visibility.OnViewportPartially(n, func(visible bool, _ *display.Node) bool {
		calls++
		if !visible {
			t.Error("first flip should be into view")
		}
		return false
	}, true)
	if d == nil {
		t.Fatal("OnViewportPartially returned nil for an attached node")
	}

	h.Surface.ScrollTo(geometry.Offset{Y: 950}) // flip 1: into view
	h.Surface.ScrollTo(geometry.Offset{Y: 0})   // flip 2: out again

	if calls != 1 {
		t.Fatalf("one-shot handler ran %d times, want 1", calls)
	}
}

func TestTotallyHelperTracksContainmentEdge(t *testing.T) {
	h := vistest.NewHarness()
	h.Surface.SetContentSize(geometry.Size{Width: 800, Height: 2400})
	// Partially visible at baseline.
	n := h.AddNode("n", geometry.RectFromLTWH(0, 500, 100, 200))

	var seen []bool
	d := visibility.OnViewportTotally(n, func(visible bool, _ *display.Node) bool {
		seen = append(seen, visible)
		return false
	}, false)
	defer d.Cancel()

	h.Surface.ScrollTo(geometry.Offset{Y: 150}) // fully contained
	h.Surface.ScrollTo(geometry.Offset{Y: 0})   // cropped again

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("transitions = %v, want [true false]", seen)
	}
}

func TestHelperRequiresAttachedNode(t *testing.T) {
	loose := display.NewNode("loose")
	if d := visibility.OnViewportTotally(loose, nil, false); d != nil {
		t.Fatal("detached node should not produce a detector")
	}
}
