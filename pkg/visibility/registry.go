package visibility

import "github.com/go-drift/inview/pkg/display"

// Change is the payload carried by synthetic visibility events.
type Change struct {
	// Visible is the newly computed visibility for the kind's mode.
	Visible bool
}

// Options configures a Registry.
type Options struct {
	// MaxChecksPerSecond throttles detector recomputation during rapid
	// scroll or resize bursts. Zero or negative means unthrottled.
	MaxChecksPerSecond int
}

// registration counts active subscriptions for one (kind, node) pair and
// holds the detector currently bound to the surface triggers for it.
type registration struct {
	count    int
	detector *Detector
}

// Registry owns the counted per-kind subscription tables. The surface
// triggers are bound for a (kind, node) pair exactly while its count is
// above zero, regardless of how many subscriptions share the pair.
//
// A Registry is explicitly constructed and owned; nothing in the package
// holds a global instance.
type Registry struct {
	surface *display.Surface
	opts    Options
	tables  [numKinds]map[*display.Node]*registration
}

// NewRegistry creates a registry observing nodes on the given surface.
func NewRegistry(s *display.Surface, opts Options) *Registry {
	r := &Registry{surface: s, opts: opts}
	for k := range r.tables {
		r.tables[k] = make(map[*display.Node]*registration)
	}
	return r
}

// Surface returns the surface this registry observes.
func (r *Registry) Surface() *display.Surface {
	return r.surface
}

// Enable records one subscription of kind on n. The first subscription for
// the pair constructs a transition detector for the kind's mode and binds
// it to the surface triggers; later ones only increment the count.
func (r *Registry) Enable(kind Kind, n *display.Node) {
	if n == nil || !kind.valid() {
		return
	}
	table := r.tables[kind]
	reg := table[n]
	if reg == nil {
		reg = &registration{}
		table[n] = reg
	}
	reg.count++
	if reg.count > 1 {
		return
	}
	d := newDetector(n, kind.mode(), raise(kind), false, r.opts.MaxChecksPerSecond)
	d.unbind = bindTriggers(r.surface, d.check)
	reg.detector = d
}

// Disable removes one subscription of kind on n. When the count reaches
// zero the detector is unbound and discarded. Disabling with no prior
// Enable is a safe no-op; counts never go negative.
func (r *Registry) Disable(kind Kind, n *display.Node) {
	if n == nil || !kind.valid() {
		return
	}
	table := r.tables[kind]
	reg := table[n]
	if reg == nil {
		return
	}
	reg.count--
	if reg.count > 0 {
		return
	}
	delete(table, n)
	if reg.detector != nil {
		reg.detector.Cancel()
	}
}

// Count returns the number of active subscriptions for (kind, n).
func (r *Registry) Count(kind Kind, n *display.Node) int {
	if !kind.valid() {
		return 0
	}
	if reg := r.tables[kind][n]; reg != nil {
		return reg.count
	}
	return 0
}

// Bound reports whether a detector is currently bound for (kind, n).
func (r *Registry) Bound(kind Kind, n *display.Node) bool {
	if !kind.valid() {
		return false
	}
	reg := r.tables[kind][n]
	return reg != nil && reg.detector != nil
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// raise builds the detector handler that dispatches kind's synthetic event
// on the matching edge. Events bubble and are not cancelable.
func raise(kind Kind) Handler {
	return func(visible bool, n *display.Node) bool {
		if visible != kind.firesOn() {
			return false
		}
		n.Dispatch(&display.Event{
			Name:       kind.String(),
			Bubbles:    true,
			Cancelable: false,
			Detail:     Change{Visible: visible},
		})
		return false
	}
}
