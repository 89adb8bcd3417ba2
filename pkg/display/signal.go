package display

// signal is an ordered listener list for one of the surface's global
// triggers. Registration returns a remove func; removal is idempotent.
type signal struct {
	entries []signalEntry
	nextID  int
}

type signalEntry struct {
	id int
	fn func()
}

// add registers fn and returns its remove func. A nil fn registers nothing.
func (s *signal) add(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, signalEntry{id: id, fn: fn})
	return func() {
		s.remove(id)
	}
}

func (s *signal) remove(id int) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// emit invokes the listeners in registration order. The list is
// snapshotted first so listeners registering or removing bindings cannot
// skip or double-invoke other listeners; entries removed mid-iteration are
// not invoked.
func (s *signal) emit() {
	if len(s.entries) == 0 {
		return
	}
	snapshot := make([]signalEntry, len(s.entries))
	copy(snapshot, s.entries)
	for _, e := range snapshot {
		if !s.has(e.id) {
			continue
		}
		e.fn()
	}
}

func (s *signal) has(id int) bool {
	for _, e := range s.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

func (s *signal) len() int {
	return len(s.entries)
}
