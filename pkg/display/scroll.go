package display

// scrollAxis stores the scroll offset and extents for one axis. Offsets are
// clamped to [min, max]; there is no overscroll or inertia in this model.
type scrollAxis struct {
	offset float64
	min    float64
	max    float64
}

// setExtents updates the axis extents and re-clamps the offset.
// It reports whether the clamp moved the offset.
func (a *scrollAxis) setExtents(min, max float64) bool {
	if max < min {
		max = min
	}
	a.min = min
	a.max = max
	return a.setOffset(a.offset)
}

// setOffset clamps value to the extents and reports whether the offset
// actually changed.
func (a *scrollAxis) setOffset(value float64) bool {
	clamped := clamp(value, a.min, a.max)
	if clamped == a.offset {
		return false
	}
	a.offset = clamped
	return true
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
