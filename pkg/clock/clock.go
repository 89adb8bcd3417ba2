// Package clock provides the time source used for throttling checks.
package clock

import "time"

// Clock provides time for the call limiter. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control the
// cooldown window deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the active time source.
var clock Clock = realClock{}

// SetClock replaces the clock. Returns the previous clock so callers can
// restore it. Passing nil restores the real clock.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
