package visibility

import (
	"time"

	"github.com/go-drift/inview/pkg/clock"
)

// Limit wraps fn so it executes at most maxPerSecond times per second.
// The first invocation runs immediately and arms a cooldown of
// 1s/maxPerSecond; invocations during the cooldown are dropped, not
// queued. A transition that occurs and reverses entirely within the
// cooldown window is never observed.
//
// maxPerSecond values <= 0 disable throttling and return fn unchanged.
func Limit(fn func(), maxPerSecond int) func() {
	if fn == nil {
		return func() {}
	}
	if maxPerSecond <= 0 {
		return fn
	}
	cooldown := time.Second / time.Duration(maxPerSecond)
	var last time.Time
	return func() {
		now := clock.Now()
		if !last.IsZero() && now.Sub(last) < cooldown {
			return
		}
		last = now
		fn()
	}
}
