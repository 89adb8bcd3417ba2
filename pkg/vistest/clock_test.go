package vistest

import (
	"testing"
	"time"
)

func TestFakeClockAdvance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Fatalf("advanced %v, want 250ms", got)
	}
}

func TestFakeClockSet(t *testing.T) {
	c := NewFakeClock()
	target := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(target)
	if !c.Now().Equal(target) {
		t.Fatalf("Now = %v, want %v", c.Now(), target)
	}
}
