package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Terminals only report key presses. While a key is held the terminal
// repeats it, first after the auto-repeat delay and then at the repeat
// rate, so a key counts as released once its repeats stop arriving. A tap
// therefore lasts as long as the first-repeat timeout.
const (
	defaultFirstRepeatTimeout = 550 * time.Millisecond // No repeat seen yet
	repeatTimeout             = 120 * time.Millisecond // Between repeats
)

type heldKey struct {
	lastSeen time.Time
	repeats  int
}

// holdTracker derives held keys and their releases from press timing.
type holdTracker struct {
	keys        map[core.Action]*heldKey
	firstRepeat time.Duration
}

// newHoldTracker creates a tracker that waits firstRepeat for the first
// auto-repeat. Zero uses the default delay.
func newHoldTracker(firstRepeat time.Duration) *holdTracker {
	if firstRepeat <= 0 {
		firstRepeat = defaultFirstRepeatTimeout
	}
	return &holdTracker{keys: make(map[core.Action]*heldKey), firstRepeat: firstRepeat}
}

// Press records a press of a. It reports whether this started a new hold.
func (h *holdTracker) Press(a core.Action, now time.Time) bool {
	if k, ok := h.keys[a]; ok {
		k.lastSeen = now
		k.repeats++
		return false
	}
	h.keys[a] = &heldKey{lastSeen: now}
	return true
}

// Held reports whether a is currently held.
func (h *holdTracker) Held(a core.Action) bool {
	_, ok := h.keys[a]
	return ok
}

// Release drops a immediately. It reports whether a was held.
func (h *holdTracker) Release(a core.Action) bool {
	if _, ok := h.keys[a]; !ok {
		return false
	}
	delete(h.keys, a)
	return true
}

// Expire releases every key whose repeats have stopped and returns them
// in action order.
func (h *holdTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, k := range h.keys {
		timeout := repeatTimeout
		if k.repeats == 0 {
			timeout = h.firstRepeat
		}
		if now.Sub(k.lastSeen) > timeout {
			released = append(released, a)
		}
	}
	for _, a := range released {
		delete(h.keys, a)
	}
	slices.Sort(released)
	return released
}

// Reset forgets every held key.
func (h *holdTracker) Reset() {
	clear(h.keys)
}
