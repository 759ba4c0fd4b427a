package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
)

// HoldTracker derives held-key state from press-only terminal events
// A key stays held for the hold window after its last press; auto-repeat refreshes it
type HoldTracker struct {
	mu        sync.Mutex
	window    time.Duration
	lastPress [KeyCount]time.Time
	prev      KeyState
	primed    bool
}

// NewHoldTracker creates a tracker; a non-positive window falls back to parameter.KeyHoldWindow
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = parameter.KeyHoldWindow
	}
	return &HoldTracker{window: window}
}

// Press records a press (or repeat) of k at the given time
func (t *HoldTracker) Press(k Key, at time.Time) {
	if k >= KeyCount {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastPress[k] = at
}

// Snapshot returns the key state at now
// The first snapshot is always reported as changed
func (t *HoldTracker) Snapshot(now time.Time) KeyState {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s KeyState
	for k := range KeyCount {
		last := t.lastPress[k]
		s.Pressed[k] = !last.IsZero() && now.Sub(last) < t.window
	}

	s.Changed = !t.primed || !s.SameKeys(t.prev)
	t.prev = s
	t.primed = true
	return s
}
