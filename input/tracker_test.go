package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldTracker_FirstSnapshotChanged(t *testing.T) {
	tr := NewHoldTracker(100 * time.Millisecond)
	now := time.Unix(0, 0)

	s := tr.Snapshot(now)
	assert.True(t, s.Changed, "first snapshot must report a change")
	assert.False(t, s.IsPressed(KeyUp))

	s = tr.Snapshot(now.Add(time.Millisecond))
	assert.False(t, s.Changed)
}

func TestHoldTracker_HoldAndExpire(t *testing.T) {
	tr := NewHoldTracker(100 * time.Millisecond)
	start := time.Unix(100, 0)
	tr.Snapshot(start)

	tr.Press(KeyUp, start)
	tr.Press(KeyRight, start)

	s := tr.Snapshot(start.Add(10 * time.Millisecond))
	require.True(t, s.Changed)
	assert.True(t, s.IsPressed(KeyUp))
	assert.True(t, s.IsPressed(KeyRight))
	assert.False(t, s.IsPressed(KeyDown))

	// Still held, nothing changed
	s = tr.Snapshot(start.Add(50 * time.Millisecond))
	assert.False(t, s.Changed)

	// Repeat refreshes only KeyUp
	tr.Press(KeyUp, start.Add(90*time.Millisecond))
	s = tr.Snapshot(start.Add(150 * time.Millisecond))
	assert.True(t, s.Changed)
	assert.True(t, s.IsPressed(KeyUp))
	assert.False(t, s.IsPressed(KeyRight))

	s = tr.Snapshot(start.Add(300 * time.Millisecond))
	assert.True(t, s.Changed)
	assert.Equal(t, [KeyCount]bool{}, s.Pressed)
}

func TestHoldTracker_IgnoresUnknownKey(t *testing.T) {
	tr := NewHoldTracker(0)
	now := time.Unix(5, 0)
	tr.Snapshot(now)

	tr.Press(KeyCount, now)
	s := tr.Snapshot(now)
	assert.False(t, s.Changed)
	assert.Equal(t, [KeyCount]bool{}, s.Pressed)
}
