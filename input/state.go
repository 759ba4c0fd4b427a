package input

// KeyState is a per-frame snapshot of the tracked controls
type KeyState struct {
	Pressed [KeyCount]bool

	// Changed is set when Pressed differs from the previous snapshot
	Changed bool
}

// IsPressed reports whether k is held in this snapshot
func (s KeyState) IsPressed(k Key) bool {
	return k < KeyCount && s.Pressed[k]
}

// SameKeys compares pressed bits only, ignoring Changed
func (s KeyState) SameKeys(o KeyState) bool {
	return s.Pressed == o.Pressed
}
