package input

import "fmt"

// Key is a tracked directional control
type Key uint8

const (
	KeyUp Key = iota
	KeyLeft
	KeyDown
	KeyRight

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyUp:    "up",
	KeyLeft:  "left",
	KeyDown:  "down",
	KeyRight: "right",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey resolves a control name as used in key binding configuration
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown control %q", name)
}
