package input

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Bindings maps typed runes to controls
type Bindings map[rune]Key

// DefaultBindings returns the W/A/S/D layout
func DefaultBindings() Bindings {
	return Bindings{
		'w': KeyUp,
		'a': KeyLeft,
		's': KeyDown,
		'd': KeyRight,
	}
}

// ParseBindings builds bindings from control name to key list, e.g. {"up": ["w", "k"]}
// Returns error on unknown control names, multi-rune keys, or a rune bound twice
func ParseBindings(raw map[string][]string) (Bindings, error) {
	b := make(Bindings)

	// Sorted for stable error reporting
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		for _, keyStr := range raw[name] {
			if utf8.RuneCountInString(keyStr) != 1 {
				return nil, fmt.Errorf("control %q: key %q must be a single character", name, keyStr)
			}
			r, _ := utf8.DecodeRuneInString(keyStr)
			if prev, dup := b[r]; dup {
				return nil, fmt.Errorf("key %q bound to both %s and %s", keyStr, prev, k)
			}
			b[r] = k
		}
	}
	return b, nil
}
