package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeys are bound regardless of configuration
var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyUp,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyDown:  KeyDown,
	tcell.KeyRight: KeyRight,
}

// Translate maps a terminal key event to a tracked control
func (b Bindings) Translate(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := b[unicode.ToLower(ev.Rune())]
		return k, ok
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}

// IsQuit reports whether the event requests exit
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// IsReset reports whether the event requests a scene reset
// Checked before bindings, so r cannot be bound to a control
func IsReset(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'r'
}
