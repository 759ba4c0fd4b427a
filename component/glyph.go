package component

import (
	"github.com/gdamore/tcell/v2"
)

// GlyphComponent is the visual fill used when the bounding box is drawn
type GlyphComponent struct {
	Rune  rune
	Style tcell.Style
}
