package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/status"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// TerminalRenderer draws the arena scaled into the terminal, plus a one-line status bar
// The arena fills every row but the last; its border takes one cell on each side
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws the current world state and shows it
// Must run on the frame goroutine between steps
func (r *TerminalRenderer) RenderFrame(gc *engine.GameContext) {
	r.screen.Clear()

	width, height := r.screen.Size()
	if width < 3 || height < 4 {
		r.screen.Show()
		return
	}

	arena := engine.MustGetResource[*engine.ArenaResource](gc.World.Resources)
	vp := viewport{
		left:   1,
		top:    1,
		cols:   width - 2,
		rows:   height - 3,
		arenaW: arena.Width,
		arenaH: arena.Height,
	}

	r.drawBorder(width, height-1)
	r.drawEntities(gc.World, vp)
	r.drawStatusBar(gc, width, height-1)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(width, height int) {
	for x := 1; x < width-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, height-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < height-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(width-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(width-1, 0, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(0, height-1, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(width-1, height-1, tcell.RuneLRCorner, nil, borderStyle)
}

func (r *TerminalRenderer) drawEntities(w *engine.World, vp viewport) {
	c := w.Components
	entities := w.Query().With(c.Glyph).With(c.Transform).With(c.BoundingBox).Execute()

	for _, e := range entities {
		t, _ := c.Transform.Get(e)
		box, _ := c.BoundingBox.Get(e)
		glyph, _ := c.Glyph.Get(e)

		x0, y0, x1, y1 := vp.rect(t.Position.X, t.Position.Y, box.Size.X, box.Size.Y)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.screen.SetContent(x, y, glyph.Rune, nil, glyph.Style)
			}
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(gc *engine.GameContext, width, row int) {
	reg := gc.Status
	line := fmt.Sprintf(" fps %3.0f  frame %d  hits %d  bounces %d  speed %.1f  digest %016x",
		reg.Gauges.Get(status.KeyFPS).Get(),
		gc.Frame(),
		reg.Counters.Get(status.KeyCollisions).Load(),
		reg.Counters.Get(status.KeyWallBounces).Load(),
		reg.Gauges.Get(status.KeyBallSpeed).Get(),
		engine.Digest(gc.World),
	)

	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, statusStyle)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
}

// viewport maps centered world coordinates, y up, to terminal cells, y down
type viewport struct {
	left, top  int
	cols, rows int
	arenaW     float64
	arenaH     float64
}

// rect returns the inclusive cell range covered by a centered box, clipped to the viewport
// A box smaller than a cell still covers the cell containing its center
func (vp viewport) rect(cx, cy, w, h float64) (x0, y0, x1, y1 int) {
	fx0 := (cx - w/2 + vp.arenaW/2) / vp.arenaW * float64(vp.cols)
	fx1 := (cx + w/2 + vp.arenaW/2) / vp.arenaW * float64(vp.cols)
	fy0 := (vp.arenaH/2 - (cy + h/2)) / vp.arenaH * float64(vp.rows)
	fy1 := (vp.arenaH/2 - (cy - h/2)) / vp.arenaH * float64(vp.rows)

	x0, x1 = span(fx0, fx1)
	y0, y1 = span(fy0, fy1)

	x0 = vp.left + clamp(x0, 0, vp.cols-1)
	x1 = vp.left + clamp(x1, 0, vp.cols-1)
	y0 = vp.top + clamp(y0, 0, vp.rows-1)
	y1 = vp.top + clamp(y1, 0, vp.rows-1)
	return x0, y0, x1, y1
}

func span(lo, hi float64) (int, int) {
	a := int(math.Floor(lo))
	b := int(math.Ceil(hi)) - 1
	return a, max(a, b)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
