package render

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

// Place values of the status fields.
const (
	scoreDigits   = 100000
	timeoutDigits = 10
)

// Renderer flushes grid damage and the status line to a canvas. Each grid
// cell is two columns wide; the status line sits under the bottom border.
type Renderer struct {
	canvas Canvas
	theme  *Theme

	score   int
	timeout int
	full    int // full redraws, for tests and the bench summary
}

// New returns a renderer drawing with theme t.
func New(c Canvas, t *Theme) *Renderer {
	return &Renderer{canvas: c, theme: t}
}

// Theme returns the glyph table in use.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// FullRedraws returns how many flushes repainted the whole field.
func (r *Renderer) FullRedraws() int {
	return r.full
}

// Flush draws what changed since the previous flush and resets the damage
// list. The status fields are redrawn only when their value changed, or
// on a full redraw.
func (r *Renderer) Flush(g *jungle.Grid, st core.GameState) error {
	d := g.Damage()
	full := !d.Partial()
	if full {
		r.full++
		r.drawField(g)
	} else {
		for _, p := range d.Positions() {
			y, x := g.YX(p)
			r.canvas.MoveTo(y, x*2)
			r.canvas.Put(r.theme.Glyph(g.Get(p)))
		}
	}
	r.drawStatus(g, st, full)
	d.Reset()
	return r.canvas.Flush()
}

func (r *Renderer) drawField(g *jungle.Grid) {
	r.canvas.Clear()
	side := core.Plain(r.theme.Side)
	for y := range g.H() {
		r.canvas.MoveTo(y, 0)
		for x := range g.W() {
			r.canvas.Put(r.theme.Glyph(g.Get(g.At(y, x))))
		}
		r.canvas.Put(side)
	}
	r.canvas.MoveTo(g.H(), 0)
	r.canvas.Put(core.Plain(strings.Repeat(r.theme.Bottom, g.W()) + r.theme.Corner))
}

func (r *Renderer) drawStatus(g *jungle.Grid, st core.GameState, full bool) {
	row := g.H() + 1
	if full || st.Score != r.score {
		r.score = st.Score
		r.canvas.MoveTo(row, 0)
		r.canvas.Put(core.Plain(r.theme.Number(r.score, scoreDigits)))
	}
	if full || st.Timeout != r.timeout {
		r.timeout = st.Timeout
		r.canvas.MoveTo(row, (g.W()/2-1)*2)
		if r.timeout > 0 {
			r.canvas.Put(core.Plain(r.theme.Number(r.timeout, timeoutDigits)))
		} else {
			r.canvas.Put(core.Plain("    "))
		}
	}
}

// Snapshot draws the whole field and status line into an in-memory screen
// without touching the grid's damage list.
func Snapshot(g *jungle.Grid, t *Theme, st core.GameState) *core.Screen {
	s := core.NewScreen(g.W()*2+1, g.H()+2)
	r := New(s, t)
	r.drawField(g)
	r.drawStatus(g, st, true)
	return s
}
