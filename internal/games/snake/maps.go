package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Map lays out walls and plants the snake on a vacuumed world. Layouts are
// computed from the grid size so every map works on any grid.
type Map func(w *World)

// Maps holds the playable maps in menu order.
var Maps = registry.New[Map]("map")

func init() {
	Maps.Register("CLASSIC", classicMap)
	Maps.Register("AROUND", aroundMap)
	Maps.Register("CORNERS", cornersMap)
	Maps.Register("CROSS", crossMap)
	Maps.Register("WHIRPOOL", whirpoolMap)
	Maps.Register("FOUR", fourMap)
	Maps.Register("SLIT", slitMap)
}

// enterMap vacuums the world, applies the layout and plants the first apple.
func (w *World) enterMap(m Map) {
	w.Vacuum()
	m(w)
	w.Grid.PlantRandom(jungle.Apple, w.rng)
}

func (w *World) coin() bool {
	return w.rng.Intn(2) == 1
}

func (w *World) randomDir() core.Direction {
	return core.Direction(w.rng.Intn(4))
}

func (w *World) border() {
	g := w.Grid
	h, wd := g.H(), g.W()
	g.HLine(0, 0, wd, jungle.Wall)
	g.VLine(0, 0, h, jungle.Wall)
	g.VLine(0, wd-1, h, jungle.Wall)
	g.HLine(h-1, 0, wd, jungle.Wall)
}

// classicMap is an open field; the start scales with the grid.
func classicMap(w *World) {
	h, wd := w.Grid.H(), w.Grid.W()
	w.PlantSnake(h*12/23, wd*18/21, core.DirLeft)
}

func aroundMap(w *World) {
	h, wd := w.Grid.H(), w.Grid.W()
	w.border()
	w.PlantSnake(h/2, wd/2, w.randomDir())
}

func cornersMap(w *World) {
	const gap = 7

	g := w.Grid
	h, wd := g.H(), g.W()
	// Clockwise from the top left corner.
	g.VLine(0, 0, 3, jungle.Wall)
	g.Set(g.At(0, 1), jungle.Wall)
	g.Set(g.At(0, wd-2), jungle.Wall)
	g.VLine(0, wd-1, 3, jungle.Wall)
	g.VLine(h-3, wd-1, 3, jungle.Wall)
	g.Set(g.At(h-1, wd-2), jungle.Wall)
	g.Set(g.At(h-1, 1), jungle.Wall)
	g.VLine(h-3, 0, 3, jungle.Wall)

	y, x := (h-gap)/2-1, wd/4
	n := wd - 2*x
	g.HLine(y, x, n, jungle.Wall)
	g.HLine(h-1-y, x, n, jungle.Wall)

	row := h/2 + w.rng.Intn(4) - 2
	d := core.DirRight
	if w.coin() {
		d = core.DirLeft
	}
	w.PlantSnake(row, wd/2, d)
}

func crossMap(w *World) {
	g := w.Grid
	h, wd := g.H(), g.W()
	g.HLine(h/2, wd/2-wd/4, wd/2|1, jungle.Wall)
	g.VLine(h/2-h/4, wd/2, h/2|1, jungle.Wall)

	y := h / 8
	if w.coin() {
		y = h - 1 - h/8
	}
	x := wd / 8
	if w.coin() {
		x = wd - 1 - wd/8
	}
	w.PlantSnake(y, x, w.randomDir())
}

func whirpoolMap(w *World) {
	const (
		center = 1
		pad    = 3
	)

	g := w.Grid
	h, wd := g.H(), g.W()
	yn, xn := (h-center)/2, (wd-center)/2
	yoff, xoff := yn-pad-1, xn+pad+1
	g.HLine(yoff, 0, xn, jungle.Wall)
	g.HLine(h-1-yoff, wd-xn, xn, jungle.Wall)
	g.VLine(0, xoff, yn, jungle.Wall)
	g.VLine(h-yn, wd-1-xoff, yn, jungle.Wall)
	w.PlantSnake(h/2, wd/2, w.randomDir())
}

// fourMap splits the field into four rooms joined only through the edges.
func fourMap(w *World) {
	g := w.Grid
	h, wd := g.H(), g.W()
	g.HLine(h/2, 0, wd, jungle.Wall)
	g.VLine(0, wd/2, h, jungle.Wall)

	y := h / 4
	if w.coin() {
		y += h / 2
	}
	x := wd / 4
	if w.coin() {
		x += wd / 2
	}

	// Head toward the nearer outer edge so the first exit is a wrap.
	var d core.Direction
	if w.coin() {
		d = core.DirDown
		if y < h/2 {
			d = core.DirUp
		}
	} else {
		d = core.DirRight
		if x < wd/2 {
			d = core.DirLeft
		}
	}
	w.PlantSnake(y, x, d)
}

// slitMap is a walled box split in two, joined by two one-cell slits.
func slitMap(w *World) {
	g := w.Grid
	h, wd := g.H(), g.W()
	w.border()

	var (
		d    core.Direction
		y, x int
	)
	if w.coin() {
		g.VLine(0, wd/2, h, jungle.Wall)
		g.Set(g.At(h/2-1, wd/2), jungle.Ground)
		g.Set(g.At(h/2+1, wd/2), jungle.Ground)
		d = core.DirRight
		if w.coin() {
			d = core.DirLeft
		}
		y = h/2 - 1
		if w.coin() {
			y = h/2 + 1
		}
		x = wd / 4
		if d != core.DirRight {
			x += wd / 2
		}
	} else {
		g.HLine(h/2, 0, wd, jungle.Wall)
		g.Set(g.At(h/2, wd/2-1), jungle.Ground)
		g.Set(g.At(h/2, wd/2+1), jungle.Ground)
		d = core.DirDown
		if w.coin() {
			d = core.DirUp
		}
		y = h / 4
		if d != core.DirDown {
			y += h / 2
		}
		x = wd/2 - 1
		if w.coin() {
			x = wd/2 + 1
		}
	}
	w.PlantSnake(y, x, d)
}
