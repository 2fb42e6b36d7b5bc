package jungle

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Pos is a cell index into a Grid, y*W + x.
type Pos int

// Rand is the random source the grid draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid is the H×W toroidal jungle. Every write goes through Set so the
// damage list stays complete.
type Grid struct {
	w, h   int
	cells  []Entity
	damage *Damage
}

// NewGrid returns a grid of Ground cells.
func NewGrid(w, h, damageCapacity int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("invalid grid size %dx%d", w, h)
	}
	return &Grid{
		w:      w,
		h:      h,
		cells:  make([]Entity, w*h),
		damage: NewDamage(damageCapacity),
	}, nil
}

// W returns the width in cells.
func (g *Grid) W() int { return g.w }

// H returns the height in cells.
func (g *Grid) H() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Damage returns the grid's damage list.
func (g *Grid) Damage() *Damage { return g.damage }

// At returns the position of row y, column x. Both wrap.
func (g *Grid) At(y, x int) Pos {
	return Pos(core.Wrap(y, g.h)*g.w + core.Wrap(x, g.w))
}

// YX splits a position into row and column.
func (g *Grid) YX(p Pos) (y, x int) {
	return int(p) / g.w, int(p) % g.w
}

// Get returns the entity at p.
func (g *Grid) Get(p Pos) Entity {
	return g.cells[p]
}

// Set stores e at p and records the cell as damaged.
func (g *Grid) Set(p Pos, e Entity) {
	g.cells[p] = e
	g.damage.Record(p)
}

// Move returns the neighbour of p in direction d, wrapping at the edges.
func (g *Grid) Move(p Pos, d core.Direction) Pos {
	dy, dx := d.Delta()
	y, x := g.YX(p)
	return g.At(y+dy, x+dx)
}

// HLine fills n cells rightward from (y, x).
func (g *Grid) HLine(y, x, n int, e Entity) {
	for i := range n {
		g.Set(g.At(y, x+i), e)
	}
}

// VLine fills n cells downward from (y, x).
func (g *Grid) VLine(y, x, n int, e Entity) {
	for i := range n {
		g.Set(g.At(y+i, x), e)
	}
}

// Text spells s rightward from (y, x) with Letter entities.
func (g *Grid) Text(y, x int, s string) {
	i := 0
	for _, r := range s {
		g.Set(g.At(y, x+i), Letter(r))
		i++
	}
}

// FindRandomEmpty picks a Ground cell uniformly at random. It reports false
// when the grid has none.
func (g *Grid) FindRandomEmpty(rng Rand) (Pos, bool) {
	empty := g.Count(Ground)
	if empty == 0 {
		return 0, false
	}
	nth := rng.Intn(empty)
	for i, e := range g.cells {
		if e != Ground {
			continue
		}
		if nth == 0 {
			return Pos(i), true
		}
		nth--
	}
	return 0, false
}

// PlantRandom stores e in a random Ground cell.
func (g *Grid) PlantRandom(e Entity, rng Rand) (Pos, bool) {
	p, ok := g.FindRandomEmpty(rng)
	if ok {
		g.Set(p, e)
	}
	return p, ok
}

// Count returns how many cells hold e.
func (g *Grid) Count(e Entity) int {
	n := 0
	for _, c := range g.cells {
		if c == e {
			n++
		}
	}
	return n
}

// Have reports whether any cell holds e.
func (g *Grid) Have(e Entity) bool {
	for _, c := range g.cells {
		if c == e {
			return true
		}
	}
	return false
}

// Any reports whether any cell satisfies pred.
func (g *Grid) Any(pred func(Entity) bool) bool {
	for _, c := range g.cells {
		if pred(c) {
			return true
		}
	}
	return false
}

// Vacuum clears every cell and forces a full redraw.
func (g *Grid) Vacuum() {
	clear(g.cells)
	g.damage.Invalidate()
}

// Cells returns a copy of the cell array.
func (g *Grid) Cells() []Entity {
	out := make([]Entity, len(g.cells))
	copy(out, g.cells)
	return out
}
