package jungle

import (
	"iter"
	"slices"
)

// Body walks the snake from tail toward the head by following each
// segment's outgoing direction. The first non-segment cell reached (the
// head, or a Hole the head has entered) is the last position yielded.
// The walk is bounded by the grid size so a corrupted chain cannot loop.
func (g *Grid) Body(tail Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		p := tail
		for range g.Len() {
			if !yield(p) {
				return
			}
			e := g.cells[p]
			if !e.IsSegment() {
				return
			}
			p = g.Move(p, e.Out())
		}
	}
}

// Segments returns the snake's cells, tail first and head last.
func (g *Grid) Segments(tail Pos) []Pos {
	return slices.Collect(g.Body(tail))
}
