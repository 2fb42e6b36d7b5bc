package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

const testSpeed = 7

func newTestWorld(t *testing.T, w, h int) *World {
	t.Helper()
	world, err := NewWorld(w, h, 0, testSpeed, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return world
}

// lay places a snake through cells given as {y, x}, tail first, and makes
// it the world's snake with no pending growth.
func lay(t *testing.T, w *World, heading core.Direction, cells ...[2]int) {
	t.Helper()
	g := w.Grid

	pos := make([]jungle.Pos, len(cells))
	for i, c := range cells {
		pos[i] = g.At(c[0], c[1])
	}
	step := func(a, b jungle.Pos) core.Direction {
		for _, d := range core.Directions {
			if g.Move(a, d) == b {
				return d
			}
		}
		t.Fatalf("cells %d and %d are not adjacent", a, b)
		return 0
	}

	in := heading.Opposite()
	if len(pos) > 1 {
		in = step(pos[0], pos[1]).Opposite()
	}
	for i := 0; i+1 < len(pos); i++ {
		out := step(pos[i], pos[i+1])
		g.Set(pos[i], jungle.Body(in, out))
		in = out.Opposite()
	}
	g.Set(pos[len(pos)-1], jungle.Head(heading))

	w.Tail, w.Head = pos[0], pos[len(pos)-1]
	w.Dir, w.Next = heading, heading
	w.Growth = 0
}

// checkChain verifies the body encoding: the walk from the tail ends at
// the head, visits no cell twice and every segment points back to its
// predecessor.
func checkChain(t *testing.T, w *World) {
	t.Helper()
	g := w.Grid

	segs := w.Segments()
	if last := segs[len(segs)-1]; last != w.Head {
		t.Fatalf("walk from tail ended at %d, head is at %d", last, w.Head)
	}
	seen := make(map[jungle.Pos]bool, len(segs))
	for i, p := range segs {
		if seen[p] {
			t.Fatalf("walk revisits cell %d", p)
		}
		seen[p] = true
		if i > 0 && i < len(segs)-1 {
			if back := g.Move(p, g.Get(p).In()); back != segs[i-1] {
				t.Fatalf("segment %d points back to %d, expected %d", p, back, segs[i-1])
			}
		}
	}
}
