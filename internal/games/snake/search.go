package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

// Cell states of a feasibility search. Positive values are release depths:
// a body cell becomes enterable once the head has taken that many steps.
const (
	cellOpen    = 0
	cellBlocked = -1
	cellExit    = -2
	cellFood    = -3
)

// budgetPerCell bounds the moves one search may try, per grid cell. Every
// cell is expanded at most once, so a search tries at most three moves per
// cell and the budget only guards against misuse.
const budgetPerCell = 8

type frame struct {
	pos   jungle.Pos
	depth int
	extra int // growth picked up on the way, delays body release
	dirs  [4]core.Direction
	n     int
	next  int
}

// feasibility is a depth-first search with an explicit stack. It asks
// whether a head at a given cell can keep moving until it is chasing its
// own tail: it succeeds on reaching a body cell the tail has already left
// by then, or a Hole. Open cells are expanded once per search, whichever
// branch reaches them first. Exceeding the step budget counts as failure.
type feasibility struct {
	grid   *jungle.Grid
	state  []int
	seen   []bool
	stack  []frame
	path   []jungle.Pos
	limit  int
	budget int
	rng    *rand.Rand
}

// load prepares the search for a snake whose body runs tail first through
// body, with growth ticks still pending. vacated lists snake cells the
// snake has already left and that are open again.
func (s *feasibility) load(g *jungle.Grid, vacated, body []jungle.Pos, growth int, rng *rand.Rand) {
	n := g.Len()
	if len(s.state) != n {
		s.state = make([]int, n)
		s.seen = make([]bool, n)
	}
	s.grid = g
	s.rng = rng
	s.limit = n * budgetPerCell

	for i := range n {
		e := g.Get(jungle.Pos(i))
		switch {
		case e == jungle.Wall || e == jungle.Hit:
			s.state[i] = cellBlocked
		case e == jungle.Hole:
			s.state[i] = cellExit
		case e.Grows():
			s.state[i] = cellFood
		default:
			s.state[i] = cellOpen
		}
	}
	for _, p := range vacated {
		s.state[p] = cellOpen
	}
	for j, p := range body {
		s.state[p] = j + 1 + growth
	}
}

// forward returns the three headings available after moving in d.
func forward(d core.Direction) []core.Direction {
	return []core.Direction{d, d.TurnRight(), d.TurnLeft()}
}

// run searches from start, trying only the given first headings.
func (s *feasibility) run(start jungle.Pos, first []core.Direction) bool {
	s.budget = s.limit
	s.stack = s.stack[:0]
	s.path = s.path[:0]
	clear(s.seen)

	// The start is left unmarked: like any body cell it may be entered
	// again once the tail has passed it.
	root := frame{pos: start}
	root.n = copy(root.dirs[:], first)
	s.stack = append(s.stack, root)

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.next == top.n {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		next := s.grid.Move(top.pos, d)
		if s.seen[next] {
			continue
		}
		if s.budget == 0 {
			return false
		}
		s.budget--

		depth := top.depth + 1
		switch st := s.state[next]; {
		case st == cellBlocked:
		case st == cellExit:
			s.finish(next)
			return true
		case st > 0:
			if depth >= st+top.extra {
				s.finish(next)
				return true
			}
		default:
			child := frame{pos: next, depth: depth, extra: top.extra}
			if st == cellFood {
				child.extra++
			}
			s.order(&child, d)
			s.seen[next] = true
			s.stack = append(s.stack, child)
		}
	}
	return false
}

// order fills the frame's headings. They are shuffled while budget is
// plentiful; near exhaustion the search goes straight first.
func (s *feasibility) order(f *frame, heading core.Direction) {
	f.n = copy(f.dirs[:], forward(heading))
	f.next = 0
	if s.budget >= s.limit/4 {
		s.rng.Shuffle(f.n, func(i, j int) {
			f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
		})
	}
}

// finish records the successful path, start first.
func (s *feasibility) finish(last jungle.Pos) {
	for _, f := range s.stack {
		s.path = append(s.path, f.pos)
	}
	s.path = append(s.path, last)
}

// Steps returns the length of the last successful path.
func (s *feasibility) Steps() int {
	return max(0, len(s.path)-1)
}
