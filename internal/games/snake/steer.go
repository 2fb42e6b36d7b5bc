package snake

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

// Plan tells how the controller arrived at its heading.
type Plan int

const (
	PlanFood  Plan = iota // first step of a safe shortest path to food
	PlanStall             // no safe food path, follow the longest safe detour
	PlanStuck             // no safe move at all
	PlanIdle              // head is in a hole, nothing to steer
)

func (p Plan) String() string {
	switch p {
	case PlanFood:
		return "food"
	case PlanStall:
		return "stall"
	case PlanStuck:
		return "stuck"
	case PlanIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Decision is the controller's proposal for the next tick.
type Decision struct {
	Dir       core.Direction
	Plan      Plan
	Target    jungle.Pos
	HasTarget bool
	Steps     int // length of the path backing the decision
}

const unreachable = -1

// Controller steers the snake in autoplay. It reads the world and only
// proposes a heading; the caller queues it.
//
// Each tick it measures shortest distances from the head, picks the
// nearest bug, present or hole (falling back to the nearest apple) and
// checks that the snake, once there, can still chase its own tail. If not,
// it stalls along the longest safe detour it finds. Heuristic, not a proof of safety.
type Controller struct {
	dist   []int
	parent []jungle.Pos
	via    []core.Direction
	order  []jungle.Pos
	search feasibility
	log    *log.Logger
}

// NewController creates a controller. A nil logger discards output.
func NewController(logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{log: logger}
}

// Steer proposes a heading. It never proposes reversing the current one.
func (c *Controller) Steer(w *World) Decision {
	if w.Growth < 0 {
		return Decision{Dir: w.Dir, Plan: PlanIdle}
	}

	c.measure(w)
	body := w.Segments()

	if target, ok := c.pickTarget(w); ok {
		path := c.pathTo(w.Head, target)
		if c.safeAfter(w, body, path) {
			return Decision{
				Dir:       c.via[path[0]],
				Plan:      PlanFood,
				Target:    target,
				HasTarget: true,
				Steps:     len(path),
			}
		}
		y, x := w.Grid.YX(target)
		c.log.Debug("food path would trap the snake", "y", y, "x", x, "steps", len(path))
	}

	if d, steps, ok := c.stall(w, body); ok {
		return Decision{Dir: d, Plan: PlanStall, Steps: steps}
	}
	return Decision{Dir: w.Dir, Plan: PlanStuck}
}

// Distance returns the shortest head distance to p measured by the last
// Steer, or -1 if p was unreachable.
func (c *Controller) Distance(p jungle.Pos) int {
	if int(p) >= len(c.dist) {
		return unreachable
	}
	return c.dist[p]
}

func passable(e jungle.Entity) bool {
	return !e.Blocks() && e != jungle.Hit
}

// measure runs a breadth-first search from the head. Snake cells and walls
// are impassable. Holes are reachable but not expanded through.
func (c *Controller) measure(w *World) {
	g := w.Grid
	n := g.Len()
	if len(c.dist) != n {
		c.dist = make([]int, n)
		c.parent = make([]jungle.Pos, n)
		c.via = make([]core.Direction, n)
	}
	for i := range c.dist {
		c.dist[i] = unreachable
	}
	c.order = c.order[:0]

	q := queue.New[jungle.Pos]()
	c.dist[w.Head] = 0
	q.Enqueue(w.Head)

	for !q.Empty() {
		p := q.Dequeue()
		c.order = append(c.order, p)
		if p != w.Head && g.Get(p) == jungle.Hole {
			continue
		}
		for _, d := range core.Directions {
			if p == w.Head && d == w.Dir.Opposite() {
				continue
			}
			next := g.Move(p, d)
			if c.dist[next] != unreachable || !passable(g.Get(next)) {
				continue
			}
			c.dist[next] = c.dist[p] + 1
			c.parent[next] = p
			c.via[next] = d
			q.Enqueue(next)
		}
	}
}

// pickTarget returns the nearest reachable special target, or the nearest
// reachable apple if there is none. Special targets are bugs, presents and
// holes. Stars only add to the bonus and are not chased.
func (c *Controller) pickTarget(w *World) (jungle.Pos, bool) {
	specials := mapset.New[jungle.Pos]()
	apples := mapset.New[jungle.Pos]()
	for i := range w.Grid.Len() {
		p := jungle.Pos(i)
		switch e := w.Grid.Get(p); {
		case e == jungle.Hole || e == jungle.Present || e.IsBug():
			specials.Put(p)
		case e == jungle.Apple:
			apples.Put(p)
		}
	}

	for _, set := range []mapset.Set[jungle.Pos]{specials, apples} {
		if set.Size() == 0 {
			continue
		}
		// order is sorted by distance; index 0 is the head.
		for _, p := range c.order[1:] {
			if set.Has(p) {
				return p, true
			}
		}
	}
	return 0, false
}

// pathTo reads the BFS tree back from target. The head is not included.
func (c *Controller) pathTo(head, target jungle.Pos) []jungle.Pos {
	path := make([]jungle.Pos, c.dist[target])
	for p, i := target, len(path)-1; p != head; p, i = c.parent[p], i-1 {
		path[i] = p
	}
	return path
}

// safeAfter simulates the snake along path and checks the tail stays
// reachable from where it ends up.
func (c *Controller) safeAfter(w *World, body, path []jungle.Pos) bool {
	target := path[len(path)-1]
	if w.Grid.Get(target) == jungle.Hole {
		return true
	}

	growth, advance := w.Growth, 0
	for _, p := range path {
		if growth <= 0 {
			advance++
		}
		if growth > 0 {
			growth--
		}
		if w.Grid.Get(p).Grows() {
			growth++
		}
	}

	all := make([]jungle.Pos, 0, len(body)+len(path))
	all = append(all, body...)
	all = append(all, path...)
	advance = min(advance, len(all)-1)

	c.search.load(w.Grid, all[:advance], all[advance:], growth, w.Rand())
	return c.search.run(target, forward(c.via[target]))
}

// stall picks the first heading whose feasibility path is longest.
func (c *Controller) stall(w *World, body []jungle.Pos) (core.Direction, int, bool) {
	c.search.load(w.Grid, nil, body, w.Growth, w.Rand())

	dirs := forward(w.Dir)
	w.Rand().Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	best, bestDir := 0, w.Dir
	for _, d := range dirs {
		if !c.search.run(w.Head, []core.Direction{d}) {
			continue
		}
		if steps := c.search.Steps(); steps > best {
			best, bestDir = steps, d
		}
	}
	if best == 0 {
		c.log.Debug("no safe heading", "length", len(body))
		return w.Dir, 0, false
	}
	return bestDir, best, true
}
