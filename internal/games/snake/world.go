// Package snake implements the snake simulation: the movement and growth
// engine, the food spawner, the map layouts, the steering controller and
// the Game that ties them to the platform.
//
// All mutable state lives in one World. The movement engine, the food
// spawner and the controller all receive it explicitly.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

// holeGrowth is the growth counter after the head drops into a Hole. The
// tail drains into the hole long before the counter reaches zero.
const holeGrowth = -9999

// mobileFoodTimeout is the lifetime in ticks of a freshly spawned mobile food.
const mobileFoodTimeout = 30

// MobileFood is the single tracked food that wanders the grid.
type MobileFood struct {
	Active  bool
	Pos     jungle.Pos
	Dir     core.Direction
	Timeout int // Ticks left, 0 means it never expires
}

// World is the complete simulation state of one run.
type World struct {
	Grid *jungle.Grid

	Speed int

	Head, Tail jungle.Pos
	Dir        core.Direction // Heading applied on the last tick
	Next       core.Direction // Heading requested for the next tick
	Growth     int            // >0 growing, <0 tail-only ticks, 0 steady

	Score     int
	StarBonus int
	Food      MobileFood
	Ticks     uint64

	rng *rand.Rand
}

// NewWorld creates an empty world of w×h cells.
func NewWorld(w, h, damageCapacity, speed int, rng *rand.Rand) (*World, error) {
	grid, err := jungle.NewGrid(w, h, damageCapacity)
	if err != nil {
		return nil, err
	}
	return &World{
		Grid:   grid,
		Speed:  core.Clamp(speed, core.MinSpeed, core.MaxSpeed),
		Growth: 1,
		rng:    rng,
	}, nil
}

// Rand returns the world's random source. The controller shuffles with it
// so a seed reproduces a whole autoplay run.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Vacuum empties the grid and resets per-map state. Score carries over.
func (w *World) Vacuum() {
	w.Grid.Vacuum()
	w.Growth = 1
	w.StarBonus = 0
	w.Food = MobileFood{}
}

// PlantSnake places a length-1 snake at (y, x) heading d.
func (w *World) PlantSnake(y, x int, d core.Direction) {
	w.Head = w.Grid.At(y, x)
	w.Tail = w.Head
	w.Dir, w.Next = d, d
	w.Grid.Set(w.Head, jungle.Head(d))
}

// Queue requests a heading for the next tick. A reversal is accepted here
// and ignored when the tick resolves it.
func (w *World) Queue(d core.Direction) {
	w.Next = d
}

// HeadCell returns the entity under the head.
func (w *World) HeadCell() jungle.Entity {
	return w.Grid.Get(w.Head)
}

// InHole reports whether the head has dropped into a Hole.
func (w *World) InHole() bool {
	return w.HeadCell() == jungle.Hole
}

// Exited reports whether the snake has fully drained into a Hole.
func (w *World) Exited() bool {
	return w.HeadCell() == jungle.Ground
}

// Segments returns the snake's cells, tail first.
func (w *World) Segments() []jungle.Pos {
	return w.Grid.Segments(w.Tail)
}

// Length returns the number of cells the snake occupies.
func (w *World) Length() int {
	n := 0
	for range w.Grid.Body(w.Tail) {
		n++
	}
	return n
}

// Timeout returns the mobile food countdown shown in the status line.
func (w *World) Timeout() int {
	if !w.Food.Active {
		return 0
	}
	return w.Food.Timeout
}
