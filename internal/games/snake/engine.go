package snake

import "github.com/vovakirdan/tui-snake/internal/jungle"

// Step advances the world by one tick: the snake moves, then the mobile
// food moves. It returns false when the head hit a wall or the snake; the
// destination then holds Hit and nothing else changes that tick.
func (w *World) Step() bool {
	if !w.moveSnake() {
		return false
	}
	w.moveFood()
	w.Ticks++
	return true
}

// resolveDirection applies the queued heading unless it reverses the
// current one.
func (w *World) resolveDirection() {
	if w.Next != w.Dir.Opposite() {
		w.Dir = w.Next
	}
	w.Next = w.Dir
}

func (w *World) moveSnake() bool {
	w.resolveDirection()
	g := w.Grid

	if w.Growth <= 0 {
		if w.Growth < 0 {
			w.Growth++
		}
		dir := w.Dir
		if t := g.Get(w.Tail); t.IsSegment() {
			dir = t.Out()
		}
		g.Set(w.Tail, jungle.Ground)
		w.Tail = g.Move(w.Tail, dir)
	}

	if w.Growth < 0 {
		return true
	}
	if w.Growth > 0 {
		w.Growth--
	}

	prev := w.Head
	next := g.Move(prev, w.Dir)
	dest := g.Get(next)
	if dest.Blocks() {
		g.Set(next, jungle.Hit)
		return false
	}

	w.Head = next
	bug := w.Food.Active && next == w.Food.Pos
	if bug {
		w.Food = MobileFood{}
	}
	dest = w.eat(dest, bug)

	if dest != jungle.Hole {
		g.Set(next, jungle.Head(w.Dir))
	}

	trail := jungle.Ground
	if next != w.Tail {
		in := g.Get(prev).Dir().Opposite()
		if w.Growth > 0 {
			trail = jungle.FatBody(in, w.Dir)
		} else {
			trail = jungle.Body(in, w.Dir)
		}
	}
	g.Set(prev, trail)
	return true
}

// eat applies the effect of the cell the head is entering and returns the
// entity that decides whether a head is drawn there.
func (w *World) eat(dest jungle.Entity, bug bool) jungle.Entity {
	switch dest {
	case jungle.Hole:
		w.Growth = holeGrowth

	case jungle.Apple:
		w.Growth++
		w.Score += w.Speed
		if _, ok := w.Grid.PlantRandom(jungle.Apple, w.rng); !ok {
			// Nowhere to put the next apple: the grid is full, so the
			// apple turns into the exit.
			w.Grid.Set(w.Head, jungle.Hole)
			w.Growth = holeGrowth
			return jungle.Hole
		}
		if !w.Grid.Any(jungle.Entity.IsBug) {
			w.plantFoods(w.rng.Intn(4))
		}

	case jungle.Snail, jungle.Beetle, jungle.Egg, jungle.Ant:
		gain := w.Speed + w.rng.Intn(w.Speed*w.Speed)
		if bug {
			gain <<= 1
		}
		w.Score += gain
		w.Growth++

	case jungle.Present:
		w.plantFoods(2 + w.rng.Intn(4))

	case jungle.Star:
		w.StarBonus += 10
	}
	return dest
}
