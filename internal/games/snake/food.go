package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

// Spawn weights out of 1024 for plantFood.
const (
	spawnRoll        = 1024
	spawnHoleBelow   = 50
	spawnMobileBelow = 300
)

// plantFood rolls once and spawns a Hole, a mobile food or a static food.
// A roll whose branch is already satisfied falls through to the next one.
// A full grid skips the spawn.
func (w *World) plantFood() {
	g := w.Grid
	p := w.rng.Intn(spawnRoll)

	switch {
	case p < spawnHoleBelow && !g.Have(jungle.Hole):
		g.PlantRandom(jungle.Hole, w.rng)

	case p < spawnMobileBelow && !w.Food.Active:
		var e jungle.Entity
		switch q := w.rng.Intn(32); {
		case q < 10:
			e = jungle.Snail
		case q < 20:
			e = jungle.Beetle
		case q < 30:
			e = jungle.Ant
		default:
			e = jungle.Present
		}
		pos, ok := g.PlantRandom(e, w.rng)
		if !ok {
			return
		}

		var dir core.Direction
		if e == jungle.Snail {
			dir = core.DirRight
			if w.rng.Intn(2) == 1 {
				dir = core.DirLeft
			}
		} else {
			dir = core.Direction(w.rng.Intn(4))
		}
		timeout := 0
		if w.rng.Intn(16) < 15 {
			timeout = mobileFoodTimeout
		}
		w.Food = MobileFood{Active: true, Pos: pos, Dir: dir, Timeout: timeout}

	default:
		var e jungle.Entity
		switch q := w.rng.Intn(32); {
		case q < 17:
			e = jungle.Egg
		case q < 30:
			e = jungle.Snail
		default:
			e = jungle.Beetle
		}
		g.PlantRandom(e, w.rng)
	}
}

func (w *World) plantFoods(n int) {
	for range n {
		w.plantFood()
	}
}

// moveFood counts the mobile food down and walks it one cell. It bounces
// off anything but Ground and the head, and stays put when boxed in.
func (w *World) moveFood() {
	f := &w.Food
	if !f.Active {
		f.Timeout = 0
		return
	}

	g := w.Grid
	if f.Timeout > 0 {
		f.Timeout--
		if f.Timeout == 0 {
			g.Set(f.Pos, jungle.Ground)
			*f = MobileFood{}
			return
		}
	}

	next := g.Move(f.Pos, f.Dir)
	if t := g.Get(next); t != jungle.Ground && t.Kind() != jungle.KindHead {
		f.Dir = f.Dir.Opposite()
		next = g.Move(f.Pos, f.Dir)
	}
	if g.Get(next) != jungle.Ground {
		return
	}

	e := g.Get(f.Pos)
	g.Set(f.Pos, jungle.Ground)
	g.Set(next, e)
	f.Pos = next
}
