package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

func TestAppleScenario(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	w.PlantSnake(2, 2, core.DirRight)
	w.Growth = 0
	w.Grid.Set(w.Grid.At(2, 4), jungle.Apple)

	for i := range 2 {
		if !w.Step() {
			t.Fatalf("tick %d collided", i+1)
		}
	}

	if w.Head != w.Grid.At(2, 4) {
		y, x := w.Grid.YX(w.Head)
		t.Errorf("head at (%d,%d), expected (2,4)", y, x)
	}
	if w.Score != testSpeed {
		t.Errorf("Score = %d, expected %d", w.Score, testSpeed)
	}
	if w.Growth != 1 {
		t.Errorf("Growth = %d, expected 1", w.Growth)
	}
	if got := w.HeadCell(); got != jungle.Head(core.DirRight) {
		t.Errorf("head cell = %v, expected a head facing right", got.Kind())
	}
	if n := w.Grid.Count(jungle.Apple); n != 1 {
		t.Errorf("apples on grid = %d, expected 1 (respawned)", n)
	}
}

func TestGrowthConservation(t *testing.T) {
	w := newTestWorld(t, 7, 3)
	lay(t, w, core.DirRight, [2]int{1, 1}, [2]int{1, 2})
	w.Grid.Set(w.Grid.At(1, 3), jungle.Apple)

	w.Step() // eat
	// Drop whatever the apple spawned so only growth is measured.
	for i := range w.Grid.Len() {
		if p := jungle.Pos(i); !w.Grid.Get(p).IsSnake() {
			w.Grid.Set(p, jungle.Ground)
		}
	}
	w.Food = MobileFood{}
	before, tail := w.Length(), w.Tail

	w.Step()
	if got := w.Length(); got != before+1 {
		t.Errorf("length after growth tick = %d, expected %d", got, before+1)
	}
	if w.Tail != tail {
		t.Error("tail must not advance while growth is pending")
	}

	w.Step()
	if got := w.Length(); got != before+1 {
		t.Errorf("length after steady tick = %d, expected %d", got, before+1)
	}
	checkChain(t, w)
}

func TestFatBodyWhileGrowing(t *testing.T) {
	w := newTestWorld(t, 7, 3)
	lay(t, w, core.DirRight, [2]int{1, 1}, [2]int{1, 2})
	w.Growth = 2

	w.Step()
	if e := w.Grid.Get(w.Grid.At(1, 2)); e.Kind() != jungle.KindFatBody {
		t.Errorf("segment behind head = %v, expected fat body", e.Kind())
	}
	w.Step()
	if e := w.Grid.Get(w.Grid.At(1, 3)); e.Kind() != jungle.KindBody {
		t.Errorf("segment after growth ran out = %v, expected thin body", e.Kind())
	}
}

func TestNoReverse(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
	}{
		{"length one", [][2]int{{2, 2}}},
		{"length three", [][2]int{{2, 0}, {2, 1}, {2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 5, 5)
			lay(t, w, core.DirRight, tt.cells...)

			w.Queue(core.DirLeft)
			if !w.Step() {
				t.Fatal("reversal attempt should not collide")
			}
			if w.Dir != core.DirRight {
				t.Errorf("Dir = %v, expected right", w.Dir)
			}
			if w.Head != w.Grid.At(2, 3) {
				t.Errorf("head at %d, expected %d", w.Head, w.Grid.At(2, 3))
			}
			if w.Next != core.DirRight {
				t.Errorf("Next = %v, expected the queue to reset to the applied heading", w.Next)
			}
		})
	}
}

func TestTurnApplied(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	lay(t, w, core.DirRight, [2]int{2, 1}, [2]int{2, 2})

	w.Queue(core.DirUp)
	w.Step()

	if w.Head != w.Grid.At(1, 2) {
		t.Errorf("head at %d, expected %d", w.Head, w.Grid.At(1, 2))
	}
	if e := w.Grid.Get(w.Grid.At(2, 2)); e != jungle.Body(core.DirLeft, core.DirUp) {
		t.Errorf("corner segment in=%v out=%v, expected left/up", e.In(), e.Out())
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, w *World)
	}{
		{
			name: "wall",
			setup: func(t *testing.T, w *World) {
				lay(t, w, core.DirRight, [2]int{2, 1}, [2]int{2, 2})
				w.Grid.Set(w.Grid.At(2, 3), jungle.Wall)
			},
		},
		{
			name: "own body",
			setup: func(t *testing.T, w *World) {
				// A hook: the head at (2,2) turns down into (3,2).
				lay(t, w, core.DirLeft,
					[2]int{2, 0}, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3}, [2]int{2, 3}, [2]int{2, 2})
				w.Queue(core.DirDown)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results [2]Snapshot
			for run := range results {
				w := newTestWorld(t, 6, 6)
				tt.setup(t, w)
				w.Food = MobileFood{Active: true, Pos: w.Grid.At(0, 5), Dir: core.DirLeft, Timeout: 5}
				w.Grid.Set(w.Food.Pos, jungle.Ant)
				head, score := w.Head, w.Score

				if w.Step() {
					t.Fatal("Step() = true, expected a collision")
				}
				dest := w.Grid.Move(head, w.Dir)
				if w.Grid.Get(dest) != jungle.Hit {
					t.Errorf("destination holds %v, expected hit", w.Grid.Get(dest).Kind())
				}
				if w.Head != head || w.Score != score || w.Ticks != 0 {
					t.Error("collision must not move the head, score or tick counter")
				}
				if w.Food.Pos != w.Grid.At(0, 5) || w.Food.Timeout != 5 {
					t.Error("mobile food must not move on a collision tick")
				}

				g := &Game{world: w}
				results[run] = g.Snapshot()
			}
			if results[0] != results[1] {
				t.Errorf("collision not deterministic: %+v vs %+v", results[0], results[1])
			}
		})
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	lay(t, w, core.DirLeft, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 2}, [2]int{2, 1})
	w.Queue(core.DirUp)

	for i := range 8 {
		if !w.Step() {
			t.Fatalf("tick %d: chasing the tail should not collide", i+1)
		}
		w.Queue(w.Dir.TurnRight())
	}
	if w.Length() != 4 {
		t.Errorf("Length() = %d, expected 4", w.Length())
	}
	checkChain(t, w)
}

func TestHoleScenario(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	lay(t, w, core.DirLeft, [2]int{0, 3}, [2]int{0, 2}, [2]int{0, 1})
	hole := w.Grid.At(0, 0)
	w.Grid.Set(hole, jungle.Hole)

	if !w.Step() {
		t.Fatal("entering a hole should not collide")
	}
	if w.Growth != holeGrowth {
		t.Errorf("Growth = %d, expected %d", w.Growth, holeGrowth)
	}
	if w.Head != hole || !w.InHole() {
		t.Fatal("head should sit in the hole")
	}
	if w.Grid.Get(hole) != jungle.Hole {
		t.Error("the hole must not be overwritten by a head")
	}

	// The head stays put while the tail drains into the hole.
	for i, wantLen := range []int{2, 1} {
		w.Step()
		if w.Head != hole {
			t.Fatalf("tick %d: head left the hole", i+2)
		}
		if got := w.Length(); got != wantLen {
			t.Errorf("tick %d: Length() = %d, expected %d", i+2, got, wantLen)
		}
		if w.Exited() {
			t.Fatalf("tick %d: exited too early", i+2)
		}
	}

	w.Step()
	if !w.Exited() {
		t.Error("snake should have drained through the hole")
	}
	if w.Growth != holeGrowth+3 {
		t.Errorf("Growth = %d, expected %d", w.Growth, holeGrowth+3)
	}
}

func TestAppleExhaustionBecomesHole(t *testing.T) {
	w := newTestWorld(t, 3, 1)
	lay(t, w, core.DirRight, [2]int{0, 0})
	w.Growth = 1
	w.Grid.Set(w.Grid.At(0, 1), jungle.Apple)
	w.Grid.Set(w.Grid.At(0, 2), jungle.Wall)

	if !w.Step() {
		t.Fatal("eating the last apple should not collide")
	}
	if got := w.Grid.Get(w.Grid.At(0, 1)); got != jungle.Hole {
		t.Errorf("destination = %v, expected hole", got.Kind())
	}
	if !w.InHole() || w.Growth != holeGrowth {
		t.Error("head should be in the hole with the hole growth sentinel")
	}
	if w.Score != testSpeed {
		t.Errorf("Score = %d, expected %d", w.Score, testSpeed)
	}
}

func TestStarAndPresent(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	lay(t, w, core.DirRight, [2]int{4, 1}, [2]int{4, 2})
	w.Grid.Set(w.Grid.At(4, 3), jungle.Star)
	w.Grid.Set(w.Grid.At(4, 4), jungle.Present)

	w.Step()
	if w.StarBonus != 10 {
		t.Errorf("StarBonus = %d, expected 10", w.StarBonus)
	}
	if w.Growth != 0 {
		t.Errorf("a star must not grow the snake, Growth = %d", w.Growth)
	}

	before := 0
	for i := range w.Grid.Len() {
		if w.Grid.Get(jungle.Pos(i)).IsSpecialFood() {
			before++
		}
	}
	w.Step()
	after := 0
	for i := range w.Grid.Len() {
		e := w.Grid.Get(jungle.Pos(i))
		if e.IsSpecialFood() || e == jungle.Hole {
			after++
		}
	}
	// The present is gone and 2 to 5 foods replaced it.
	if after < before-1+2 {
		t.Errorf("foods after present = %d, expected at least %d", after, before+1)
	}
}

func TestBugFoodScore(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	lay(t, w, core.DirRight, [2]int{4, 1}, [2]int{4, 2})
	bug := w.Grid.At(4, 3)
	w.Grid.Set(bug, jungle.Beetle)
	w.Food = MobileFood{Active: true, Pos: bug, Dir: core.DirRight, Timeout: 10}

	w.Step()

	lo, hi := 2*testSpeed, 2*(testSpeed+testSpeed*testSpeed-1)
	if w.Score < lo || w.Score > hi || w.Score%2 != 0 {
		t.Errorf("Score = %d, expected an even value in [%d, %d]", w.Score, lo, hi)
	}
	if w.Food.Active {
		t.Error("eating the mobile food should clear tracking")
	}
	if w.Growth != 1 {
		t.Errorf("Growth = %d, expected 1", w.Growth)
	}
}

func TestAppleFillIgnoresStars(t *testing.T) {
	filled := 0
	for seed := int64(1); seed <= 50; seed++ {
		w := newTestWorld(t, 9, 9)
		w.rng.Seed(seed)
		lay(t, w, core.DirRight, [2]int{4, 1}, [2]int{4, 2})
		w.Grid.Set(w.Grid.At(4, 3), jungle.Apple)
		w.Grid.Set(w.Grid.At(0, 0), jungle.Star)

		if !w.Step() {
			t.Fatalf("seed %d: eating the apple collided", seed)
		}
		for i := range w.Grid.Len() {
			e := w.Grid.Get(jungle.Pos(i))
			if e.IsBug() || e == jungle.Present || e == jungle.Hole {
				filled++
				break
			}
		}
	}
	// Each seed plants 0 to 3 foods, so most of them plant something.
	if filled < 25 {
		t.Errorf("apple planted extra foods in %d/50 seeds, expected a star not to suppress them", filled)
	}
}

func TestPresentKeepsOtherMobileFood(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	lay(t, w, core.DirRight, [2]int{4, 1}, [2]int{4, 2})
	w.Grid.Set(w.Grid.At(4, 3), jungle.Present)
	ant := w.Grid.At(0, 5)
	w.Grid.Set(ant, jungle.Ant)
	w.Food = MobileFood{Active: true, Pos: ant, Dir: core.DirRight, Timeout: 10}

	if !w.Step() {
		t.Fatal("eating the present collided")
	}
	if !w.Food.Active {
		t.Fatal("eating an untracked present should keep the mobile food")
	}
	if got := w.Grid.Get(w.Food.Pos); got != jungle.Ant {
		t.Errorf("tracked cell = %v, expected the ant", got.Kind())
	}
	if w.Food.Timeout != 9 {
		t.Errorf("Timeout = %d, expected 9", w.Food.Timeout)
	}
}
