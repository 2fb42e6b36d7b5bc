package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
)

func TestMapRegistryOrder(t *testing.T) {
	got := strings.Join(Maps.Names(), " ")
	want := "CLASSIC AROUND CORNERS CROSS WHIRPOOL FOUR SLIT"
	if got != want {
		t.Errorf("Maps.Names() = %q, expected %q", got, want)
	}
}

func TestMapsStartCleanly(t *testing.T) {
	for _, name := range Maps.Names() {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 8; seed++ {
				cfg := core.DefaultConfig()
				cfg.Seed = seed
				g, err := New(cfg, nil)
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				if err := g.Start(name); err != nil {
					t.Fatalf("Start(%q): %v", name, err)
				}

				w := g.World()
				if w.HeadCell().Kind() != jungle.KindHead {
					t.Fatalf("seed %d: head cell is %v", seed, w.HeadCell().Kind())
				}
				heads := 0
				for i := range w.Grid.Len() {
					if w.Grid.Get(jungle.Pos(i)).Kind() == jungle.KindHead {
						heads++
					}
				}
				if heads != 1 {
					t.Errorf("seed %d: %d heads, expected 1", seed, heads)
				}
				if n := w.Grid.Count(jungle.Apple); n != 1 {
					t.Errorf("seed %d: %d apples, expected 1", seed, n)
				}
				if w.Length() != 1 || w.Growth != 1 {
					t.Errorf("seed %d: length %d growth %d, expected 1 and 1", seed, w.Length(), w.Growth)
				}
				if g.MapName() != name {
					t.Errorf("MapName() = %q, expected %q", g.MapName(), name)
				}
			}
		})
	}
}

func TestClassicStart(t *testing.T) {
	g, err := New(core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Start("CLASSIC"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	w := g.World()
	if y, x := w.Grid.YX(w.Head); y != 12 || x != 18 {
		t.Errorf("head at (%d,%d), expected (12,18)", y, x)
	}
	if w.Dir != core.DirLeft {
		t.Errorf("Dir = %v, expected left", w.Dir)
	}
	if w.Grid.Count(jungle.Wall) != 0 {
		t.Error("CLASSIC has no walls")
	}
}

func TestAroundIsWalled(t *testing.T) {
	w := newTestWorld(t, 8, 6)
	w.enterMap(aroundMap)

	for x := range 8 {
		if w.Grid.Get(w.Grid.At(0, x)) != jungle.Wall || w.Grid.Get(w.Grid.At(5, x)) != jungle.Wall {
			t.Fatalf("column %d is not walled at top and bottom", x)
		}
	}
	for y := range 6 {
		if w.Grid.Get(w.Grid.At(y, 0)) != jungle.Wall || w.Grid.Get(w.Grid.At(y, 7)) != jungle.Wall {
			t.Fatalf("row %d is not walled at both sides", y)
		}
	}
}

func TestStartUnknownMap(t *testing.T) {
	g, err := New(core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Start("MAZE"); err == nil {
		t.Error("expected error for an unknown map")
	}
}
