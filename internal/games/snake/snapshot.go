package snake

// StateType names the phase of a run.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateInHole   StateType = "in_hole"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the game state for determinism testing and the run
// journal.
type Snapshot struct {
	Tick       uint64
	Map        string
	Cleared    int
	Score      int
	StarBonus  int
	Length     int
	HeadX      int
	HeadY      int
	Dir        string
	Growth     int
	FoodActive bool
	FoodX      int
	FoodY      int
	Timeout    int
	State      StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	state := StatePlaying
	switch {
	case g.over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case w.InHole():
		state = StateInHole
	}

	headY, headX := w.Grid.YX(w.Head)
	foodY, foodX := -1, -1
	if w.Food.Active {
		foodY, foodX = w.Grid.YX(w.Food.Pos)
	}

	return Snapshot{
		Tick:       w.Ticks,
		Map:        g.mapName,
		Cleared:    g.cleared,
		Score:      w.Score,
		StarBonus:  w.StarBonus,
		Length:     w.Length(),
		HeadX:      headX,
		HeadY:      headY,
		Dir:        w.Dir.String(),
		Growth:     w.Growth,
		FoodActive: w.Food.Active,
		FoodX:      foodX,
		FoodY:      foodY,
		Timeout:    w.Timeout(),
		State:      state,
	}
}
