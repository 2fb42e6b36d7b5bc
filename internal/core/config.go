package core

import "time"

// InputMode selects how steering keys are interpreted.
type InputMode string

const (
	// InputAbsolute maps keys to compass headings (keyboard play).
	InputAbsolute InputMode = "absolute"
	// InputRelative maps wheel/arrow up and down to right and left turns
	// (pointer play).
	InputRelative InputMode = "relative"
)

// Speed levels accepted everywhere.
const (
	MinSpeed = 1
	MaxSpeed = 9
)

// SpeedTable holds per-level frame durations in milliseconds, index 0 being
// speed 1 (slowest).
type SpeedTable struct {
	Manual   []int `yaml:"manual"`
	Autoplay []int `yaml:"autoplay"`
}

// Frame returns the tick duration for a speed level. Out-of-range levels are
// clamped and a missing autoplay entry falls back to the manual table.
func (t SpeedTable) Frame(speed int, autoplay bool) time.Duration {
	table := t.Manual
	if autoplay && len(t.Autoplay) > 0 {
		table = t.Autoplay
	}
	if len(table) == 0 {
		return 100 * time.Millisecond
	}
	i := Clamp(speed, MinSpeed, len(table)) - 1
	return time.Duration(table[i]) * time.Millisecond
}

// RuntimeConfig contains configuration passed to the game at initialization.
// It is the resolved view of the YAML config plus command line overrides.
type RuntimeConfig struct {
	ScreenW int // Terminal width in characters
	ScreenH int // Terminal height in characters

	GridW int // Jungle width in cells (each cell is two columns)
	GridH int // Jungle height in cells

	Speed          int        // 1..9
	Speeds         SpeedTable // Frame durations per speed
	Autoplay       bool       // Steering controller drives the snake
	Input          InputMode  // absolute or relative steering
	Theme          string     // Glyph table name
	Map            string     // Fixed map name, empty for a random marathon
	DamageCapacity int        // Cells tracked before a frame degrades to full redraw
	Seed           int64      // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		GridW:   21,
		GridH:   23,
		Speed:   7,
		Speeds: SpeedTable{
			Manual:   []int{800, 500, 300, 200, 145, 125, 100, 80, 50},
			Autoplay: []int{400, 250, 150, 100, 70, 60, 50, 40, 25},
		},
		Input:          InputAbsolute,
		Theme:          "unicode",
		DamageCapacity: 20,
		Seed:           0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Timeout  int  // Ticks left before the mobile food vanishes, 0 if none
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Autoplay bool // Whether the controller is steering
}
