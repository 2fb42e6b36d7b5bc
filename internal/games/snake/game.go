package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Outcome is what a frame did to the run.
type Outcome int

const (
	// Continue means the run goes on.
	Continue Outcome = iota
	// Collision means the head hit a wall or the snake; the run is over.
	Collision
	// Exit means the snake drained into a hole and a new map was entered.
	Exit
	// Stuck means the controller found no safe move and paused the game.
	Stuck
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Collision:
		return "collision"
	case Exit:
		return "exit"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Game runs one marathon: a map, then a random map every time the snake
// leaves through a hole, until it collides.
type Game struct {
	cfg   core.RuntimeConfig
	world *World
	ctrl  *Controller
	log   *log.Logger

	mapName  string
	cleared  int // maps left through a hole
	paused   bool
	autoplay bool
	over     bool
	plan     Plan
}

// New creates a game from the runtime config. The config's Seed drives
// every random choice, controller included. A nil logger discards output.
func New(cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	w, err := NewWorld(cfg.GridW, cfg.GridH, cfg.DamageCapacity, cfg.Speed, rng)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	return &Game{
		cfg:      cfg,
		world:    w,
		ctrl:     NewController(logger),
		log:      logger,
		autoplay: cfg.Autoplay,
	}, nil
}

// Start begins a fresh run on the named map, or on a random map when name
// is empty. The score is reset.
func (g *Game) Start(name string) error {
	if name == "" {
		g.world.Score = 0
		g.enterRandom()
	} else {
		m, err := Maps.Get(name)
		if err != nil {
			return fmt.Errorf("snake: %w", err)
		}
		g.world.Score = 0
		g.enter(name, m)
	}
	g.cleared = 0
	g.over = false
	g.paused = false
	return nil
}

func (g *Game) enter(name string, m Map) {
	g.mapName = name
	g.world.enterMap(m)
	g.log.Info("entering map", "map", name, "score", g.world.Score)
}

func (g *Game) enterRandom() {
	name, m := Maps.At(g.world.rng.Intn(Maps.Len()))
	g.enter(name, m)
}

// Frame advances the run by one tick. While paused or over it does nothing.
func (g *Game) Frame() Outcome {
	if g.over {
		return Collision
	}
	if g.paused {
		return Continue
	}

	if g.autoplay {
		dec := g.ctrl.Steer(g.world)
		g.plan = dec.Plan
		switch dec.Plan {
		case PlanFood, PlanStall:
			g.world.Queue(dec.Dir)
		case PlanStuck:
			g.paused = true
			g.log.Warn("no safe move, pausing",
				"map", g.mapName, "length", g.world.Length(), "score", g.world.Score)
			return Stuck
		}
	}

	if !g.world.Step() {
		g.over = true
		g.log.Info("run ended",
			"reason", Collision, "map", g.mapName,
			"score", g.world.Score, "length", g.world.Length(), "ticks", g.world.Ticks)
		return Collision
	}

	if g.world.Exited() {
		g.cleared++
		g.log.Info("left through a hole", "map", g.mapName, "score", g.world.Score)
		g.enterRandom()
		return Exit
	}
	return Continue
}

// Handle applies a player action. Steering actions unpause the game.
func (g *Game) Handle(a core.Action) {
	switch {
	case a.Steers():
		if g.over {
			return
		}
		d, _ := a.Heading(g.world.Dir)
		g.world.Queue(d)
		g.paused = false
	case a == core.ActionPause:
		g.paused = !g.paused
	case a == core.ActionAutoplay:
		g.autoplay = !g.autoplay
		g.log.Debug("autoplay toggled", "on", g.autoplay)
	}
}

// FrameDuration returns the length of the next frame. It is halved while
// the head sits in a hole.
func (g *Game) FrameDuration() time.Duration {
	d := g.cfg.Speeds.Frame(g.world.Speed, g.autoplay)
	if g.world.InHole() {
		d /= 2
	}
	return d
}

// State returns the values the platform shows and reacts to.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Timeout:  g.world.Timeout(),
		GameOver: g.over,
		Paused:   g.paused,
		Autoplay: g.autoplay,
	}
}

// World exposes the simulation for rendering.
func (g *Game) World() *World {
	return g.world
}

// MapName returns the map being played.
func (g *Game) MapName() string {
	return g.mapName
}

// Cleared returns how many maps the run has left through a hole.
func (g *Game) Cleared() int {
	return g.cleared
}

// Plan returns the controller's plan on the last autoplay frame.
func (g *Game) Plan() Plan {
	return g.plan
}

// SetPaused pauses or resumes the run.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}
