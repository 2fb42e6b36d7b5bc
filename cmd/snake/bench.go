package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Outcomes recorded in the run journal.
const (
	outcomeCollision = "collision"
	outcomeStuck     = "stuck"
	outcomeLimit     = "limit"
)

var (
	flagBenchRuns   int
	flagBenchMap    string
	flagBenchSpeed  int
	flagBenchTicks  int
	flagBenchNoSave bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless autoplay games",
	Long: `Run autoplay games without a terminal, as fast as possible, and
record each one in the run journal. Every frame is still drawn into an
in-memory screen, so the damage tracking is exercised too.

A run ends when the snake collides, when the controller finds no safe move
(stuck), or when it reaches --max-ticks (limit). Run i uses seed+i, so a
bench with a fixed --seed is reproducible.

Examples:
  snake bench
  snake bench --runs 50 --map CROSS
  snake bench --seed 42 --max-ticks 2000 --no-save`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntVarP(&flagBenchRuns, "runs", "n", 10, "Number of runs")
	f.StringVarP(&flagBenchMap, "map", "m", "", "Map to start on (default: random)")
	f.IntVarP(&flagBenchSpeed, "speed", "s", core.MaxSpeed, "Speed recorded with the runs")
	f.IntVar(&flagBenchTicks, "max-ticks", 50000, "Tick limit per run")
	f.BoolVar(&flagBenchNoSave, "no-save", false, "Do not record the runs")
}

// benchResult is one finished headless run.
type benchResult struct {
	Run         storage.Run
	Frames      int
	FullRedraws int
	Elapsed     time.Duration
}

// benchOne plays one autoplay game to its end, drawing every frame into
// an in-memory screen.
func benchOne(rc core.RuntimeConfig, theme *render.Theme, logger *log.Logger, maxTicks int) (benchResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rc.Autoplay = true
	game, err := snake.New(rc, logger)
	if err != nil {
		return benchResult{}, err
	}
	if err := game.Start(rc.Map); err != nil {
		return benchResult{}, err
	}
	startMap := game.MapName()

	screen := core.NewScreen(rc.GridW*2+1, rc.GridH+2)
	rend := render.New(screen, theme)

	outcome := outcomeLimit
	frames := 0
	start := time.Now()
loop:
	for frames < maxTicks {
		frames++
		switch game.Frame() {
		case snake.Collision:
			outcome = outcomeCollision
			break loop
		case snake.Stuck:
			outcome = outcomeStuck
			break loop
		}
		if err := rend.Flush(game.World().Grid, game.State()); err != nil {
			return benchResult{}, err
		}
	}

	snap := game.Snapshot()
	logger.Debug("bench run ended",
		"state", snap.State, "map", snap.Map, "head_x", snap.HeadX, "head_y", snap.HeadY,
		"dir", snap.Dir, "star_bonus", snap.StarBonus)
	return benchResult{
		Run: storage.Run{
			Seed:    rc.Seed,
			Map:     startMap,
			Speed:   rc.Speed,
			Cleared: snap.Cleared,
			Score:   snap.Score,
			Length:  snap.Length,
			Ticks:   int64(snap.Tick),
			Outcome: outcome,
		},
		Frames:      frames,
		FullRedraws: rend.FullRedraws(),
		Elapsed:     time.Since(start),
	}, nil
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("map") {
		cfg.Play.Map = flagBenchMap
	}
	cfg.Play.Speed = flagBenchSpeed
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Play.Map != "" && !snake.Maps.Exists(cfg.Play.Map) {
		return fmt.Errorf("unknown map %q (try 'snake list maps')", cfg.Play.Map)
	}
	if flagBenchRuns < 1 || flagBenchTicks < 1 {
		return fmt.Errorf("--runs and --max-ticks must be positive")
	}

	logger, closeLog, err := newLogger(os.Stderr, "snake-bench")
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := render.Themes.Get(cfg.Play.Theme)
	if err != nil {
		return err
	}

	var store *storage.Store
	if !flagBenchNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	rc := cfg.ToRuntime()
	base := seed()

	fmt.Printf("  %-4s  %-20s  %-9s  %-9s  %7s  %5s  %7s  %4s  %5s  %8s\n",
		"Run", "Seed", "Map", "Outcome", "Score", "Len", "Ticks", "Maps", "Full%", "Time")

	var totalScore, totalTicks int64
	for i := range flagBenchRuns {
		rc.Seed = base + int64(i)
		res, err := benchOne(rc, theme, logger, flagBenchTicks)
		if err != nil {
			return err
		}
		r := res.Run
		totalScore += int64(r.Score)
		totalTicks += r.Ticks

		full := 100 * float64(res.FullRedraws) / float64(max(res.Frames, 1))
		fmt.Printf("  %-4d  %-20d  %s  %-9s  %7d  %5d  %7d  %4d  %5.1f  %8s\n",
			i+1, r.Seed, pad(r.Map, 9), r.Outcome, r.Score, r.Length, r.Ticks, r.Cleared,
			full, res.Elapsed.Round(time.Millisecond))

		if store != nil {
			if _, err := store.SaveRun(r); err != nil {
				return err
			}
		}
		logger.Debug("bench run done", "run", i+1, "seed", r.Seed, "outcome", r.Outcome)
	}

	n := int64(flagBenchRuns)
	fmt.Printf("\n%d runs  avg score %d  avg ticks %d\n", n, totalScore/n, totalTicks/n)
	if store != nil {
		fmt.Println("Recorded in the run journal; see 'snake runs'.")
	}
	return nil
}
