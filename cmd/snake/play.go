package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render"
)

const (
	backendBubbletea = "bubbletea"
	backendTcell     = "tcell"
)

var (
	flagSpeed    string
	flagTheme    string
	flagMap      string
	flagMouse    bool
	flagAutoplay bool
	flagBackend  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start playing. Without --map a picker lets you choose a map (or a
marathon over random maps), the speed and autoplay, and comes back after
every run.

Controls:
  Arrows/hjkl/wasd/8426  - Steer
  Space/P                - Pause, or leave the end screen
  Tab                    - Toggle autoplay
  Ctrl+S                 - Save a screenshot
  Ctrl+Z                 - Suspend (bubbletea backend)
  Q/Ctrl+C               - Quit

With --mouse, up/wheel up turns right and down/wheel down turns left.

Pass 'help' to --speed, --theme or --map to list the choices.

Examples:
  snake play
  snake play --map CROSS --speed 9
  snake play --autoplay --backend tcell
  snake play --theme help`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&flagSpeed, "speed", "s", "", "Speed 1-9 (default from config)")
	f.StringVarP(&flagTheme, "theme", "t", "", "Glyph theme (default from config)")
	f.StringVarP(&flagMap, "map", "m", "", "Play this map and skip the picker")
	f.BoolVarP(&flagMouse, "mouse", "M", false, "Relative steering with the mouse wheel")
	f.BoolVarP(&flagAutoplay, "autoplay", "a", false, "Start with autoplay on")
	f.StringVar(&flagBackend, "backend", backendBubbletea, "Terminal backend: bubbletea or tcell")
}

// listRequested prints the choices for a flag given the value "help".
func listRequested(cfg config.SnakeConfig) bool {
	switch {
	case flagSpeed == "help":
		printSpeeds(os.Stdout, cfg.Speeds)
	case flagTheme == "help":
		printThemes(os.Stdout)
	case flagMap == "help":
		printMaps(os.Stdout)
	default:
		return false
	}
	return true
}

// applyPlayFlags overrides config values with the flags the user set.
func applyPlayFlags(cmd *cobra.Command, cfg *config.SnakeConfig) error {
	f := cmd.Flags()
	if f.Changed("speed") {
		n, err := strconv.Atoi(flagSpeed)
		if err != nil {
			return fmt.Errorf("--speed: %q is not a number (try --speed help)", flagSpeed)
		}
		cfg.Play.Speed = n
	}
	if f.Changed("theme") {
		cfg.Play.Theme = flagTheme
	}
	if f.Changed("map") {
		cfg.Play.Map = flagMap
	}
	if f.Changed("mouse") && flagMouse {
		cfg.Play.Input = core.InputRelative
	}
	if f.Changed("autoplay") {
		cfg.Play.Autoplay = flagAutoplay
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if !render.Themes.Exists(cfg.Play.Theme) {
		return fmt.Errorf("unknown theme %q (try --theme help)", cfg.Play.Theme)
	}
	if cfg.Play.Map != "" && !snake.Maps.Exists(cfg.Play.Map) {
		return fmt.Errorf("unknown map %q (try --map help)", cfg.Play.Map)
	}
	if flagBackend != backendBubbletea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (bubbletea or tcell)", flagBackend)
	}
	return nil
}

// checkTerminal makes sure the field, its border and the status line fit.
// Without a terminal the check is skipped and the backend reports the
// problem.
func checkTerminal(rc *core.RuntimeConfig) error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil
	}
	rc.ScreenW, rc.ScreenH = w, h
	needW, needH := rc.GridW*2+1, rc.GridH+2
	if w < needW || h < needH {
		return fmt.Errorf("terminal is %dx%d, the %dx%d field needs at least %dx%d",
			w, h, rc.GridW, rc.GridH, needW, needH)
	}
	return nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listRequested(cfg) {
		return nil
	}
	if err := applyPlayFlags(cmd, &cfg); err != nil {
		return err
	}

	rc := cfg.ToRuntime()
	rc.Seed = seed()
	if err := checkTerminal(&rc); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := render.Themes.Get(rc.Theme)
	if err != nil {
		return err
	}
	opts := tui.Options{
		Theme:         theme,
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	}

	// A map on the command line means one run and no picker.
	if cmd.Flags().Changed("map") {
		opts.Config = rc
		_, err := playOnce(opts)
		return err
	}

	var last *tui.Result
	for {
		pick, err := tui.RunPicker(rc, last)
		if err != nil {
			return err
		}
		if pick.Quit {
			return nil
		}
		rc.Map, rc.Speed, rc.Autoplay = pick.Map, pick.Speed, pick.Autoplay

		opts.Config = rc
		res, err := playOnce(opts)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		last = &res
		rc.Seed++
	}
}

// playOnce runs one game on the selected backend.
func playOnce(opts tui.Options) (tui.Result, error) {
	game, err := snake.New(opts.Config, opts.Logger)
	if err != nil {
		return tui.Result{}, err
	}
	if err := game.Start(opts.Config.Map); err != nil {
		return tui.Result{}, err
	}
	opts.Logger.Info("run started",
		"map", game.MapName(), "seed", opts.Config.Seed,
		"speed", opts.Config.Speed, "autoplay", opts.Config.Autoplay, "backend", flagBackend)

	var res tui.Result
	if flagBackend == backendTcell {
		res, err = tui.RunTcell(game, opts)
	} else {
		res, err = tui.Run(game, opts)
	}
	if err != nil {
		return res, err
	}
	opts.Logger.Info("run finished",
		"map", res.Map, "outcome", res.Outcome, "score", res.Score,
		"length", res.Length, "cleared", res.Cleared, "quit", res.Quit)
	return res, nil
}
