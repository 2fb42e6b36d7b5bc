package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Options configures a play session.
type Options struct {
	Config        core.RuntimeConfig
	Theme         *render.Theme
	Logger        *log.Logger
	ScreenshotDir string           // Empty disables screenshots
	Now           func() time.Time // Clock for the scheduler, nil for time.Now
}

// Result describes how a session ended.
type Result struct {
	Map     string // Map being played when the session ended
	Score   int
	Length  int
	Cleared int
	Ticks   uint64
	Outcome snake.Outcome // Collision, or Continue when the player quit
	Quit    bool          // The player asked to leave the program
}

// Session runs one game on one canvas. Both frontends drive it: they feed
// it actions and wake it when the scheduler's timeout expires.
type Session struct {
	game   *snake.Game
	canvas render.Canvas
	rend   *render.Renderer
	sched  *Scheduler
	log    *log.Logger

	screenshotDir string

	waiting bool // run over, waiting for the player to acknowledge
	done    bool
	result  Result
}

// NewSession wires a started game to a canvas.
func NewSession(game *snake.Game, canvas render.Canvas, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:          game,
		canvas:        canvas,
		rend:          render.New(canvas, opts.Theme),
		sched:         NewScheduler(opts.Now),
		log:           logger,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Start draws the first frame and anchors the cadence.
func (s *Session) Start() error {
	s.sched.Start()
	s.syncPause()
	return s.draw()
}

// Timeout returns how long to wait for input before the next frame. ok is
// false while the game is paused or the run is over.
func (s *Session) Timeout() (time.Duration, bool) {
	if s.done || s.waiting {
		return 0, false
	}
	return s.sched.Timeout(s.game.FrameDuration())
}

// Tick runs one frame: steer and step the game, then draw it.
func (s *Session) Tick() error {
	if s.done || s.waiting || s.sched.Paused() {
		return nil
	}
	// The frame that fires is the one the deadline was computed for.
	frame := s.game.FrameDuration()

	switch s.game.Frame() {
	case snake.Collision:
		s.finish(snake.Collision)
		if !s.game.State().Autoplay {
			s.waiting = true
		} else {
			s.done = true
		}
	case snake.Stuck:
		s.syncPause()
	}

	if err := s.draw(); err != nil {
		return err
	}
	s.sched.Fired(frame)
	return nil
}

// Act applies a player action.
func (s *Session) Act(a core.Action) {
	switch {
	case a == core.ActionQuit:
		if !s.waiting {
			s.finish(snake.Continue)
		}
		s.result.Quit = true
		s.done = true
	case s.waiting:
		if a == core.ActionPause {
			s.waiting = false
			s.done = true
		}
	case a != core.ActionNone:
		s.game.Handle(a)
		s.syncPause()
	}
}

// syncPause follows the game's pause state; resuming re-anchors the
// cadence to now.
func (s *Session) syncPause() {
	switch paused := s.game.State().Paused; {
	case paused && !s.sched.Paused():
		s.sched.Pause()
	case !paused && s.sched.Paused():
		s.sched.Resume()
	}
}

// Paused reports whether the frame cadence is suspended.
func (s *Session) Paused() bool {
	return s.sched.Paused() || s.waiting
}

// Redraw forces a full repaint, for resize and resume from suspend.
func (s *Session) Redraw() error {
	s.game.World().Grid.Damage().Invalidate()
	return s.draw()
}

func (s *Session) draw() error {
	w := s.game.World()
	return s.rend.Flush(w.Grid, s.game.State())
}

func (s *Session) finish(o snake.Outcome) {
	w := s.game.World()
	s.result = Result{
		Map:     s.game.MapName(),
		Score:   w.Score,
		Length:  w.Length(),
		Cleared: s.game.Cleared(),
		Ticks:   w.Ticks,
		Outcome: o,
	}
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.done
}

// Result returns how the session ended.
func (s *Session) Result() Result {
	return s.result
}

// Screenshot writes the current field and status as plain text and
// returns the file path.
func (s *Session) Screenshot() (string, error) {
	if s.screenshotDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(s.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	w := s.game.World()
	screen := render.Snapshot(w.Grid, s.rend.Theme(), s.game.State())

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(s.screenshotDir, fmt.Sprintf("snake_%s_%s.txt", s.game.MapName(), timestamp))
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	s.log.Info("screenshot saved", "path", path)
	return path, nil
}

// DefaultScreenshotDir returns ~/.snake/screenshots, or empty if home is
// unavailable.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "screenshots")
}
