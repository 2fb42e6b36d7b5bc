package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// tcellCanvas draws glyphs into a tcell screen. tcell keeps its own cell
// buffer and diffs it on Show.
type tcellCanvas struct {
	screen   tcell.Screen
	row, col int
	styles   map[core.Glyph]tcell.Style
}

func newTcellCanvas(s tcell.Screen) *tcellCanvas {
	return &tcellCanvas{screen: s, styles: make(map[core.Glyph]tcell.Style)}
}

func (c *tcellCanvas) Clear() {
	c.screen.Clear()
	c.row, c.col = 0, 0
}

func (c *tcellCanvas) MoveTo(row, col int) {
	c.row, c.col = row, col
}

func (c *tcellCanvas) Put(g core.Glyph) {
	st, ok := c.styles[g]
	if !ok {
		st = tcell.StyleDefault.Bold(g.Bold).Reverse(g.Reverse)
		if n, ok := render.PaletteIndex(g.Color); ok {
			st = st.Foreground(tcell.PaletteColor(n))
		}
		c.styles[g] = st
	}
	for _, r := range g.Text {
		c.screen.SetContent(c.col, c.row, r, nil, st)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		c.col += w
	}
}

func (c *tcellCanvas) Flush() error {
	c.screen.Show()
	return nil
}

// keyName returns the Bubble Tea name of a tcell key event so one KeyMap
// serves both frontends.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyCtrlZ:
		return "ctrl+z"
	}
	return ""
}

// eventAction maps a tcell input event to a game action.
func eventAction(keys KeyMap, ev tcell.Event) core.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keys.Action(keyName(ev))
	case *tcell.EventMouse:
		switch b := ev.Buttons(); {
		case b&tcell.WheelUp != 0:
			return keys.Wheel(true)
		case b&tcell.WheelDown != 0:
			return keys.Wheel(false)
		}
	}
	return core.ActionNone
}

var errInputClosed = errors.New("input stream closed")

// RunTcell plays one session on a tcell screen. It is a single loop that
// waits for either an input event or the frame deadline, whichever comes
// first.
func RunTcell(game *snake.Game, opts Options) (Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return Result{}, fmt.Errorf("tui: tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return Result{}, fmt.Errorf("tui: tcell: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	if opts.Config.Input == core.InputRelative {
		screen.EnableMouse()
	}

	return runLoop(screen, game, opts)
}

func runLoop(screen tcell.Screen, game *snake.Game, opts Options) (Result, error) {
	s := NewSession(game, newTcellCanvas(screen), opts)
	keys := NewKeyMap(opts.Config.Input)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	if err := s.Start(); err != nil {
		return Result{}, err
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for !s.Done() {
		var expired <-chan time.Time
		if d, ok := s.Timeout(); ok {
			timer.Reset(d)
			expired = timer.C
		}

		select {
		case ev, ok := <-events:
			timer.Stop()
			if !ok {
				return s.Result(), fmt.Errorf("tui: %w", errInputClosed)
			}
			if err := handleEvent(s, keys, ev); err != nil {
				return s.Result(), err
			}

		case <-expired:
			if err := s.Tick(); err != nil {
				return s.Result(), err
			}
		}
	}
	return s.Result(), nil
}

func handleEvent(s *Session, keys KeyMap, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return s.Redraw()
	case *tcell.EventKey:
		if matches(keys.Screenshot, keyName(ev)) {
			if _, err := s.Screenshot(); err != nil {
				s.log.Warn("screenshot failed", "err", err)
			}
			return nil
		}
	}
	s.Act(eventAction(keys, ev))
	return nil
}
