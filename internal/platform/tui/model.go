package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Model is the Bubble Tea model for a play session. The program runs
// without Bubble Tea's renderer: frames go straight to the terminal
// through the damage renderer, so View is empty.
type Model struct {
	session *Session
	canvas  *render.ANSICanvas
	keys    KeyMap
	gen     int // generation of the outstanding tick
	err     error
}

// NewModel creates a model drawing to canvas.
func NewModel(game *snake.Game, canvas *render.ANSICanvas, opts Options) Model {
	return Model{
		session: NewSession(game, canvas, opts),
		canvas:  canvas,
		keys:    NewKeyMap(opts.Config.Input),
	}
}

// Init draws the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.session.Start(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	// Init cannot hand back a model, so the first tick uses generation 0.
	d, ok := m.session.Timeout()
	if !ok {
		return nil
	}
	return tickCmd(d, m.gen)
}

type errMsg struct{ err error }

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.act(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.check(m.session.Redraw())

	case tea.ResumeMsg:
		if err := m.canvas.Enter(); err != nil {
			return m.fail(err)
		}
		return m.check(m.session.Redraw())

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if err := m.session.Tick(); err != nil {
			return m.fail(err)
		}
		if m.session.Done() {
			return m, tea.Quit
		}
		cmd := m.schedule()
		return m, cmd

	case errMsg:
		return m.fail(msg.err)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(m.keys.Screenshot, msg.String()):
		if _, err := m.session.Screenshot(); err != nil {
			m.session.log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	case matches(m.keys.Suspend, msg.String()):
		if err := m.canvas.Leave(); err != nil {
			return m.fail(err)
		}
		return m, tea.Suspend
	}
	return m.act(m.keys.MapKey(msg))
}

// act applies an action. Input leaves an outstanding tick alone unless it
// paused or resumed the cadence.
func (m Model) act(a core.Action) (tea.Model, tea.Cmd) {
	if a == core.ActionNone {
		return m, nil
	}
	wasPaused := m.session.Paused()
	m.session.Act(a)
	if m.session.Done() {
		return m, tea.Quit
	}

	switch paused := m.session.Paused(); {
	case paused && !wasPaused:
		m.gen++ // drop the outstanding tick
	case !paused && wasPaused:
		cmd := m.schedule()
		return m, cmd
	}
	return m, nil
}

// schedule starts a new tick generation for the next deadline.
func (m *Model) schedule() tea.Cmd {
	m.gen++
	d, ok := m.session.Timeout()
	if !ok {
		return nil
	}
	return tickCmd(d, m.gen)
}

func (m Model) check(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	return m, tea.Quit
}

// View is empty; see Model.
func (m Model) View() string {
	return ""
}

// Run plays one session in a Bubble Tea program and returns how it ended.
func Run(game *snake.Game, opts Options) (Result, error) {
	canvas := render.NewANSICanvas(os.Stdout)
	if err := canvas.Enter(); err != nil {
		return Result{}, err
	}

	progOpts := []tea.ProgramOption{tea.WithoutRenderer()}
	if opts.Config.Input == core.InputRelative {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(NewModel(game, canvas, opts), progOpts...)
	finalModel, err := p.Run()

	if leaveErr := canvas.Leave(); err == nil {
		err = leaveErr
	}
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Quit: true}, nil
	}
	if m.err != nil {
		return m.session.Result(), fmt.Errorf("tui: %w", m.err)
	}
	return m.session.Result(), nil
}
