package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxRuns = 100 // rows loaded per view

// RunSource is the part of the run journal the browser reads.
type RunSource interface {
	RecentRuns(limit int) ([]storage.Run, error)
	TopRuns(name string, limit int) ([]storage.Run, error)
	Stats() (*storage.Stats, error)
}

type runsView int

const (
	viewRecent runsView = iota
	viewTop
)

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextMap key.Binding
	PrevMap key.Binding
	View    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.View, k.NextMap, k.PrevMap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.View, k.NextMap, k.PrevMap, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMap: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next map"),
		),
		PrevMap: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev map"),
		),
		View: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run journal browser.
type RunsModel struct {
	source RunSource
	view   runsView
	maps   []string // "" first, for all maps
	mapIdx int
	runs   []storage.Run
	stats  *storage.Stats
	err    error
	table  table.Model
	help   help.Model
	keys   RunsKeyMap
	width  int
	height int
}

// NewRunsModel creates a browser over source showing the recent runs.
func NewRunsModel(source RunSource, width, height int) RunsModel {
	m := RunsModel{
		source: source,
		maps:   append([]string{""}, snake.Maps.Names()...),
		help:   help.New(),
		keys:   DefaultRunsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Map", Width: 9},
		{Title: "Score", Width: 7},
		{Title: "Len", Width: 5},
		{Title: "Ticks", Width: 8},
		{Title: "Outcome", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// mapFilter returns the map the top view is restricted to, empty for all.
func (m RunsModel) mapFilter() string {
	return m.maps[m.mapIdx]
}

func (m *RunsModel) load() {
	m.err = nil
	if m.source == nil {
		m.runs = nil
		m.updateRows()
		return
	}

	var err error
	switch m.view {
	case viewTop:
		m.runs, err = m.source.TopRuns(m.mapFilter(), maxRuns)
	default:
		m.runs, err = m.source.RecentRuns(maxRuns)
	}
	if err == nil {
		m.stats, err = m.source.Stats()
	}
	if err != nil {
		m.runs = nil
		m.err = err
	}
	m.updateRows()
}

func (m *RunsModel) updateRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Map,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			r.Outcome,
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.View):
			if m.view == viewRecent {
				m.view = viewTop
			} else {
				m.view = viewRecent
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.NextMap):
			if m.view == viewTop {
				m.mapIdx = (m.mapIdx + 1) % len(m.maps)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMap):
			if m.view == viewTop {
				m.mapIdx = (m.mapIdx + len(m.maps) - 1) % len(m.maps)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RunsModel) title() string {
	if m.view == viewRecent {
		return "RECENT RUNS"
	}
	name := m.mapFilter()
	if name == "" {
		name = "ALL MAPS"
	}
	return "TOP RUNS - " + name
}

func statsLine(s *storage.Stats) string {
	if s == nil || s.Runs == 0 {
		return "no runs recorded"
	}
	return fmt.Sprintf("%d runs  best %d  avg score %.1f  avg ticks %.0f  collisions %d  stuck %d",
		s.Runs, s.BestScore, s.AvgScore, s.AvgTicks, s.Collisions, s.Stuck)
}

// View renders the browser.
func (m RunsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(statsLine(m.stats)), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("error: " + m.err.Error())
	case len(m.runs) == 0:
		content = dimStyle.Italic(true).Padding(1, 4).Render("No runs recorded yet.\nRun 'snake bench' to fill the journal.")
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(content)))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunBrowser shows the run journal browser on the alternate screen.
func RunBrowser(source RunSource, width, height int) error {
	p := tea.NewProgram(NewRunsModel(source, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: runs: %w", err)
	}
	return nil
}
