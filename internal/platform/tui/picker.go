package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// MarathonEntry is the picker label for a run that starts on a random map.
const MarathonEntry = "MARATHON"

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pickerDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// pickerHelp lists the picker keys. MapKeyToMenuAction does the matching;
// these bindings only feed the help line.
var pickerHelp = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "map")),
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "speed")),
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "autoplay")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
	key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

// PickerResult is what the player chose.
type PickerResult struct {
	Map      string // Empty for a marathon on random maps
	Speed    int
	Autoplay bool
	Quit     bool
}

// PickerModel is the Bubble Tea model for the map picker shown between runs.
type PickerModel struct {
	items    []string
	cursor   int
	speed    int
	autoplay bool
	last     *Result
	width    int
	height   int
	help     help.Model
	chosen   bool
	quitting bool
}

// NewPickerModel creates a picker preselecting cfg's map, speed and
// autoplay. last, if not nil, is summarized under the list.
func NewPickerModel(cfg core.RuntimeConfig, last *Result) PickerModel {
	items := append([]string{MarathonEntry}, snake.Maps.Names()...)
	m := PickerModel{
		items:    items,
		speed:    core.Clamp(cfg.Speed, core.MinSpeed, core.MaxSpeed),
		autoplay: cfg.Autoplay,
		last:     last,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		help:     help.New(),
	}
	for i, name := range items {
		if name == cfg.Map {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.speed = max(m.speed-1, core.MinSpeed)
	case MenuActionRight:
		m.speed = min(m.speed+1, core.MaxSpeed)
	case MenuActionToggle:
		m.autoplay = !m.autoplay
	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	for i, name := range m.items {
		line := "  " + name
		if i == m.cursor {
			line = pickerCursorStyle.Render("> " + name)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	mode := "manual"
	if m.autoplay {
		mode = "autoplay"
	}
	b.WriteString(centerText(fmt.Sprintf("speed %d  %s", m.speed, mode), m.width))
	b.WriteString("\n")

	if m.last != nil {
		b.WriteString(centerText(pickerDimStyle.Render(lastRunLine(*m.last)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(pickerHelp), m.width))
	b.WriteString("\n")
	return b.String()
}

func lastRunLine(r Result) string {
	line := fmt.Sprintf("last run: %s  score %d  length %d", r.Map, r.Score, r.Length)
	if r.Cleared > 0 {
		line += fmt.Sprintf("  maps cleared %d", r.Cleared)
	}
	return line
}

// Result returns the selection. Quit is set when the player left the
// picker without choosing.
func (m PickerModel) Result() PickerResult {
	if !m.chosen {
		return PickerResult{Speed: m.speed, Autoplay: m.autoplay, Quit: true}
	}
	name := m.items[m.cursor]
	if name == MarathonEntry {
		name = ""
	}
	return PickerResult{Map: name, Speed: m.speed, Autoplay: m.autoplay}
}

// centerText centers text within width display columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPicker shows the picker on the alternate screen.
func RunPicker(cfg core.RuntimeConfig, last *Result) (PickerResult, error) {
	p := tea.NewProgram(NewPickerModel(cfg, last), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Quit: true}, fmt.Errorf("tui: picker: %w", err)
	}
	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Quit: true}, nil
	}
	return m.Result(), nil
}
