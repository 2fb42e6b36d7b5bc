package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap translates key names to game actions. Key names are Bubble Tea's
// (msg.String()); the tcell frontend produces the same names.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	TurnLeft  key.Binding
	TurnRight key.Binding

	Pause      key.Binding
	Autoplay   key.Binding
	Screenshot key.Binding
	Suspend    key.Binding
	Quit       key.Binding
}

// NewKeyMap returns the bindings for an input mode. Absolute mode maps
// keys to compass headings; relative mode maps up and down (and the mouse
// wheel) to right and left turns.
func NewKeyMap(mode core.InputMode) KeyMap {
	relative := mode == core.InputRelative
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "w", "up", "8"),
			key.WithHelp("↑/k/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "s", "down", "5", "2"),
			key.WithHelp("↓/j/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "a", "left", "4"),
			key.WithHelp("←/h/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "d", "right", "6"),
			key.WithHelp("→/l/d", "right"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("wheel↓", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("wheel↑", "turn right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "autoplay"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}.withMode(relative)
}

func (k KeyMap) withMode(relative bool) KeyMap {
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Left, &k.Right} {
		b.SetEnabled(!relative)
	}
	k.TurnLeft.SetEnabled(relative)
	k.TurnRight.SetEnabled(relative)
	return k
}

// Relative reports whether the map is in relative mode.
func (k KeyMap) Relative() bool {
	return k.TurnLeft.Enabled()
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Autoplay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.TurnLeft, k.TurnRight},
		{k.Pause, k.Autoplay, k.Screenshot, k.Quit},
	}
}

func matches(b key.Binding, name string) bool {
	return b.Enabled() && slices.Contains(b.Keys(), name)
}

// Action returns the game action bound to a key name. Screenshot and
// suspend are frontend concerns and map to ActionNone.
func (k KeyMap) Action(name string) core.Action {
	switch {
	case matches(k.Quit, name):
		return core.ActionQuit
	case matches(k.Pause, name):
		return core.ActionPause
	case matches(k.Autoplay, name):
		return core.ActionAutoplay
	case matches(k.Up, name):
		return core.ActionUp
	case matches(k.Down, name):
		return core.ActionDown
	case matches(k.Left, name):
		return core.ActionLeft
	case matches(k.Right, name):
		return core.ActionRight
	case matches(k.TurnLeft, name):
		return core.ActionTurnLeft
	case matches(k.TurnRight, name):
		return core.ActionTurnRight
	}
	return core.ActionNone
}

// MapKey translates a Bubble Tea key message.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	return k.Action(msg.String())
}

// Wheel returns the action for a mouse wheel notch; up is true for a
// notch away from the user. Only relative mode steers with the wheel.
func (k KeyMap) Wheel(up bool) core.Action {
	if !k.Relative() {
		return core.ActionNone
	}
	if up {
		return core.ActionTurnRight
	}
	return core.ActionTurnLeft
}

// MapMouse translates a Bubble Tea mouse message.
func (k KeyMap) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return k.Wheel(true)
	case tea.MouseButtonWheelDown:
		return k.Wheel(false)
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionToggle
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionToggle
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
