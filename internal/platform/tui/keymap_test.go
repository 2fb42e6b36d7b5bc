package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestKeyMapAbsolute(t *testing.T) {
	keys := NewKeyMap(core.InputAbsolute)

	tests := []struct {
		name string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"k", core.ActionUp},
		{"8", core.ActionUp},
		{"down", core.ActionDown},
		{"5", core.ActionDown},
		{"2", core.ActionDown},
		{"h", core.ActionLeft},
		{"d", core.ActionRight},
		{" ", core.ActionPause},
		{"p", core.ActionPause},
		{"tab", core.ActionAutoplay},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"ctrl+s", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.name); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeyMapRelative(t *testing.T) {
	keys := NewKeyMap(core.InputRelative)

	if !keys.Relative() {
		t.Fatal("Relative() = false, expected true")
	}

	tests := []struct {
		name string
		want core.Action
	}{
		{"up", core.ActionTurnRight},
		{"down", core.ActionTurnLeft},
		{"k", core.ActionNone},
		{"left", core.ActionNone},
		{"p", core.ActionPause},
		{"q", core.ActionQuit},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.name); got != tt.want {
			t.Errorf("Action(%q) = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyMapWheel(t *testing.T) {
	abs := NewKeyMap(core.InputAbsolute)
	rel := NewKeyMap(core.InputRelative)

	if got := abs.Wheel(true); got != core.ActionNone {
		t.Errorf("absolute Wheel(true) = %v, expected %v", got, core.ActionNone)
	}
	if got := rel.Wheel(true); got != core.ActionTurnRight {
		t.Errorf("relative Wheel(true) = %v, expected %v", got, core.ActionTurnRight)
	}
	if got := rel.Wheel(false); got != core.ActionTurnLeft {
		t.Errorf("relative Wheel(false) = %v, expected %v", got, core.ActionTurnLeft)
	}

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	if got := rel.MapMouse(press); got != core.ActionTurnLeft {
		t.Errorf("MapMouse(wheel down) = %v, expected %v", got, core.ActionTurnLeft)
	}
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if got := rel.MapMouse(click); got != core.ActionNone {
		t.Errorf("MapMouse(left click) = %v, expected %v", got, core.ActionNone)
	}
}

func TestMapKey(t *testing.T) {
	keys := NewKeyMap(core.InputAbsolute)

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionAutoplay},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestTcellKeyNames(t *testing.T) {
	keys := NewKeyMap(core.InputAbsolute)

	tests := []struct {
		ev   *tcell.EventKey
		want core.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.ActionDown},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionPause},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.ActionAutoplay},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
	}

	for _, tt := range tests {
		if got := eventAction(keys, tt.ev); got != tt.want {
			t.Errorf("eventAction(%q) = %v, expected %v", keyName(tt.ev), got, tt.want)
		}
	}

	rel := NewKeyMap(core.InputRelative)
	wheel := tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)
	if got := eventAction(rel, wheel); got != core.ActionTurnRight {
		t.Errorf("eventAction(wheel up) = %v, expected %v", got, core.ActionTurnRight)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionToggle},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
