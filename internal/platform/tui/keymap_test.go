package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"w", runeKey('w'), core.ActionThrust, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"n", runeKey('n'), core.ActionNuke, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHeldKeysDecay(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionThrust, t0)

	if f := h.Frame(t0.Add(50 * time.Millisecond)); !f.Has(core.ActionThrust) {
		t.Error("Thrust should be held inside the window")
	}
	if f := h.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionThrust) {
		t.Error("Thrust should be held at the window edge")
	}
	if f := h.Frame(t0.Add(150 * time.Millisecond)); f.Has(core.ActionThrust) {
		t.Error("Thrust should be released after the window")
	}

	// A repeat refreshes the hold.
	h.Press(core.ActionFire, t0)
	h.Press(core.ActionFire, t0.Add(90*time.Millisecond))
	if f := h.Frame(t0.Add(180 * time.Millisecond)); !f.Has(core.ActionFire) {
		t.Error("Fire should stay held after an auto-repeat")
	}
}

func TestHeldKeysOneShot(t *testing.T) {
	h := NewHeldKeys(DefaultHoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionNuke, t0)
	h.Press(core.ActionPause, t0)

	f := h.Frame(t0)
	if !f.Has(core.ActionNuke) || !f.Has(core.ActionPause) {
		t.Error("one-shot actions should appear in the next frame")
	}
	f = h.Frame(t0)
	if f.Has(core.ActionNuke) || f.Has(core.ActionPause) {
		t.Error("one-shot actions should appear exactly once")
	}
}

func TestHeldKeysOppositeTurns(t *testing.T) {
	h := NewHeldKeys(DefaultHoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("Left should be cancelled by a later Right")
	}
	if !f.Has(core.ActionRight) {
		t.Error("Right should be held")
	}

	h.Release()
	if f := h.Frame(t0.Add(20 * time.Millisecond)); f.Has(core.ActionRight) {
		t.Error("Release() should drop held actions")
	}
}
