package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuPresetCycling(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "asteroids", "")
	if m.Preset() != "normal" {
		t.Fatalf("Preset() = %q, expected %q", m.Preset(), "normal")
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Difficulty row

	tests := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, "hard"},
		{tea.KeyMsg{Type: tea.KeyRight}, "fixed"},
		{tea.KeyMsg{Type: tea.KeyRight}, "easy"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "fixed"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "easy"},
	}
	for _, tt := range tests {
		m = menuUpdate(t, m, tt.msg)
		if m.Preset() != tt.expected {
			t.Errorf("after %q Preset() = %q, expected %q", tt.msg.String(), m.Preset(), tt.expected)
		}
	}
}

func TestMenuInitialPreset(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "asteroids", "hard")
	if m.Preset() != "hard" {
		t.Errorf("Preset() = %q, expected %q", m.Preset(), "hard")
	}
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		play       bool
		scoreboard bool
		quit       bool
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, true, false, false},
		{"scores row", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, false, true, false},
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, false, true, false},
		{"quit row", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, false, false, true},
		{"q", []tea.KeyMsg{runeKey('q')}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig(), "asteroids", "normal")
			for _, k := range tt.keys {
				m = menuUpdate(t, m, k)
			}
			if m.WantsPlay() != tt.play {
				t.Errorf("WantsPlay() = %v, expected %v", m.WantsPlay(), tt.play)
			}
			if m.WantsScoreboard() != tt.scoreboard {
				t.Errorf("WantsScoreboard() = %v, expected %v", m.WantsScoreboard(), tt.scoreboard)
			}
			if m.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tt.quit)
			}
		})
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("asteroids", 340); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig(), "asteroids", "normal")
	if !strings.Contains(m.View(), "High score: 340") {
		t.Error("View() should show the stored high score")
	}
}

func TestScoreboardFilter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: "asteroids", Score: 100, Preset: "easy"},
		{GameID: "asteroids", Score: 200, Preset: "hard"},
		{GameID: "asteroids", Score: 300, Preset: "hard"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, "asteroids", 100, 30)
	if len(m.visible) != 3 {
		t.Fatalf("visible = %d, expected 3 with no filter", len(m.visible))
	}

	// all -> easy -> normal -> hard
	for range 3 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	if len(m.visible) != 2 {
		t.Fatalf("visible = %d, expected 2 hard runs", len(m.visible))
	}
	if m.visible[0].Score != 300 {
		t.Errorf("best hard score = %d, expected 300", m.visible[0].Score)
	}
	if m.stats == nil || m.stats.GamesCount != 3 {
		t.Errorf("stats = %+v, expected 3 games", m.stats)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms       int64
		expected string
	}{
		{0, "0:00"},
		{59_400, "0:59"},
		{61_000, "1:01"},
		{754_000, "12:34"},
	}
	for _, tt := range tests {
		r := storage.Run{DurationMS: tt.ms}
		if got := formatDuration(r.Duration()); got != tt.expected {
			t.Errorf("formatDuration(%dms) = %q, expected %q", tt.ms, got, tt.expected)
		}
	}
}
