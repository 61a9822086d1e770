package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var boardGames = []registry.GameInfo{
	{ID: "breakout", Title: "Breakout"},
	{ID: "breakout_hard", Title: "Breakout (Hard)"},
}

func newBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	results := []storage.Result{
		{GameID: "breakout", Player: "ann", Score: 10, Outcome: storage.OutcomeGameOver},
		{GameID: "breakout", Player: "bob", Score: 56, Lives: 2, Outcome: storage.OutcomeWin},
		{GameID: "breakout", Score: 3, Outcome: storage.OutcomeGameOver},
		{GameID: "breakout_hard", Player: "ann", Score: 5, Outcome: storage.OutcomeGameOver},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	return store
}

func sendKey(m ScoreboardModel, msg tea.KeyMsg) (ScoreboardModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(ScoreboardModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestScoreboardRowsRankedByScore(t *testing.T) {
	m := newScoreboard(newBoardStore(t), boardGames, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, expected 3", len(rows))
	}
	want := [][]string{
		{"#1", "56", "cleared", "bob"},
		{"#2", "10", "game over", "ann"},
		{"#3", "3", "game over", "local"},
	}
	for i, w := range want {
		for j, cell := range w {
			if rows[i][j] != cell {
				t.Errorf("rows[%d][%d] = %q, expected %q", i, j, rows[i][j], cell)
			}
		}
	}
}

func TestScoreboardFilterKeepsRanks(t *testing.T) {
	m := newScoreboard(newBoardStore(t), boardGames, 100, 30)

	m, _ = sendKey(m, runes("f"))
	if m.filter != FilterCleared {
		t.Fatalf("filter = %v, expected cleared", m.filter)
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][0] != "#1" {
		t.Errorf("cleared rows = %v", rows)
	}

	m, _ = sendKey(m, runes("f"))
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][0] != "#2" || rows[1][0] != "#3" {
		t.Errorf("game over rows = %v", rows)
	}

	m, _ = sendKey(m, runes("f"))
	if m.filter != FilterAll || len(m.table.Rows()) != 3 {
		t.Errorf("filter did not cycle back to all: %v, %d rows", m.filter, len(m.table.Rows()))
	}
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	m := newScoreboard(newBoardStore(t), boardGames, 100, 30)

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, expected 1", m.cursor)
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != "5" {
		t.Errorf("hard rows = %v", rows)
	}

	// wraps around both ways
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after wrap, expected 0", m.cursor)
	}
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != 1 {
		t.Errorf("cursor = %d after prev, expected 1", m.cursor)
	}
}

func TestScoreboardViewShowsTotals(t *testing.T) {
	m := newScoreboard(newBoardStore(t), boardGames, 120, 30)

	view := m.View()
	for _, want := range []string{
		"HIGH SCORES - Breakout",
		"3 played  1 cleared  best 56",
		"showing all",
		"1 played, best 5",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := newScoreboard(nil, boardGames, 60, 20)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Error("empty board has no hint")
	}
	if !strings.Contains(view, "< Breakout >") {
		t.Error("narrow board has no variant selector")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := newScoreboard(nil, boardGames, 100, 30)

	back, cmd := sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	if cmd == nil || back.View() != "" {
		t.Error("going back should end the program and clear the view")
	}

	quit, _ := sendKey(m, runes("q"))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
