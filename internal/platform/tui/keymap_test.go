package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
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
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"unbound letter", runeKey('x'), core.ActionOther, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionOther, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)

	f := h.Frame(t0.Add(10 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.IsHeld(core.ActionLeft) {
		t.Fatalf("first frame: just pressed %v, held %v", f.Has(core.ActionLeft), f.IsHeld(core.ActionLeft))
	}

	f = h.Frame(t0.Add(100 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("a press must only be reported once")
	}
	if !f.IsHeld(core.ActionLeft) {
		t.Error("key released inside the hold window")
	}

	f = h.Frame(t0.Add(keyHoldWindow))
	if f.IsHeld(core.ActionLeft) {
		t.Error("key still held after the hold window")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Frame(t0)
	h.Press(core.ActionRight, t0.Add(120*time.Millisecond))

	f := h.Frame(t0.Add(200 * time.Millisecond))
	if !f.IsHeld(core.ActionRight) {
		t.Error("auto-repeat did not extend the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(5*time.Millisecond))

	f := h.Frame(t0.Add(10 * time.Millisecond))
	if f.IsHeld(core.ActionLeft) || !f.IsHeld(core.ActionRight) {
		t.Errorf("held left=%v right=%v, expected only right", f.IsHeld(core.ActionLeft), f.IsHeld(core.ActionRight))
	}
	// Both presses still happened this frame.
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Error("presses were dropped")
	}
}

func TestHeldKeysIgnoresNone(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionNone, time.Now())
	if f := h.Frame(time.Now()); f.Any() {
		t.Error("ActionNone registered as a press")
	}
}

func TestFrameTime(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name      string
		prev, now time.Time
		want      time.Duration
	}{
		{"first frame", time.Time{}, t0, 0},
		{"normal", t0, t0.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"stall", t0, t0.Add(5 * time.Second), maxFrameTime},
		{"clock went back", t0, t0.Add(-time.Second), 0},
	}

	for _, tc := range tests {
		if got := frameTime(tc.prev, tc.now); got != tc.want {
			t.Errorf("%s: frameTime() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
