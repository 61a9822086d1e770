package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// keyHoldWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key releases, so this stands in for one.
const keyHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action and whether it's a quit request. Keys without a
// binding map to ActionOther so they still count as "a key was pressed".
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionOther, false
}

// opposite returns the action that cancels a held direction.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	default:
		return core.ActionNone
	}
}

// HeldKeys accumulates key presses between frames and emulates held keys.
type HeldKeys struct {
	pressed  map[core.Action]bool
	lastSeen map[core.Action]time.Time
	window   time.Duration
}

// NewHeldKeys creates an empty key state using keyHoldWindow.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		pressed:  make(map[core.Action]bool),
		lastSeen: make(map[core.Action]time.Time),
		window:   keyHoldWindow,
	}
}

// Press records a key press or auto-repeat at the given time.
// Pressing a direction releases the opposite one.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.pressed[a] = true
	h.lastSeen[a] = now
	if o := opposite(a); o != core.ActionNone {
		delete(h.lastSeen, o)
	}
}

// Frame returns the input for a frame ending at now and clears the
// pending presses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range h.pressed {
		frame.Set(a)
	}
	for a, seen := range h.lastSeen {
		if now.Sub(seen) < h.window {
			frame.Hold(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	clear(h.pressed)
	return frame
}
