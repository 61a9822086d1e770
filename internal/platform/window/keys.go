package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// bindings maps each action to its physical keys.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyK},
	core.ActionDown:    {ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeyJ},
	core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyH},
	core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight, ebiten.KeyL},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace},
	core.ActionBack:    {ebiten.KeyB, ebiten.KeyEscape},
	core.ActionQuit:    {ebiten.KeyQ},
}

// actionOf returns the action bound to k, or ActionOther.
func actionOf(k ebiten.Key) core.Action {
	for action, keys := range bindings {
		for _, bound := range keys {
			if bound == k {
				return action
			}
		}
	}
	return core.ActionOther
}

// readInput builds the input frame from the keyboard state of this tick.
func readInput(buf []ebiten.Key) (core.InputFrame, []ebiten.Key) {
	in := core.NewInputFrame()

	buf = inpututil.AppendJustPressedKeys(buf[:0])
	for _, k := range buf {
		in.Set(actionOf(k))
	}

	for action, keys := range bindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Hold(action)
				break
			}
		}
	}
	return in, buf
}
