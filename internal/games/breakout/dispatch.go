package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Dispatcher turns tick notifications into side effects.
type Dispatcher struct {
	sound  core.SoundPlayer
	logger *log.Logger
}

// NewDispatcher creates a dispatcher. A nil sound player is replaced with a no-op.
func NewDispatcher(sound core.SoundPlayer, logger *log.Logger) *Dispatcher {
	if sound == nil {
		sound = core.NopSound{}
	}
	return &Dispatcher{sound: sound, logger: logger}
}

// Dispatch handles the notifications of one tick, in order.
func (d *Dispatcher) Dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventCollision:
			d.sound.PlayCollision()
			d.logger.Debug("collision", "with", ev.Collider)
		case EventLostLife:
			d.logger.Info("lost life", "lives", ev.Lives, "score", ev.Score)
		case EventGameOver:
			d.logger.Info("game over", "score", ev.Score)
		}
	}
}
