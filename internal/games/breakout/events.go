package breakout

// EventKind classifies tick notifications.
type EventKind int

const (
	EventCollision EventKind = iota
	EventLostLife
	EventGameOver
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventLostLife:
		return "lost_life"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification produced by one simulation tick.
type Event struct {
	Kind     EventKind
	Collider Kind // what the ball hit, for EventCollision
	Lives    int  // lives left after the event
	Score    int  // score after the event
}

// Outcome is the screen change a tick asks for.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeGameOver
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult is everything one simulation tick produced.
type TickResult struct {
	Events  []Event
	Outcome Outcome
}
