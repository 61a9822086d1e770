package breakout

// AppKind names the top-level screen.
type AppKind int

const (
	AppMenu AppKind = iota
	AppGame
	AppGameOver
	AppWin
)

// String returns a human-readable screen name.
func (k AppKind) String() string {
	switch k {
	case AppMenu:
		return "menu"
	case AppGame:
		return "game"
	case AppGameOver:
		return "game_over"
	case AppWin:
		return "win"
	default:
		return "unknown"
	}
}

// Phase is the game sub-state. It only exists inside GameScreen.
type Phase int

const (
	PhaseDisabled Phase = iota
	PhaseStarting
	PhasePlaying
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDisabled:
		return "disabled"
	case PhaseStarting:
		return "starting"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// AppState is the current screen. The set of implementations is closed:
// *MenuScreen, *GameScreen, *GameOverScreen and *WinScreen.
type AppState interface {
	Kind() AppKind
	owned() *Owned
}

// MenuScreen is the main menu and its settings pages.
type MenuScreen struct {
	Page   MenuPage
	Cursor int
	ui     Owned
}

// GameScreen is an active session.
type GameScreen struct {
	Phase     Phase
	Countdown *Countdown // nil once the overlay is gone

	ball, paddle  EntityID
	score, lives  EntityID
	countdownText EntityID

	entities Owned
	overlay  Owned
}

// GameOverScreen is shown after the last life is lost.
type GameOverScreen struct {
	Score int
	ui    Owned
}

// WinScreen is shown after the last brick is destroyed.
type WinScreen struct {
	Score int
	ui    Owned
}

func (s *MenuScreen) Kind() AppKind     { return AppMenu }
func (s *GameScreen) Kind() AppKind     { return AppGame }
func (s *GameOverScreen) Kind() AppKind { return AppGameOver }
func (s *WinScreen) Kind() AppKind      { return AppWin }

func (s *MenuScreen) owned() *Owned     { return &s.ui }
func (s *GameScreen) owned() *Owned     { return &s.entities }
func (s *GameOverScreen) owned() *Owned { return &s.ui }
func (s *WinScreen) owned() *Owned      { return &s.ui }

// PhaseOf returns the game sub-state, which is PhaseDisabled on every
// screen other than the game.
func PhaseOf(s AppState) Phase {
	if g, ok := s.(*GameScreen); ok {
		return g.Phase
	}
	return PhaseDisabled
}
