package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Recorder watches the per-frame game state and saves each finished
// session exactly once. A nil store only logs.
type Recorder struct {
	store   *Store
	gameID  string
	player  string
	session string
	logger  *log.Logger
	saved   bool
}

// NewRecorder creates a recorder for one player's sessions of gameID.
func NewRecorder(store *Store, gameID, player, session string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:   store,
		gameID:  gameID,
		player:  player,
		session: session,
		logger:  logger,
	}
}

// Observe is called once per frame. It saves when the game enters its
// game over state and re-arms once a new session starts. It reports
// whether a result was written.
func (r *Recorder) Observe(st core.GameState) bool {
	if !st.GameOver {
		r.saved = false
		return false
	}
	if r.saved {
		return false
	}
	r.saved = true

	outcome := OutcomeGameOver
	if st.Won {
		outcome = OutcomeWin
	}

	logger := r.logger.With("game", r.gameID, "score", st.Score, "outcome", outcome)
	if r.store == nil {
		logger.Debug("session finished, no score storage")
		return false
	}

	_, err := r.store.SaveResult(Result{
		GameID:  r.gameID,
		Player:  r.player,
		Session: r.session,
		Score:   st.Score,
		Lives:   st.Lives,
		Outcome: outcome,
	})
	if err != nil {
		// The game goes on without persistence.
		logger.Error("could not save score", "err", err)
		return false
	}
	logger.Info("score saved")
	return true
}
