package breakout

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Minimum terminal size for the arena to be readable.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by the plain "breakout" variant.
// Variants with a built-in preset ignore it.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements Breakout: a menu, a countdown, the fixed-tick
// simulation, and the game over and win screens.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset
	fixed  *config.BreakoutConfig

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	params  Params
	layout  Layout

	// Entities and screens
	world    *World
	state    AppState
	session  Session
	settings Settings

	// Side effects
	sound    core.SoundPlayer
	logger   *log.Logger
	dispatch *Dispatcher

	accumulator    time.Duration
	ticks          uint64
	quit           bool
	screenTooSmall bool
}

// New creates the standard Breakout game.
func New() *Game {
	return newVariant("breakout", "Breakout", "")
}

// NewEasy creates Breakout with the easy preset.
func NewEasy() *Game {
	return newVariant("breakout_easy", "Breakout (Easy)", config.DifficultyEasy)
}

// NewHard creates Breakout with the hard preset.
func NewHard() *Game {
	return newVariant("breakout_hard", "Breakout (Hard)", config.DifficultyHard)
}

// NewWithConfig creates a game that uses cfg as is instead of searching for
// a config file. cfg must pass config.Validate.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	g := New()
	g.fixed = &cfg
	return g
}

func newVariant(id, title string, preset config.DifficultyPreset) *Game {
	return &Game{
		id:     id,
		title:  title,
		preset: preset,
		sound:  core.NopSound{},
		logger: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetSoundPlayer sets where collision sounds go.
func (g *Game) SetSoundPlayer(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSound{}
	}
	g.sound = p
	g.dispatch = NewDispatcher(g.sound, g.logger)
}

// SetLogger sets the logger for gameplay notifications.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
	g.dispatch = NewDispatcher(g.sound, g.logger)
}

// Reset loads the configuration and opens the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.params = NewParams(g.cfg)
	g.layout = NewLayout(g.cfg)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.runtime.TickRate = runtime.TickRate

	g.world = NewWorld()
	g.state = nil
	g.session = Session{Lives: g.cfg.Gameplay.Lives}
	g.settings = Settings{Volume: g.cfg.Audio.Volume}
	g.sound.SetVolume(g.settings.Volume)
	g.dispatch = NewDispatcher(g.sound, g.logger)

	g.accumulator = 0
	g.ticks = 0
	g.quit = false

	g.logger.Debug("reset",
		"game", g.id,
		"bricks", len(g.layout.Bricks),
		"tick", g.params.Tick,
		"lives", g.cfg.Gameplay.Lives,
	)
	g.transition(&MenuScreen{})
}

// loadConfig resolves the configuration for this variant.
func (g *Game) loadConfig() config.BreakoutConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	return cfg
}

// Resize records the terminal size. The game pauses while it is too small.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.state == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	if dt < 0 {
		dt = 0
	}

	switch s := g.state.(type) {
	case *MenuScreen:
		g.updateMenu(s, in)
	case *GameScreen:
		g.updateGame(s, in, dt)
	case *GameOverScreen, *WinScreen:
		switch {
		case in.Has(core.ActionBack):
			g.transition(&MenuScreen{})
		case in.Any():
			g.transition(&GameScreen{})
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) updateMenu(s *MenuScreen, in core.InputFrame) {
	switch s.update(in, &g.settings) {
	case menuRedraw:
		g.redrawMenu(s)
	case menuVolume:
		g.sound.SetVolume(g.settings.Volume)
		g.logger.Debug("volume changed", "level", g.settings.Volume)
		g.redrawMenu(s)
	case menuNewGame:
		g.transition(&GameScreen{})
	case menuQuit:
		g.logger.Info("quit from menu")
		g.quit = true
	}
}

func (g *Game) redrawMenu(s *MenuScreen) {
	s.ui.DespawnAll(g.world)
	s.spawnUI(g.world, g.settings)
}

func (g *Game) updateGame(s *GameScreen, in core.InputFrame, dt time.Duration) {
	if s.Phase == PhasePlaying {
		g.accumulator += dt
		if limit := maxCatchUpTicks * g.params.Tick; g.accumulator > limit {
			g.accumulator = limit
		}

		for g.accumulator >= g.params.Tick {
			g.accumulator -= g.params.Tick
			g.ticks++

			res := Simulate(g.world, &g.session, g.params, in, g.params.Tick.Seconds())
			g.dispatch.Dispatch(res.Events)

			switch res.Outcome {
			case OutcomeWin:
				g.transition(&WinScreen{})
				return
			case OutcomeGameOver:
				g.transition(&GameOverScreen{})
				return
			}
		}
	}

	g.updateCountdown(s, dt)
	g.updateHUD(s)
}

func (g *Game) updateCountdown(s *GameScreen, dt time.Duration) {
	cd := s.Countdown
	if cd == nil {
		return
	}

	cd.Advance(dt)
	if s.Phase == PhaseStarting && cd.StartingDone() {
		s.Phase = PhasePlaying
		g.accumulator = 0
		g.logger.Debug("phase changed", "to", s.Phase)
	}

	if cd.Finished() {
		s.overlay.DespawnAll(g.world)
		s.Countdown = nil
		return
	}

	if e, ok := g.world.Get(s.countdownText); ok {
		e.Text.Content = cd.Text()
	}
}

func (g *Game) updateHUD(s *GameScreen) {
	if e, ok := g.world.Get(s.score); ok {
		e.Text.Content = strconv.Itoa(g.session.Score)
	}
	if e, ok := g.world.Get(s.lives); ok {
		e.Text.Content = strconv.Itoa(g.session.Lives)
	}
}

// transition leaves the current screen, despawning everything it owns, and
// enters next.
func (g *Game) transition(next AppState) {
	from := "none"
	if g.state != nil {
		from = g.state.Kind().String()
		g.state.owned().DespawnAll(g.world)
	}

	g.state = next
	switch s := next.(type) {
	case *MenuScreen:
		s.spawnUI(g.world, g.settings)
	case *GameScreen:
		g.enterGame(s)
	case *GameOverScreen:
		s.Score = g.session.Score
		spawnBanner(g.world, &s.ui, "Game Over!", s.Score)
		g.logFinished("game_over")
	case *WinScreen:
		s.Score = g.session.Score
		spawnBanner(g.world, &s.ui, "You win!", s.Score)
		g.logFinished("win")
	}

	g.logger.Debug("screen changed", "from", from, "to", next.Kind())
}

func (g *Game) logFinished(outcome string) {
	snap := g.Snapshot()
	g.logger.Info("session finished",
		"outcome", outcome,
		"score", snap.Score,
		"lives", snap.Lives,
		"ticks", snap.Ticks,
		"hash", fmt.Sprintf("%016x", snap.Hash()),
	)
}

// enterGame resets the session and spawns the arena, HUD and countdown.
func (g *Game) enterGame(s *GameScreen) {
	g.session = Session{Score: 0, Lives: g.cfg.Gameplay.Lives}
	g.accumulator = 0

	w := g.world
	cfg := g.cfg

	s.ball, s.paddle = spawnArena(w, &s.entities, cfg, g.layout, g.params)

	s.score = s.entities.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:       RoleScore,
		Label:      "Score: ",
		Content:    "0",
		Anchor:     AnchorTopLeft,
		Color:      core.ColorLavender,
		ValueColor: core.ColorCoral,
	}})

	s.lives = s.entities.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:       RoleLives,
		Label:      "Lives: ",
		Content:    strconv.Itoa(g.session.Lives),
		Anchor:     AnchorTopRight,
		Color:      core.ColorLavender,
		ValueColor: core.ColorGreen,
	}})

	// Starting phase
	s.Phase = PhaseStarting
	s.Countdown = NewCountdown(
		secondsToDuration(cfg.Gameplay.StartingSecs),
		secondsToDuration(cfg.Gameplay.GoDisplaySecs),
	)
	s.countdownText = s.overlay.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:    RoleCountdown,
		Content: s.Countdown.Text(),
		Anchor:  AnchorCenter,
		Color:   core.ColorLavender,
	}})
	s.entities = append(s.entities, s.countdownText)
}

// spawnArena spawns the paddle, the ball, the walls and the bricks.
func spawnArena(w *World, o *Owned, cfg config.BreakoutConfig, l Layout, p Params) (ball, paddle EntityID) {
	paddle = o.Spawn(w, Entity{
		Kind:     KindPaddle,
		Pos:      core.V2(l.PaddleX, l.PaddleY),
		Half:     core.V2(cfg.Paddle.Width/2, cfg.Paddle.Height/2),
		Collider: true,
	})

	ball = o.Spawn(w, Entity{
		Kind:        KindBall,
		Pos:         p.BallStart,
		Radius:      p.BallRadius,
		Vel:         p.BallVelocity,
		HasVelocity: true,
	})

	for _, spec := range l.Walls {
		o.Spawn(w, Entity{
			Kind:     KindWall,
			Pos:      spec.Center,
			Half:     spec.Size.Scale(0.5),
			Collider: true,
			Deadly:   spec.Deadly,
			Wall:     spec.Side,
		})
	}

	half := l.BrickSize.Scale(0.5)
	for _, center := range l.Bricks {
		o.Spawn(w, Entity{
			Kind:     KindBrick,
			Pos:      center,
			Half:     half,
			Collider: true,
		})
	}

	return ball, paddle
}

// spawnBanner creates the game over / win screen text.
func spawnBanner(w *World, ui *Owned, headline string, score int) {
	ui.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:    RoleBanner,
		Content: headline,
		Anchor:  AnchorCenter,
		Line:    -2,
		Color:   core.ColorLavender,
	}})
	ui.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:       RoleScore,
		Label:      "Score: ",
		Content:    strconv.Itoa(score),
		Anchor:     AnchorCenter,
		Line:       0,
		Color:      core.ColorLavender,
		ValueColor: core.ColorCoral,
	}})
	ui.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:    RoleHint,
		Content: "Press any key to restart or esc for the menu.",
		Anchor:  AnchorCenter,
		Line:    2,
		Color:   core.ColorLavender,
	}})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score: g.session.Score,
		Lives: g.session.Lives,
		Quit:  g.quit,
	}
	switch g.state.(type) {
	case *GameOverScreen:
		st.GameOver = true
	case *WinScreen:
		st.GameOver = true
		st.Won = true
	}
	return st
}

// App returns the current top-level screen.
func (g *Game) App() AppKind {
	if g.state == nil {
		return AppMenu
	}
	return g.state.Kind()
}

// Phase returns the game sub-state.
func (g *Game) Phase() Phase {
	return PhaseOf(g.state)
}

// Session returns the current score and lives.
func (g *Game) Session() Session {
	return g.session
}

// Settings returns the player preferences.
func (g *Game) Settings() Settings {
	return g.settings
}

// World returns the entity store for frontends that draw it themselves.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration in use.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_easy", func() registry.Game {
		return NewEasy()
	})
	registry.Register("breakout_hard", func() registry.Game {
		return NewHard()
	})
}
