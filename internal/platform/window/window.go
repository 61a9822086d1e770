// Package window runs a game in a desktop window with ebiten. Shapes are
// drawn from the game's world in arena units; text uses the debug font.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// hudHeight is the band above the arena used by the score and lives.
const hudHeight = 2 * glyphH

// maxFrameTime caps the time handed to a single Step, so a window that was
// dragged or suspended does not fast-forward the countdown.
const maxFrameTime = 250 * time.Millisecond

// Options are the optional collaborators of an App.
type Options struct {
	Store  *storage.Store   // nil disables score saving
	Sound  core.SoundPlayer // nil means silent
	Logger *log.Logger      // nil discards
	Player string           // recorded with saved scores
	Scale  float64          // window size multiplier, 0 means 1
}

// App adapts a breakout.Game to ebiten.Game.
type App struct {
	game     *breakout.Game
	recorder *storage.Recorder
	proj     projection
	keys     []ebiten.Key
	state    core.GameState

	now      func() time.Time
	lastStep time.Time
}

// NewApp resets game and prepares it for the window.
func NewApp(game *breakout.Game, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	game.SetLogger(opts.Logger)
	if opts.Sound != nil {
		game.SetSoundPlayer(opts.Sound)
	}

	// The text grid only gates the too-small check; the window never is.
	game.Reset(core.RuntimeConfig{
		ScreenW:  breakout.MinScreenW * 2,
		ScreenH:  breakout.MinScreenH * 2,
		TickRate: ebiten.TPS(),
	})

	return &App{
		game:     game,
		recorder: storage.NewRecorder(opts.Store, game.ID(), opts.Player, "", opts.Logger),
		proj:     newProjection(game.Config().Arena),
		now:      time.Now,
	}
}

// Update reads the keyboard and advances the game by the real time since
// the previous Update.
func (a *App) Update() error {
	var in core.InputFrame
	in, a.keys = readInput(a.keys)
	return a.advance(in, a.now())
}

// advance runs one frame at time now. It returns ebiten.Termination when
// the player quits.
func (a *App) advance(in core.InputFrame, now time.Time) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	dt := frameTime(a.lastStep, now)
	a.lastStep = now

	a.state = a.game.Step(in, dt).State
	a.recorder.Observe(a.state)

	if a.state.Quit {
		return ebiten.Termination
	}
	return nil
}

// frameTime returns the time between two Updates clamped to
// [0, maxFrameTime]. The first Update has no predecessor and gets zero.
func frameTime(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	return min(max(now.Sub(prev), 0), maxFrameTime)
}

// Draw paints the world: shapes first, text on top.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	world := a.game.World()
	if world == nil {
		return
	}

	world.Each(func(e *breakout.Entity) {
		switch e.Kind {
		case breakout.KindWall:
			a.fillBox(screen, e, 0, core.ColorWall)
		case breakout.KindBrick:
			a.fillBox(screen, e, 1, core.ColorLavender)
		case breakout.KindPaddle:
			a.fillBox(screen, e, 0, core.ColorPaddle)
		case breakout.KindBall:
			x, y := a.proj.point(e.Pos)
			vector.DrawFilledCircle(screen, x, y, float32(e.Radius), rgba(core.ColorCoral), true)
		}
	})

	w, h := a.proj.size()
	world.Each(func(e *breakout.Entity) {
		if e.Kind == breakout.KindText {
			x, y := textOrigin(e.Text, w, h)
			ebitenutil.DebugPrintAt(screen, displayText(e.Text), x, y)
		}
	})
}

// fillBox draws an entity's box, shrunk by inset pixels on every side.
func (a *App) fillBox(screen *ebiten.Image, e *breakout.Entity, inset float32, c core.Color) {
	x, y, w, h := a.proj.rect(e.Box())
	vector.DrawFilledRect(screen, x+inset, y+inset, w-2*inset, h-2*inset, rgba(c), false)
}

// Layout keeps the logical screen at arena size regardless of the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.proj.size()
}

// State returns the game state seen on the last tick.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens the window and blocks until it is closed or the game quits.
func Run(game *breakout.Game, opts Options) error {
	app := NewApp(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := app.proj.size()
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// projection maps arena units (y up, origin in the middle) to pixels
// (y down, origin top left) with the HUD band above the arena.
type projection struct {
	minX, maxY    float64
	width, height float64
}

func newProjection(a config.BreakoutArena) projection {
	half := a.WallThickness / 2
	return projection{
		minX:   a.Left - half,
		maxY:   a.Top + half,
		width:  a.Width() + a.WallThickness,
		height: a.Height() + a.WallThickness,
	}
}

func (p projection) size() (int, int) {
	return int(p.width), int(p.height) + hudHeight
}

func (p projection) point(v core.Vec2) (float32, float32) {
	return float32(v.X - p.minX), float32(p.maxY-v.Y) + hudHeight
}

func (p projection) rect(box core.Aabb) (x, y, w, h float32) {
	lo, hi := box.Min(), box.Max()
	x, y = p.point(core.V2(lo.X, hi.Y))
	return x, y, float32(hi.X - lo.X), float32(hi.Y - lo.Y)
}

// displayText returns the text as the debug font shows it. The font has no
// arrow glyphs, so selection uses ASCII markers.
func displayText(t breakout.TextNode) string {
	if t.Selected {
		return "> " + t.String() + " <"
	}
	return t.String()
}

// textOrigin returns the top left pixel of a text node on a w by h screen.
func textOrigin(t breakout.TextNode, w, h int) (x, y int) {
	width := utf8.RuneCountInString(displayText(t)) * glyphW
	switch t.Anchor {
	case breakout.AnchorTopLeft:
		return glyphW, t.Line*glyphH + glyphH/2
	case breakout.AnchorTopRight:
		return w - width - glyphW, t.Line*glyphH + glyphH/2
	default:
		return (w - width) / 2, h/2 + t.Line*glyphH - glyphH/2
	}
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
