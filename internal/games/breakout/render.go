package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	WallChar   = '█'
)

// BrickGlyphs alternate by screen row so adjacent brick rows stay distinct.
var BrickGlyphs = []rune{'█', '▓'}

// hudRows is the number of rows above the arena.
const hudRows = 1

// viewport maps arena units (y up) onto screen cells below the HUD.
type viewport struct {
	minX, maxY float64
	colW, rowH float64
	top        int
	cols, rows int
}

func newViewport(a config.BreakoutArena, w, h int) viewport {
	half := a.WallThickness / 2
	rows := h - hudRows
	return viewport{
		minX: a.Left - half,
		maxY: a.Top + half,
		colW: (a.Width() + a.WallThickness) / float64(w),
		rowH: (a.Height() + a.WallThickness) / float64(rows),
		top:  hudRows,
		cols: w,
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.minX) / v.colW))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor((v.maxY-y)/v.rowH))
}

// cell returns the cell containing p, clamped into the arena area.
func (v viewport) cell(p core.Vec2) (x, y int) {
	x = core.Clamp(v.col(p.X), 0, v.cols-1)
	y = core.Clamp(v.row(p.Y), v.top, v.top+v.rows-1)
	return x, y
}

// rect returns the cells covered by box, at least one cell in each direction.
func (v viewport) rect(box core.Aabb) core.Rect {
	lo, hi := box.Min(), box.Max()
	x0, y0 := v.cell(core.V2(lo.X, hi.Y))
	x1, y1 := v.cell(core.V2(hi.X, lo.Y))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorLight)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDarker)
		return
	}
	if g.world == nil {
		return
	}

	v := newViewport(g.cfg.Arena, dst.Width(), dst.Height())

	// Arena first, text on top.
	g.world.Each(func(e *Entity) {
		switch e.Kind {
		case KindWall:
			dst.DrawRect(v.rect(e.Box()), WallChar, core.ColorWall)
		case KindBrick:
			r := v.rect(e.Box())
			if r.W > 2 {
				r.W-- // keep a gap column between neighbours
			}
			glyph := BrickGlyphs[r.Y%len(BrickGlyphs)]
			dst.DrawRect(r, glyph, core.ColorLavender)
		case KindPaddle:
			dst.DrawRect(v.rect(e.Box()), PaddleChar, core.ColorPaddle)
		}
	})

	g.world.Each(func(e *Entity) {
		if e.Kind == KindBall {
			x, y := v.cell(e.Pos)
			dst.SetColored(x, y, BallChar, core.ColorCoral)
		}
	})

	g.world.Each(func(e *Entity) {
		if e.Kind == KindText {
			drawText(dst, e.Text)
		}
	})
}

// drawText places a text node according to its anchor.
func drawText(dst *core.Screen, t TextNode) {
	text := t.String()
	if t.Selected {
		text = "▶ " + text + " ◀"
	}
	width := utf8.RuneCountInString(text)

	var x, y int
	switch t.Anchor {
	case AnchorTopLeft:
		x, y = 1, t.Line
	case AnchorTopRight:
		x, y = dst.Width()-width-1, t.Line
	default:
		x, y = (dst.Width()-width)/2, dst.Height()/2+t.Line
	}

	if t.Role == RoleCountdown {
		box := core.NewRect(x-3, y-1, width+6, 3)
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, t.Color)
	}

	if t.Selected {
		dst.DrawTextColored(x, y, "▶ ", t.Color)
		x += 2
	}
	dst.DrawTextColored(x, y, t.Label, t.Color)
	x += utf8.RuneCountInString(t.Label)
	dst.DrawTextColored(x, y, t.Content, t.ContentColor())
	if t.Selected {
		dst.DrawTextColored(x+utf8.RuneCountInString(t.Content), y, " ◀", t.Color)
	}
}
