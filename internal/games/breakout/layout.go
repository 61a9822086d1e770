package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// WallSide identifies one of the four arena walls.
type WallSide int

const (
	WallLeft WallSide = iota
	WallRight
	WallBottom
	WallTop
)

// String returns a human-readable wall name.
func (w WallSide) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// WallSpec describes one wall collider.
type WallSpec struct {
	Side   WallSide
	Center core.Vec2
	Size   core.Vec2
	Deadly bool
}

// Layout is the static arena geometry for one session.
type Layout struct {
	Walls     [4]WallSpec // Left, Right, Bottom, Top
	Bricks    []core.Vec2 // brick centers, bottom row first, left to right
	BrickSize core.Vec2
	Columns   int
	Rows      int
	PaddleX   float64 // paddle spawn, horizontally centered
	PaddleY   float64
}

// NewLayout computes wall placement and the brick grid.
// It panics when the configuration leaves no room for bricks; callers are
// expected to have run config.Validate.
func NewLayout(cfg config.BreakoutConfig) Layout {
	a := cfg.Arena
	if a.Width() <= 0 || a.Height() <= 0 {
		panic(fmt.Sprintf("breakout: arena must have positive size, got %vx%v", a.Width(), a.Height()))
	}

	l := Layout{
		BrickSize: core.V2(cfg.Bricks.Width, cfg.Bricks.Height),
		PaddleY:   cfg.PaddleY(),
	}

	// Each wall sits on the midpoint of its arena edge.
	midX := (a.Left + a.Right) / 2
	midY := (a.Bottom + a.Top) / 2
	vertical := core.V2(a.WallThickness, a.Height()+a.WallThickness)
	horizontal := core.V2(a.Width()+a.WallThickness, a.WallThickness)
	l.Walls = [4]WallSpec{
		{Side: WallLeft, Center: core.V2(a.Left, midY), Size: vertical},
		{Side: WallRight, Center: core.V2(a.Right, midY), Size: vertical},
		{Side: WallBottom, Center: core.V2(midX, a.Bottom), Size: horizontal, Deadly: true},
		{Side: WallTop, Center: core.V2(midX, a.Top), Size: horizontal},
	}
	l.PaddleX = midX

	b := cfg.Bricks
	totalWidth := a.Width() - 2*b.SideGap
	bottomEdge := l.PaddleY + b.PaddleGap
	totalHeight := a.Top - bottomEdge - b.CeilingGap
	if totalWidth <= 0 || totalHeight <= 0 {
		panic(fmt.Sprintf("breakout: no room for bricks (%vx%v)", totalWidth, totalHeight))
	}

	l.Columns = int(math.Floor(totalWidth / (b.Width + b.Gap)))
	l.Rows = int(math.Floor(totalHeight / (b.Height + b.Gap)))
	if l.Columns < 1 || l.Rows < 1 {
		panic(fmt.Sprintf("breakout: brick grid is empty (%d columns x %d rows)", l.Columns, l.Rows))
	}

	// Rounding means the side and ceiling gaps are only lower bounds,
	// so the grid is centered horizontally instead of starting at the gap.
	leftEdge := midX -
		float64(l.Columns)/2*b.Width -
		float64(l.Columns-1)/2*b.Gap

	offsetX := leftEdge + b.Width/2
	offsetY := bottomEdge + b.Height/2

	l.Bricks = make([]core.Vec2, 0, l.Columns*l.Rows)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Columns; col++ {
			l.Bricks = append(l.Bricks, core.V2(
				offsetX+float64(col)*(b.Width+b.Gap),
				offsetY+float64(row)*(b.Height+b.Gap),
			))
		}
	}

	return l
}
