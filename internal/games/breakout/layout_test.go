package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestLayoutWalls(t *testing.T) {
	l := NewLayout(config.DefaultBreakoutConfig())

	tests := []struct {
		side   WallSide
		center core.Vec2
		size   core.Vec2
		deadly bool
	}{
		{WallLeft, core.V2(-450, 0), core.V2(10, 610), false},
		{WallRight, core.V2(450, 0), core.V2(10, 610), false},
		{WallBottom, core.V2(0, -300), core.V2(910, 10), true},
		{WallTop, core.V2(0, 300), core.V2(910, 10), false},
	}

	for i, tc := range tests {
		w := l.Walls[i]
		if w.Side != tc.side || w.Center != tc.center || w.Size != tc.size || w.Deadly != tc.deadly {
			t.Errorf("wall %d = %+v, expected side=%v center=%v size=%v deadly=%v",
				i, w, tc.side, tc.center, tc.size, tc.deadly)
		}
	}
}

// An arena that is not centered on the origin keeps its walls on the
// edge midpoints, closed at every corner.
func TestLayoutOffCenterArena(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Arena.Left, cfg.Arena.Right = -200, 600
	cfg.Arena.Top = 500
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	l := NewLayout(cfg)
	a := cfg.Arena
	half := a.WallThickness / 2

	centers := []core.Vec2{
		core.V2(-200, 100),
		core.V2(600, 100),
		core.V2(200, -300),
		core.V2(200, 500),
	}
	for i, want := range centers {
		if got := l.Walls[i].Center; got != want {
			t.Errorf("%v wall center = %v, expected %v", l.Walls[i].Side, got, want)
		}
	}

	for _, w := range l.Walls {
		box := core.NewAabb(w.Center, w.Size.Scale(0.5))
		lo, hi := box.Min(), box.Max()
		switch w.Side {
		case WallLeft, WallRight:
			if lo.Y != a.Bottom-half || hi.Y != a.Top+half {
				t.Errorf("%v wall spans y %v..%v", w.Side, lo.Y, hi.Y)
			}
		default:
			if lo.X != a.Left-half || hi.X != a.Right+half {
				t.Errorf("%v wall spans x %v..%v", w.Side, lo.X, hi.X)
			}
		}
	}

	// A ball high up against the left wall still touches it.
	ball := core.NewCircle(core.V2(-185, 450), 15)
	if _, ok := core.ClassifyCollision(ball, core.NewAabb(l.Walls[0].Center, l.Walls[0].Size.Scale(0.5))); !ok {
		t.Error("ball near the top of the left wall misses it")
	}

	if l.PaddleX != 200 {
		t.Errorf("PaddleX = %v, expected 200", l.PaddleX)
	}
	first, last := l.Bricks[0], l.Bricks[l.Columns-1]
	if math.Abs((first.X+last.X)/2-200) > 1e-9 {
		t.Errorf("bricks centered on %v, expected 200", (first.X+last.X)/2)
	}
}

func TestLayoutBrickGrid(t *testing.T) {
	l := NewLayout(config.DefaultBreakoutConfig())

	if l.Columns != 8 || l.Rows != 7 {
		t.Fatalf("grid = %dx%d, expected 8x7", l.Columns, l.Rows)
	}
	if len(l.Bricks) != 56 {
		t.Fatalf("len(Bricks) = %d, expected 56", len(l.Bricks))
	}
	if l.PaddleX != 0 || l.PaddleY != -240 {
		t.Errorf("paddle = (%v, %v), expected (0, -240)", l.PaddleX, l.PaddleY)
	}

	// Bottom row sits exactly paddle_gap above the paddle.
	first := l.Bricks[0]
	if first != core.V2(-367.5, 45) {
		t.Errorf("first brick = %v, expected (-367.5, 45)", first)
	}

	// Columns are centered on the arena.
	last := l.Bricks[l.Columns-1]
	if math.Abs(first.X+last.X) > 1e-9 || last.Y != first.Y {
		t.Errorf("bottom row not centered: first=%v last=%v", first, last)
	}

	// Rows step by height + gap and stay below the ceiling gap.
	top := l.Bricks[len(l.Bricks)-1]
	if top.Y != 45+6*35 {
		t.Errorf("top row y = %v, expected %v", top.Y, 45+6*35)
	}
	if top.Y+l.BrickSize.Y/2 > 300-20 {
		t.Errorf("top row %v breaks the ceiling gap", top.Y)
	}
}

func TestLayoutPanicsWithoutBrickSpace(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.BreakoutConfig)
	}{
		{"flat arena", func(c *config.BreakoutConfig) { c.Arena.Top = c.Arena.Bottom }},
		{"no height left", func(c *config.BreakoutConfig) { c.Bricks.PaddleGap = 1000 }},
		{"sides eat width", func(c *config.BreakoutConfig) { c.Bricks.SideGap = 500 }},
		{"bricks wider than arena", func(c *config.BreakoutConfig) { c.Bricks.Width = 2000 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultBreakoutConfig()
			tc.mutate(&cfg)

			defer func() {
				if recover() == nil {
					t.Error("NewLayout should panic")
				}
			}()
			NewLayout(cfg)
		})
	}
}
