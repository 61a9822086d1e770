package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette lists every colour a game may put on the screen.
var palette = []core.Color{
	core.ColorLight,
	core.ColorDark,
	core.ColorDarker,
	core.ColorYellow,
	core.ColorCoral,
	core.ColorBlue,
	core.ColorLavender,
	core.ColorPaddle,
	core.ColorWall,
	core.ColorGreen,
}

// Painter turns screen cells into styled terminal output.
type Painter struct {
	styles map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for the given lipgloss renderer.
// SSH sessions pass a renderer bound to the remote terminal so that colour
// support is detected per client. A nil renderer uses the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
	}
	for _, c := range palette {
		styles[c] = r.NewStyle().Foreground(colorOf(c))
	}
	return &Painter{styles: styles}
}

// colorOf converts a game colour to a true-colour lipgloss colour.
func colorOf(c core.Color) lipgloss.Color {
	red, green, blue := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", red, green, blue))
}

var defaultPainter = NewPainter(nil)

// RenderScreen converts a Screen buffer to a styled string using the
// default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[startColor]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
