package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer and to RGB in
// the window renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault  Color = iota
	ColorLight          // menu text, banners
	ColorDark           // unselected menu entries
	ColorDarker         // disabled / secondary text
	ColorYellow         // highlights
	ColorCoral          // score value, ball, selected volume
	ColorBlue           // selected menu entry
	ColorLavender       // HUD labels, bricks
	ColorPaddle         // paddle
	ColorWall           // arena walls
	ColorGreen          // lives value
)

// RGB returns the 8-bit RGB triple used by pixel renderers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorLight:
		return 248, 246, 244
	case ColorDark:
		return 102, 103, 105
	case ColorDarker:
		return 80, 80, 83
	case ColorYellow:
		return 252, 221, 104
	case ColorCoral:
		return 250, 162, 138
	case ColorBlue:
		return 112, 185, 194
	case ColorLavender:
		return 128, 128, 255
	case ColorPaddle:
		return 77, 77, 179
	case ColorWall:
		return 204, 204, 204
	case ColorGreen:
		return 153, 204, 128
	default:
		return 230, 230, 230
	}
}
