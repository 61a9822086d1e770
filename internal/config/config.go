// Package config provides YAML-based game configuration loading and
// difficulty presets for Breakout.
package config

// BreakoutConfig contains all tuning for a Breakout session.
// Lengths are arena units (pixels), speeds are units per second.
type BreakoutConfig struct {
	Arena    BreakoutArena    `yaml:"arena"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Audio    BreakoutAudio    `yaml:"audio"`
}

// BreakoutArena defines the wall positions. Left/Right are x coordinates of
// the side wall centers, Bottom/Top are y coordinates (y points up).
type BreakoutArena struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Bottom        float64 `yaml:"bottom"`
	Top           float64 `yaml:"top"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Width returns the distance between the side walls.
func (a BreakoutArena) Width() float64 {
	return a.Right - a.Left
}

// Height returns the distance between the floor and the ceiling.
func (a BreakoutArena) Height() float64 {
	return a.Top - a.Bottom
}

// BreakoutPaddle defines the player paddle.
type BreakoutPaddle struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FloorGap float64 `yaml:"floor_gap"` // distance from the bottom wall to the paddle center
	Speed    float64 `yaml:"speed"`
	Padding  float64 `yaml:"padding"` // how close the paddle may get to a side wall
}

// BreakoutBall defines the ball and its serve.
type BreakoutBall struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Diameter   float64 `yaml:"diameter"`
	Speed      float64 `yaml:"speed"`
	DirectionX float64 `yaml:"direction_x"`
	DirectionY float64 `yaml:"direction_y"`
}

// BreakoutBricks defines the brick grid. The paddle gap and brick gap are
// exact, the ceiling and side gaps are lower bounds.
type BreakoutBricks struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PaddleGap  float64 `yaml:"paddle_gap"`
	Gap        float64 `yaml:"gap"`
	CeilingGap float64 `yaml:"ceiling_gap"`
	SideGap    float64 `yaml:"side_gap"`
}

// BreakoutGameplay defines session rules and timing.
type BreakoutGameplay struct {
	Lives         int     `yaml:"lives"`
	StartingSecs  float64 `yaml:"starting_secs"`
	GoDisplaySecs float64 `yaml:"go_display_secs"`
	TickHz        int     `yaml:"tick_hz"`
}

// BreakoutAudio defines sound settings.
type BreakoutAudio struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      int     `yaml:"volume"` // 0..9, as on the sound settings page
	BlipHz      float64 `yaml:"blip_hz"`
	BlipMillis  int     `yaml:"blip_ms"`
	SampleRate  int     `yaml:"sample_rate"`
	BufferMilli int     `yaml:"buffer_ms"`
}

// Volume bounds shared by the menu and the audio player.
const (
	MinVolume = 0
	MaxVolume = 9
)

// MaxTickHz bounds gameplay.tick_hz so a tick stays a usable duration.
const MaxTickHz = 1000
