package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. The result is validated before it is returned.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := loadBreakoutYAML(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBreakoutYAML(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseBreakout(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := ParseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBreakout decodes YAML on top of DefaultBreakoutConfig.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultBreakoutConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports the first setting that would make the arena unplayable.
func (c BreakoutConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"arena width", c.Arena.Width()},
		{"arena height", c.Arena.Height()},
		{"arena.wall_thickness", c.Arena.WallThickness},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"ball.diameter", c.Ball.Diameter},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"gameplay.tick_hz", float64(c.Gameplay.TickHz)},
	}
	for _, p := range positive {
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.val)
		}
	}

	nonNegative := []struct {
		name string
		val  float64
	}{
		{"paddle.speed", c.Paddle.Speed},
		{"paddle.padding", c.Paddle.Padding},
		{"ball.speed", c.Ball.Speed},
		{"bricks.gap", c.Bricks.Gap},
		{"bricks.paddle_gap", c.Bricks.PaddleGap},
		{"bricks.ceiling_gap", c.Bricks.CeilingGap},
		{"bricks.side_gap", c.Bricks.SideGap},
		{"gameplay.lives", float64(c.Gameplay.Lives)},
		{"gameplay.starting_secs", c.Gameplay.StartingSecs},
		{"gameplay.go_display_secs", c.Gameplay.GoDisplaySecs},
	}
	for _, p := range nonNegative {
		if !(p.val >= 0) || math.IsInf(p.val, 0) {
			return fmt.Errorf("config: %s must not be negative, got %v", p.name, p.val)
		}
	}

	if c.Gameplay.TickHz > MaxTickHz {
		return fmt.Errorf("config: gameplay.tick_hz must be at most %d, got %d", MaxTickHz, c.Gameplay.TickHz)
	}
	if c.Ball.DirectionX == 0 && c.Ball.DirectionY == 0 {
		return errors.New("config: ball direction must not be zero")
	}
	if c.Audio.Volume < MinVolume || c.Audio.Volume > MaxVolume {
		return fmt.Errorf("config: audio.volume must be in [%d, %d], got %d", MinVolume, MaxVolume, c.Audio.Volume)
	}
	if c.Audio.Enabled && (c.Audio.SampleRate <= 0 || c.Audio.BufferMilli <= 0 || c.Audio.BlipMillis <= 0 || c.Audio.BlipHz <= 0) {
		return errors.New("config: audio sample_rate, buffer_ms, blip_ms and blip_hz must be positive")
	}

	travel := c.Arena.Width() - c.Arena.WallThickness - c.Paddle.Width - 2*c.Paddle.Padding
	if travel < 0 {
		return fmt.Errorf("config: paddle (width %v, padding %v) does not fit between the walls", c.Paddle.Width, c.Paddle.Padding)
	}

	cols, rows := c.BrickGrid()
	if cols < 1 || rows < 1 {
		return fmt.Errorf("config: no room for bricks (%d columns x %d rows)", cols, rows)
	}
	return nil
}

// BrickGrid returns how many brick columns and rows fit in the arena.
// Either value may be zero or negative for a cramped configuration.
func (c BreakoutConfig) BrickGrid() (cols, rows int) {
	width := c.Arena.Width() - 2*c.Bricks.SideGap
	bottom := c.PaddleY() + c.Bricks.PaddleGap
	height := c.Arena.Top - bottom - c.Bricks.CeilingGap

	cols = int(math.Floor(width / (c.Bricks.Width + c.Bricks.Gap)))
	rows = int(math.Floor(height / (c.Bricks.Height + c.Bricks.Gap)))
	return cols, rows
}

// PaddleY returns the y coordinate of the paddle center.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Arena.Bottom + c.Paddle.FloorGap
}
