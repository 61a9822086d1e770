package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Left:          -450,
			Right:         450,
			Bottom:        -300,
			Top:           300,
			WallThickness: 10,
		},
		Paddle: BreakoutPaddle{
			Width:    120,
			Height:   20,
			FloorGap: 60,
			Speed:    500,
			Padding:  10,
		},
		Ball: BreakoutBall{
			StartX:     0,
			StartY:     -50,
			Diameter:   30,
			Speed:      400,
			DirectionX: 0.5,
			DirectionY: -0.5,
		},
		Bricks: BreakoutBricks{
			Width:      100,
			Height:     30,
			PaddleGap:  270,
			Gap:        5,
			CeilingGap: 20,
			SideGap:    20,
		},
		Gameplay: BreakoutGameplay{
			Lives:         3,
			StartingSecs:  3,
			GoDisplaySecs: 1,
			TickHz:        64,
		},
		Audio: BreakoutAudio{
			Enabled:     true,
			Volume:      7,
			BlipHz:      660,
			BlipMillis:  60,
			SampleRate:  44100,
			BufferMilli: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
