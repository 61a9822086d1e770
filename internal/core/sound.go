package core

// SoundPlayer plays game sound effects. Implementations must not block the
// caller: playback is fire-and-forget.
type SoundPlayer interface {
	// PlayCollision plays the ball collision blip.
	PlayCollision()

	// SetVolume applies a volume level in [0, 9]; 0 mutes.
	SetVolume(level int)
}

// NopSound is a SoundPlayer that discards everything.
type NopSound struct{}

// PlayCollision does nothing.
func (NopSound) PlayCollision() {}

// SetVolume does nothing.
func (NopSound) SetVolume(int) {}
