// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// maxVoices bounds how many blips may overlap in the mixer.
const maxVoices = 8

// Player implements core.SoundPlayer on top of the beep speaker.
// The speaker is process-wide, so a program should create one Player.
type Player struct {
	mu     sync.Mutex
	cfg    config.BreakoutAudio
	mixer  *beep.Mixer
	volume int
	open   bool
	logger *log.Logger
}

// NewPlayer creates a player for the given audio settings.
// Nothing is played until Open succeeds.
func NewPlayer(cfg config.BreakoutAudio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		logger: logger,
	}
}

// Open initializes the speaker and starts the mixer.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	buffer := rate.N(time.Duration(p.cfg.BufferMilli) * time.Millisecond)
	if err := speaker.Init(rate, buffer); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(liveMixer{mixer: p.mixer})
	p.open = true
	p.logger.Debug("speaker ready", "rate", p.cfg.SampleRate, "buffer", buffer)
	return nil
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.open = false
}

// PlayCollision starts a collision blip. It never blocks on playback.
func (p *Player) PlayCollision() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open || p.volume <= config.MinVolume {
		return
	}

	blip := NewBlip(p.cfg, p.volume)

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(blip)
	}
	speaker.Unlock()
}

// SetVolume sets the level used for sounds started from now on.
func (p *Player) SetVolume(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = max(config.MinVolume, min(level, config.MaxVolume))
}

// Volume returns the current level.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}
