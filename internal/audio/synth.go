package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Envelope timings of the collision blip.
const (
	blipAttack  = 4 * time.Millisecond
	blipRelease = 35 * time.Millisecond
)

// tone is a finite sine oscillator.
type tone struct {
	freq  float64
	phase float64
	left  int
	rate  beep.SampleRate
}

// NewTone creates a sine wave of the given frequency and length.
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, left: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.left <= 0 {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.left--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies a linear attack and release to a finite streamer.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &envelope{
		streamer: s,
		total:    total,
		attack:   min(rate.N(attack), total),
		release:  min(rate.N(release), total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if rest := e.total - e.pos; e.release > 0 && rest < e.release {
			gain = math.Min(gain, float64(rest)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Gain maps a settings volume level onto a linear amplitude in [0, 1].
func Gain(level int) float64 {
	level = max(config.MinVolume, min(level, config.MaxVolume))
	return float64(level-config.MinVolume) / float64(config.MaxVolume-config.MinVolume)
}

// withGain wraps s in a volume effect. Zero gain is silent since
// effects.Volume works in log space.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewBlip synthesizes the collision sound at the given volume level.
func NewBlip(cfg config.BreakoutAudio, level int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := time.Duration(cfg.BlipMillis) * time.Millisecond

	shaped := NewEnvelope(NewTone(cfg.BlipHz, d, rate), d, blipAttack, blipRelease, rate)
	// Keep headroom for overlapping blips in the mixer.
	return withGain(shaped, 0.5*Gain(level))
}

// liveMixer keeps the speaker fed while no effect is playing.
type liveMixer struct {
	mixer *beep.Mixer
}

func (m liveMixer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	if m.mixer.Len() > 0 {
		m.mixer.Stream(samples)
	}
	return len(samples), true
}

func (m liveMixer) Err() error { return nil }
