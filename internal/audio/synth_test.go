package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func drain(s beep.Streamer) (all [][2]float64) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return p
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewTone(660, 60*time.Millisecond, rate))

	if len(samples) != rate.N(60*time.Millisecond) {
		t.Errorf("got %d samples, expected %d", len(samples), rate.N(60*time.Millisecond))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v, expected mono within [-1, 1]", i, s)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 60 * time.Millisecond
	samples := drain(NewEnvelope(NewTone(660, d, rate), d, blipAttack, blipRelease, rate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at the start of the attack", samples[0][0])
	}
	tail := samples[len(samples)-10:]
	if p := peak(tail); p > 0.01 {
		t.Errorf("tail peak = %v, expected the release to fade out", p)
	}
	if p := peak(samples); p < 0.9 {
		t.Errorf("peak = %v, expected the sustain to reach full level", p)
	}
}

func TestGain(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{-3, 0},
		{0, 0},
		{9, 1},
		{12, 1},
	}
	for _, tc := range tests {
		if got := Gain(tc.level); got != tc.want {
			t.Errorf("Gain(%d) = %v, expected %v", tc.level, got, tc.want)
		}
	}
	if Gain(3) >= Gain(7) {
		t.Error("gain must grow with the level")
	}
}

func TestBlipFollowsVolume(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Audio

	silent := drain(NewBlip(cfg, 0))
	if p := peak(silent); p != 0 {
		t.Errorf("volume 0 peak = %v, expected silence", p)
	}

	quiet := peak(drain(NewBlip(cfg, 2)))
	loud := peak(drain(NewBlip(cfg, 9)))
	if quiet <= 0 || quiet >= loud {
		t.Errorf("peaks quiet=%v loud=%v, expected 0 < quiet < loud", quiet, loud)
	}
	if loud > 1 {
		t.Errorf("loud peak = %v, expected headroom", loud)
	}
}

func TestLiveMixerNeverEnds(t *testing.T) {
	m := liveMixer{mixer: &beep.Mixer{}}
	buf := make([][2]float64, 64)
	for i := range buf {
		buf[i] = [2]float64{0.5, 0.5}
	}

	n, ok := m.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream() = %d, %v on an empty mixer", n, ok)
	}
	if p := peak(buf); p != 0 {
		t.Errorf("empty mixer produced %v", p)
	}

	cfg := config.DefaultBreakoutConfig().Audio
	m.mixer.Add(NewBlip(cfg, 9))
	var total [][2]float64
	for i := 0; i < 100; i++ {
		n, ok := m.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Stream() = %d, %v while mixing", n, ok)
		}
		total = append(total, buf...)
	}
	if peak(total) == 0 {
		t.Error("blip was not mixed in")
	}
	if m.mixer.Len() != 0 {
		t.Errorf("finished blip still in the mixer")
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(config.DefaultBreakoutConfig().Audio, nil)

	p.PlayCollision()
	if p.mixer.Len() != 0 {
		t.Error("blip queued before Open")
	}

	p.SetVolume(42)
	if p.Volume() != config.MaxVolume {
		t.Errorf("Volume() = %d, expected clamp to %d", p.Volume(), config.MaxVolume)
	}
	p.Close()
}
