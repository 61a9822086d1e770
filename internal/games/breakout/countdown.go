package breakout

import (
	"math"
	"strconv"
	"time"
)

// GoText is shown once the numeric countdown has run out.
const GoText = "GO!"

// Countdown is the pre-play timer: a starting phase followed by a short
// "GO!" display. Play begins when the starting phase ends; the overlay
// goes away when the whole countdown has elapsed.
type Countdown struct {
	starting  time.Duration
	goDisplay time.Duration
	elapsed   time.Duration
}

// NewCountdown creates a countdown of starting + goDisplay.
func NewCountdown(starting, goDisplay time.Duration) *Countdown {
	return &Countdown{starting: starting, goDisplay: goDisplay}
}

// secondsToDuration converts a config value in seconds.
func secondsToDuration(secs float64) time.Duration {
	return time.Duration(math.Round(secs * float64(time.Second)))
}

// Duration returns the full countdown length.
func (c *Countdown) Duration() time.Duration {
	return c.starting + c.goDisplay
}

// Advance adds frame time. Elapsed time never exceeds Duration.
func (c *Countdown) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	if c.elapsed > c.Duration() {
		c.elapsed = c.Duration()
	}
}

// Elapsed returns the time counted so far.
func (c *Countdown) Elapsed() time.Duration {
	return c.elapsed
}

// Remaining returns the time left on the full countdown.
func (c *Countdown) Remaining() time.Duration {
	return c.Duration() - c.elapsed
}

// StartingDone reports whether play may begin.
func (c *Countdown) StartingDone() bool {
	return c.elapsed >= c.starting
}

// Finished reports whether the GO display is over too.
func (c *Countdown) Finished() bool {
	return c.elapsed >= c.Duration()
}

// Text returns the overlay text: whole seconds left before play, rounded up,
// or GoText once that reaches zero.
func (c *Countdown) Text() string {
	secs := math.Ceil((c.Remaining() - c.goDisplay).Seconds())
	if secs <= 0 {
		return GoText
	}
	return strconv.Itoa(int(secs))
}
