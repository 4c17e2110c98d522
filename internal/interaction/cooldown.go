package interaction

import "math"

// DefaultCooldown is the debounce window between two successful triggers, in seconds.
const DefaultCooldown float32 = 0.3

// Cooldown is a count-down timer floored at zero.
type Cooldown struct {
	remaining float32
}

// Advance subtracts deltaTime. Negative and NaN deltas are ignored.
func (c *Cooldown) Advance(deltaTime float32) {
	if !(deltaTime > 0) || c.remaining == 0 {
		return
	}
	c.remaining -= deltaTime
	if c.remaining < 0 {
		c.remaining = 0
	}
}

func (c *Cooldown) IsReady() bool {
	return c.remaining == 0
}

// Reset restarts the timer at duration. Negative or non-finite durations
// leave the timer ready.
func (c *Cooldown) Reset(duration float32) {
	if !nonNegativeFinite(duration) {
		duration = 0
	}
	c.remaining = duration
}

func (c *Cooldown) Remaining() float32 {
	return c.remaining
}

func nonNegativeFinite(d float32) bool {
	return d >= 0 && !math.IsInf(float64(d), 0)
}
