package clock

import "time"

// Clock supplies per-tick frame timing. Delta is the seconds elapsed since
// the previous tick and is what turns per-second rates (spin, lookToward,
// move) into per-tick deltas.
type Clock interface {
	// Advance moves the clock to the next tick.
	Advance()
	// Delta returns the seconds covered by the current tick.
	Delta() float64
	// Tick returns the current tick number, starting at 0.
	Tick() uint64
}

// Fixed is a deterministic fixed-step clock. It drives the engine's
// simulation step and makes tests reproducible.
type Fixed struct {
	step float64
	tick uint64
}

// NewFixed creates a fixed clock stepping by step seconds per tick.
func NewFixed(step float64) *Fixed {
	return &Fixed{step: step}
}

func (c *Fixed) Advance()       { c.tick++ }
func (c *Fixed) Delta() float64 { return c.step }
func (c *Fixed) Tick() uint64   { return c.tick }

// Wall measures real elapsed time between ticks, clamped to maxStep so a
// stall does not produce one giant catch-up tick.
type Wall struct {
	maxStep float64
	last    time.Time
	delta   float64
	tick    uint64
}

// NewWall creates a wall clock with the given maximum step in seconds.
func NewWall(maxStep float64) *Wall {
	return &Wall{maxStep: maxStep, last: time.Now()}
}

func (c *Wall) Advance() {
	now := time.Now()
	c.delta = now.Sub(c.last).Seconds()
	if c.delta > c.maxStep {
		c.delta = c.maxStep
	}
	c.last = now
	c.tick++
}

func (c *Wall) Delta() float64 { return c.delta }
func (c *Wall) Tick() uint64   { return c.tick }
