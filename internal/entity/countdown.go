package entity

// Countdown is a tick counter that saturates at zero. Tick reports true once
// the counter has reached zero; the owner resets it with Set.
type Countdown int

// Set restarts the countdown. Negative values are clamped to zero.
func (c *Countdown) Set(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	*c = Countdown(ticks)
}

// Tick decrements the countdown and reports whether it has reached zero.
func (c *Countdown) Tick() bool {
	if *c > 0 {
		*c--
	}
	return *c == 0
}

// Remaining returns the ticks left.
func (c Countdown) Remaining() int {
	return int(c)
}
