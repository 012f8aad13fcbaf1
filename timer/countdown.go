package timer

// CountdownTimer is the single-mode variant of Timer: a counter that only counts
// down, with mode management hidden from the caller.  It matches the shape of
// a fixed-function hardware countdown register, where Timer models the moded
// generalization.
type CountdownTimer struct {
	t Timer
}

// NewCountdown constructs a disabled CountdownTimer with zero or more options.
// The same options accepted by New apply here.
func NewCountdown(options ...Option) *CountdownTimer {
	return &CountdownTimer{t: *New(options...)}
}

// Set arms the countdown with the given duration.  Durations outside
// [1, MaxDuration] are rejected with ErrInvalidDuration and leave the
// countdown untouched.
func (c *CountdownTimer) Set(duration int) error {
	return c.t.Arm(duration)
}

// Advance decrements the value by one tick, reporting whether a decrement
// occurred.  Disabled countdowns and countdowns already at zero report false.
func (c *CountdownTimer) Advance() bool {
	return c.t.Advance()
}

// CheckInterrupt polls for completion, raising the sticky interrupt flag and
// disarming the countdown once the value has reached zero.
func (c *CountdownTimer) CheckInterrupt() bool {
	return c.t.CheckInterrupt()
}

// Reset unconditionally returns the countdown to its initial state.
func (c *CountdownTimer) Reset() {
	c.t.Reset()
}

func (c *CountdownTimer) Value() int {
	return c.t.Value()
}

func (c *CountdownTimer) Enabled() bool {
	return c.t.Enabled()
}

func (c *CountdownTimer) Interrupted() bool {
	return c.t.Interrupted()
}

func (c *CountdownTimer) MaxDuration() int {
	return c.t.MaxDuration()
}
