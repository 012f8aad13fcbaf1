package timer

import "errors"

const (
	// DefaultMaxDuration is the upper bound applied to timers constructed
	// without a WithMaxDuration option.
	DefaultMaxDuration = 255
)

var (
	// ErrInvalidDuration is returned by Arm when the requested duration falls
	// outside [1, MaxDuration].  The timer is left unchanged in that case.
	ErrInvalidDuration = errors.New("The duration must be between 1 and the timer's maximum duration")
)

// Mode identifies the operating mode of a Timer.
type Mode int

const (
	// Disabled is the initial mode.  A disabled timer ignores Advance and
	// CheckInterrupt.
	Disabled Mode = iota

	// Countdown decrements the value toward zero and raises the interrupt
	// flag once it gets there.
	Countdown

	// Stopwatch increments the value with no completion signal.
	Stopwatch
)

func (m Mode) String() string {
	switch m {
	case Countdown:
		return "countdown"
	case Stopwatch:
		return "stopwatch"
	default:
		return "disabled"
	}
}

// Interface is the operation surface of a timer.  It is implemented by *Timer
// and by the decorator returned from Instrument.
type Interface interface {
	// Arm places the timer into Countdown mode with the given duration,
	// clearing any pending interrupt.  Durations outside [1, MaxDuration]
	// are rejected with ErrInvalidDuration and leave the timer untouched.
	// Arming is legal from any state; re-arming a running timer overwrites it.
	Arm(duration int) error

	// ArmStopwatch places the timer into Stopwatch mode with a zero value,
	// clearing any pending interrupt.  Legal from any state.
	ArmStopwatch()

	// Advance moves the value one tick in the direction of the current mode:
	// down in Countdown, up in Stopwatch.  It reports whether the value
	// changed.  A disabled timer, a countdown already at zero, and a
	// stopwatch pinned at MaxDuration all report false.
	Advance() bool

	// CheckInterrupt polls for countdown completion.  If the timer is an
	// enabled countdown at zero, the interrupt flag is raised, the timer is
	// disarmed, and true is returned.  In every other state this is a no-op
	// returning false.  Callers poll this after each Advance; the flag stays
	// set until the timer is re-armed or Reset.
	CheckInterrupt() bool

	// Reset unconditionally returns the timer to its initial state: zero
	// value, disabled, no pending interrupt.  Reset is idempotent.
	Reset()

	// Value returns the current counter value, always in [0, MaxDuration].
	Value() int

	// Enabled reports whether the timer is actively counting.
	Enabled() bool

	// Interrupted reports whether a countdown has completed and the
	// interrupt flag has not yet been cleared.
	Interrupted() bool

	// Mode returns the current operating mode.
	Mode() Mode

	// MaxDuration returns the configured upper bound for Value.
	MaxDuration() int
}

// Option is a configuration option for a Timer.
type Option func(*Timer)

// WithMaxDuration sets the upper bound for the timer's value and for durations
// accepted by Arm.  A nonpositive bound results in a panic.
func WithMaxDuration(maxDuration int) Option {
	if maxDuration < 1 {
		panic("The maximum duration must be positive")
	}

	return func(t *Timer) {
		t.maxDuration = maxDuration
	}
}

// New constructs a disabled Timer with zero or more options.  By default the
// returned timer is bounded by DefaultMaxDuration.
func New(options ...Option) *Timer {
	t := &Timer{
		maxDuration: DefaultMaxDuration,
	}

	for _, o := range options {
		o(t)
	}

	return t
}

// Timer is a bounded countdown/stopwatch counter.  The zero value is not
// usable; construct timers with New.
type Timer struct {
	maxDuration int
	value       int
	enabled     bool
	interrupt   bool
	mode        Mode
}

var _ Interface = (*Timer)(nil)

func (t *Timer) Arm(duration int) error {
	if duration < 1 || duration > t.maxDuration {
		return ErrInvalidDuration
	}

	t.value = duration
	t.enabled = true
	t.interrupt = false
	t.mode = Countdown
	return nil
}

func (t *Timer) ArmStopwatch() {
	t.value = 0
	t.enabled = true
	t.interrupt = false
	t.mode = Stopwatch
}

func (t *Timer) Advance() bool {
	if !t.enabled {
		return false
	}

	switch t.mode {
	case Countdown:
		if t.value > 0 {
			t.value--
			return true
		}

	case Stopwatch:
		// saturates rather than exceeding the bound
		if t.value < t.maxDuration {
			t.value++
			return true
		}
	}

	return false
}

func (t *Timer) CheckInterrupt() bool {
	if t.enabled && t.mode == Countdown && t.value == 0 {
		t.interrupt = true
		t.enabled = false
		t.mode = Disabled
		return true
	}

	return false
}

func (t *Timer) Reset() {
	t.value = 0
	t.enabled = false
	t.interrupt = false
	t.mode = Disabled
}

func (t *Timer) Value() int {
	return t.value
}

func (t *Timer) Enabled() bool {
	return t.enabled
}

func (t *Timer) Interrupted() bool {
	return t.interrupt
}

func (t *Timer) Mode() Mode {
	return t.mode
}

func (t *Timer) MaxDuration() int {
	return t.maxDuration
}
