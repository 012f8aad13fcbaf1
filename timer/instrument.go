package timer

import (
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Adder represents a metric to which deltas can be added.  Go-kit's
// metrics.Counter and metrics.Gauge implement this interface.
type Adder interface {
	Add(float64)
}

// Setter represents a metric that can receive new values, e.g. a gauge.
type Setter interface {
	Set(float64)
}

// InstrumentOption represents a configurable option for instrumenting a timer
type InstrumentOption func(*instrumentedTimer)

// WithValueGauge establishes a metric that tracks the timer's value across
// mutating operations.  If a nil gauge is supplied, values are discarded.
func WithValueGauge(s Setter) InstrumentOption {
	return func(i *instrumentedTimer) {
		if s != nil {
			i.value = s
		} else {
			i.value = discard.NewGauge()
		}
	}
}

// WithInterruptCounter establishes a metric that counts countdown completions,
// i.e. CheckInterrupt calls that fired.  If a nil counter is supplied,
// completions are discarded.
func WithInterruptCounter(a Adder) InstrumentOption {
	return func(i *instrumentedTimer) {
		if a != nil {
			i.interrupts = a
		} else {
			i.interrupts = discard.NewCounter()
		}
	}
}

// WithRejectCounter establishes a metric that counts Arm calls rejected for an
// out-of-range duration.  If a nil counter is supplied, rejections are
// discarded.
func WithRejectCounter(a Adder) InstrumentOption {
	return func(i *instrumentedTimer) {
		if a != nil {
			i.rejects = a
		} else {
			i.rejects = discard.NewCounter()
		}
	}
}

// WithLogger establishes a go-kit logger that receives debug-level state
// transition events.  If a nil logger is supplied, events are discarded.
func WithLogger(l log.Logger) InstrumentOption {
	return func(i *instrumentedTimer) {
		if l != nil {
			i.logger = l
		} else {
			i.logger = log.NewNopLogger()
		}
	}
}

// Instrument decorates an existing timer with a set of options.  By default
// the returned timer discards all metrics and log events.
func Instrument(next Interface, o ...InstrumentOption) Interface {
	it := &instrumentedTimer{
		Interface:  next,
		value:      discard.NewGauge(),
		interrupts: discard.NewCounter(),
		rejects:    discard.NewCounter(),
		logger:     log.NewNopLogger(),
	}

	for _, f := range o {
		f(it)
	}

	return it
}

type instrumentedTimer struct {
	Interface
	value      Setter
	interrupts Adder
	rejects    Adder
	logger     log.Logger
}

func (it *instrumentedTimer) Arm(duration int) (err error) {
	err = it.Interface.Arm(duration)
	if err != nil {
		it.rejects.Add(1.0)
		level.Debug(it.logger).Log("msg", "arm rejected", "duration", duration, "error", err)
	} else {
		it.value.Set(float64(it.Interface.Value()))
		level.Debug(it.logger).Log("msg", "timer armed", "mode", Countdown, "duration", duration)
	}

	return
}

func (it *instrumentedTimer) ArmStopwatch() {
	it.Interface.ArmStopwatch()
	it.value.Set(0.0)
	level.Debug(it.logger).Log("msg", "timer armed", "mode", Stopwatch)
}

func (it *instrumentedTimer) Advance() bool {
	advanced := it.Interface.Advance()
	if advanced {
		it.value.Set(float64(it.Interface.Value()))
	}

	return advanced
}

func (it *instrumentedTimer) CheckInterrupt() bool {
	fired := it.Interface.CheckInterrupt()
	if fired {
		it.interrupts.Add(1.0)
		level.Debug(it.logger).Log("msg", "interrupt fired")
	}

	return fired
}

func (it *instrumentedTimer) Reset() {
	it.Interface.Reset()
	it.value.Set(0.0)
	level.Debug(it.logger).Log("msg", "timer reset")
}
