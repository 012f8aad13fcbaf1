package timer

import (
	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names registered by NewMetrics.
const (
	ValueGauge           = "timer_value"
	InterruptsFiredCount = "timer_interrupts_fired_count"
	ArmRejectedCount     = "timer_arm_rejected_count"
)

// Metrics holds the go-kit metrics a timer can be instrumented with.
type Metrics struct {
	// Value tracks the timer's current counter value
	Value metrics.Gauge

	// InterruptsFired counts countdown completions
	InterruptsFired metrics.Counter

	// ArmRejected counts arm attempts rejected for an out-of-range duration
	ArmRejected metrics.Counter
}

// Options translates this Metrics into the corresponding instrumentation
// options, for use with Instrument.
func (m Metrics) Options() []InstrumentOption {
	return []InstrumentOption{
		WithValueGauge(m.Value),
		WithInterruptCounter(m.InterruptsFired),
		WithRejectCounter(m.ArmRejected),
	}
}

// NewMetrics registers this package's metrics with the given registerer and
// returns go-kit wrappers for them.  Metrics already registered, as when
// several timers share one registry, are reused rather than treated as errors.
func NewMetrics(r prometheus.Registerer) Metrics {
	return Metrics{
		Value: gokitprometheus.NewGauge(
			registerGaugeVec(r, prometheus.GaugeOpts{
				Name: ValueGauge,
				Help: "The current counter value of the timer",
			}),
		),
		InterruptsFired: gokitprometheus.NewCounter(
			registerCounterVec(r, prometheus.CounterOpts{
				Name: InterruptsFiredCount,
				Help: "The number of countdown completions",
			}),
		),
		ArmRejected: gokitprometheus.NewCounter(
			registerCounterVec(r, prometheus.CounterOpts{
				Name: ArmRejectedCount,
				Help: "The number of arm attempts rejected for an out-of-range duration",
			}),
		),
	}
}

func registerGaugeVec(r prometheus.Registerer, o prometheus.GaugeOpts) *prometheus.GaugeVec {
	gaugeVec := prometheus.NewGaugeVec(o, []string{})
	if err := r.Register(gaugeVec); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			gaugeVec = already.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			panic(err)
		}
	}

	return gaugeVec
}

func registerCounterVec(r prometheus.Registerer, o prometheus.CounterOpts) *prometheus.CounterVec {
	counterVec := prometheus.NewCounterVec(o, []string{})
	if err := r.Register(counterVec); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			counterVec = already.ExistingCollector.(*prometheus.CounterVec)
		} else {
			panic(err)
		}
	}

	return counterVec
}
