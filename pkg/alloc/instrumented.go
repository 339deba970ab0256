package alloc

import (
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rawbytedev/proof"
)

// InstrumentOptions configures NewInstrumented.
type InstrumentOptions struct {
	// Name is attached to every series as the "allocator" label.
	Name string
	// Registerer receives the metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
	// Logger receives a debug line per failed allocation. Nil disables it.
	Logger log.Logger
}

type metrics struct {
	allocations   prometheus.Counter
	deallocations prometheus.Counter
	failures      *prometheus.CounterVec
	bytesInUse    prometheus.Gauge
}

func newMetrics(name string, reg prometheus.Registerer) *metrics {
	labels := prometheus.Labels{"allocator": name}
	f := promauto.With(reg)
	return &metrics{
		allocations: f.NewCounter(prometheus.CounterOpts{
			Namespace:   "proof",
			Subsystem:   "alloc",
			Name:        "allocations_total",
			Help:        "Total number of successful allocations.",
			ConstLabels: labels,
		}),
		deallocations: f.NewCounter(prometheus.CounterOpts{
			Namespace:   "proof",
			Subsystem:   "alloc",
			Name:        "deallocations_total",
			Help:        "Total number of deallocations.",
			ConstLabels: labels,
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "proof",
			Subsystem:   "alloc",
			Name:        "failures_total",
			Help:        "Total number of failed allocations by kind.",
			ConstLabels: labels,
		}, []string{"kind"}),
		bytesInUse: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   "proof",
			Subsystem:   "alloc",
			Name:        "bytes_in_use",
			Help:        "Bytes handed out and not yet returned.",
			ConstLabels: labels,
		}),
	}
}

// Instrumented counts and logs the traffic through the allocator it wraps.
// It adds no locking of its own.
type Instrumented struct {
	next    Allocator
	name    string
	metrics *metrics
	logger  log.Logger
}

func NewInstrumented(next Allocator, opts InstrumentOptions) *Instrumented {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Instrumented{
		next:    next,
		name:    opts.Name,
		metrics: newMetrics(opts.Name, opts.Registerer),
		logger:  logger,
	}
}

func (a *Instrumented) Allocate(l Layout) (proof.Carrier[proof.Fresh, unsafe.Pointer], error) {
	p, err := a.next.Allocate(l)
	if err != nil {
		kind := KindOf(err)
		a.metrics.failures.WithLabelValues(kind.String()).Inc()
		level.Debug(a.logger).Log("msg", "allocation failed", "allocator", a.name, "kind", kind, "size", l.Size, "align", l.Align, "err", err)
		return p, err
	}
	a.metrics.allocations.Inc()
	a.metrics.bytesInUse.Add(float64(l.Size))
	return p, nil
}

func (a *Instrumented) Deallocate(p proof.Carrier[proof.Fresh, unsafe.Pointer], l Layout) {
	a.next.Deallocate(p, l)
	a.metrics.deallocations.Inc()
	a.metrics.bytesInUse.Sub(float64(l.Size))
}

// Stats reports the wrapped allocator's usage, or zero if it keeps none.
func (a *Instrumented) Stats() Stats {
	if r, ok := a.next.(StatsReporter); ok {
		return r.Stats()
	}
	return Stats{}
}
