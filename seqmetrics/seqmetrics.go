// Package seqmetrics counts elements flowing through named sequence stages
// with Prometheus counters.
//
// Example:
//
//	m, _ := seqmetrics.New(prometheus.DefaultRegisterer)
//	squares := seqmetrics.Instrument(seq.Map(src, square), m, "square")
package seqmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/charmingruby/lazyseq/seq"
)

// Metrics holds the counters shared by every instrumented stage.
type Metrics struct {
	pulled *prometheus.CounterVec
	runs   *prometheus.CounterVec
}

type config struct {
	namespace string
}

// Option configures New.
type Option func(*config)

// WithNamespace sets the metric name prefix. Defaults to "lazyseq".
func WithNamespace(namespace string) Option {
	return func(c *config) {
		c.namespace = namespace
	}
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer, opts ...Option) (*Metrics, error) {
	cfg := config{namespace: "lazyseq"}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Metrics{
		pulled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "elements_pulled_total",
			Help:      "Elements pulled through an instrumented stage.",
		}, []string{"stage"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "runs_total",
			Help:      "Iterations opened over an instrumented stage.",
		}, []string{"stage"}),
	}
	for _, c := range []prometheus.Collector{m.pulled, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrument returns s unchanged except that every terminal call increments
// runs_total and every element yielded increments elements_pulled_total,
// both labelled with stage. Instrumenting adds no pulls of its own.
func Instrument[T any](s seq.Sequence[T], m *Metrics, stage string) seq.Sequence[T] {
	return seq.Defer(func() seq.Sequence[T] {
		m.runs.WithLabelValues(stage).Inc()
		pulled := m.pulled.WithLabelValues(stage)
		return s.OnEach(func(T) { pulled.Inc() })
	})
}
