// Package prommetrics exports open list metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := prommetrics.New(reg)
//	f, _ := openlist.NewFactory(cfg, openlist.WithMetricsCollector(mc))
package prommetrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/openlist"
)

// Namespace prefixes every metric name.
const Namespace = "openlist"

// Collector implements openlist.MetricsCollector on top of Prometheus
// metrics. It is safe for concurrent use and may be shared between lists.
type Collector struct {
	inserts    *prometheus.CounterVec
	removes    prometheus.Counter
	positions  prometheus.Histogram
	dimensions prometheus.Counter
	maxDim     prometheus.Gauge
	clears     prometheus.Counter

	max atomic.Int64
}

var _ openlist.MetricsCollector = (*Collector)(nil)

// Option configures a Collector.
type Option func(*collectorOptions)

type collectorOptions struct {
	subsystem   string
	constLabels prometheus.Labels
}

// WithSubsystem sets the subsystem part of the metric names, e.g. "state"
// for openlist_state_inserts_total.
func WithSubsystem(s string) Option {
	return func(o *collectorOptions) {
		o.subsystem = s
	}
}

// WithConstLabels attaches fixed labels to every metric.
func WithConstLabels(l prometheus.Labels) Option {
	return func(o *collectorOptions) {
		o.constLabels = l
	}
}

// New creates a Collector and registers its metrics with reg. A nil reg
// leaves the metrics unregistered.
func New(reg prometheus.Registerer, optFns ...Option) *Collector {
	var o collectorOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	factory := promauto.With(reg)
	return &Collector{
		inserts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   Namespace,
			Subsystem:   o.subsystem,
			Name:        "inserts_total",
			Help:        "Insert calls by outcome.",
			ConstLabels: o.constLabels,
		}, []string{"outcome"}),
		removes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Subsystem:   o.subsystem,
			Name:        "removes_total",
			Help:        "Entries served by RemoveMin.",
			ConstLabels: o.constLabels,
		}),
		positions: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   Namespace,
			Subsystem:   o.subsystem,
			Name:        "remove_position",
			Help:        "Type-bucket position (0-based) RemoveMin served from.",
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32, 64},
			ConstLabels: o.constLabels,
		}),
		dimensions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Subsystem:   o.subsystem,
			Name:        "dimension_increases_total",
			Help:        "Times a plateau raised its fractal dimension.",
			ConstLabels: o.constLabels,
		}),
		maxDim: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   Namespace,
			Subsystem:   o.subsystem,
			Name:        "max_dimension",
			Help:        "Largest fractal dimension reached.",
			ConstLabels: o.constLabels,
		}),
		clears: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Subsystem:   o.subsystem,
			Name:        "clears_total",
			Help:        "Clear calls.",
			ConstLabels: o.constLabels,
		}),
	}
}

// RecordInsert implements openlist.MetricsCollector.
func (c *Collector) RecordInsert(outcome openlist.InsertOutcome) {
	c.inserts.WithLabelValues(outcome.String()).Inc()
}

// RecordRemove implements openlist.MetricsCollector.
func (c *Collector) RecordRemove(position int) {
	c.removes.Inc()
	c.positions.Observe(float64(position))
}

// RecordDimensionIncrease implements openlist.MetricsCollector.
func (c *Collector) RecordDimensionIncrease(dim int) {
	c.dimensions.Inc()
	c.observeMax(int64(dim))
}

// RecordClear implements openlist.MetricsCollector.
func (c *Collector) RecordClear() {
	c.clears.Inc()
}

func (c *Collector) observeMax(dim int64) {
	for {
		cur := c.max.Load()
		if dim <= cur {
			return
		}
		if c.max.CompareAndSwap(cur, dim) {
			c.maxDim.Set(float64(dim))
			return
		}
	}
}
