// Package metrics holds the prometheus collectors for route optimisation runs.
//
// Each Collector owns a dedicated registry, so several optimizers (or tests)
// can keep separate counts. The CLI dumps the registry in the prometheus text
// format with WriteText.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "waypath"

// Solve outcome labels.
const (
	StatusOK          = "ok"
	StatusInvalidTour = "invalid_tour"
	StatusNoValidTour = "no_valid_tour"
)

// Collector groups the solver metrics.
type Collector struct {
	registry *prometheus.Registry

	// Solves counts Solve calls by outcome status
	Solves *prometheus.CounterVec
	// SolveDuration records Solve wall time in seconds by outcome status
	SolveDuration *prometheus.HistogramVec
	// Generations counts evaluated generations across all runs
	Generations prometheus.Counter
	// BestFitness is the best-ever fitness of the most recent generation
	BestFitness prometheus.Gauge
	// TourDistance is the distance of the most recent successful Solve
	TourDistance prometheus.Gauge
	// PathQueries counts shortest-path cache lookups by result (hit, miss)
	PathQueries *prometheus.CounterVec
}

// Option configures New.
type Option func(*prometheus.Registry)

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(r *prometheus.Registry) {
		r.MustRegister(collectors.NewGoCollector())
		r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
}

// New creates a Collector on a fresh registry.
func New(opts ...Option) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "solves_total", Help: "Route solves by outcome."},
			[]string{"status"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "solve_duration_seconds", Help: "Route solve duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"status"},
		),
		Generations: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "generations_total", Help: "Evaluated generations."},
		),
		BestFitness: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "best_fitness", Help: "Best-ever fitness of the latest generation."},
		),
		TourDistance: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "tour_distance", Help: "Distance of the latest successful tour."},
		),
		PathQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "path_queries_total", Help: "Shortest-path cache lookups by result."},
			[]string{"result"},
		),
	}
	c.registry.MustRegister(c.Solves, c.SolveDuration, c.Generations, c.BestFitness, c.TourDistance, c.PathQueries)
	for _, opt := range opts {
		opt(c.registry)
	}

	return c
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveSolve records one Solve outcome.
func (c *Collector) ObserveSolve(status string, elapsed time.Duration, distance float64) {
	c.Solves.WithLabelValues(status).Inc()
	c.SolveDuration.WithLabelValues(status).Observe(elapsed.Seconds())
	if status == StatusOK {
		c.TourDistance.Set(distance)
	}
}

// ObserveGeneration records one evaluated generation.
func (c *Collector) ObserveGeneration(bestEver float64) {
	c.Generations.Inc()
	c.BestFitness.Set(bestEver)
}

// ObservePathQuery records a cache lookup; it matches the
// dijkstra.PathCache observer signature.
func (c *Collector) ObservePathQuery(hit bool) {
	if hit {
		c.PathQueries.WithLabelValues("hit").Inc()
		return
	}
	c.PathQueries.WithLabelValues("miss").Inc()
}

// WriteText writes every gathered family in the prometheus text format,
// sorted by name.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Value returns the current value of the counter or gauge sample in family
// whose labels include every pair in labels.
func (c *Collector) Value(family string, labels map[string]string) (float64, bool) {
	families, err := c.registry.Gather()
	if err != nil {
		return 0, false
	}
	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matchLabels(m.GetLabel(), labels) {
				return sampleValue(mf.GetType(), m)
			}
		}
	}

	return 0, false
}

func matchLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	found := 0
	for _, lp := range pairs {
		if v, ok := want[lp.GetName()]; ok {
			if v != lp.GetValue() {
				return false
			}
			found++
		}
	}
	return found == len(want)
}

func sampleValue(t dto.MetricType, m *dto.Metric) (float64, bool) {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount()), true
	}
	return 0, false
}
