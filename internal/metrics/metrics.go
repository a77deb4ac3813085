// Package metrics exposes Prometheus instrumentation for the planner.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "planner"

// Allocation outcomes.
const (
	OutcomeSolved   = "solved"
	OutcomeCached   = "cached"
	OutcomeRejected = "rejected"
	OutcomeTimeout  = "timeout"
	OutcomeFailed   = "failed"
)

// Recorder holds the planner collectors. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	solveDuration prometheus.Histogram
	allocations   *prometheus.CounterVec
	pruned        prometheus.Counter
	considered    prometheus.Counter
}

// NewRecorder creates a registry with the Go and process collectors and
// registers the planner collectors on it.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent preprocessing, filling and backtracking one allocation.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		allocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocation requests by outcome.",
		}, []string{"outcome"}),
		pruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_pruned_total",
			Help:      "Campaigns removed by dominance pruning before the fill.",
		}),
		considered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_considered_total",
			Help:      "Campaigns handed to the solver.",
		}),
	}
}

// ObserveSolve records the duration of one solve together with how many
// campaigns went in and how many were pruned.
func (r *Recorder) ObserveSolve(d time.Duration, considered, pruned int) {
	if r == nil {
		return
	}
	r.solveDuration.Observe(d.Seconds())
	r.considered.Add(float64(considered))
	r.pruned.Add(float64(pruned))
}

// IncAllocation counts one allocation request with the given outcome.
func (r *Recorder) IncAllocation(outcome string) {
	if r == nil {
		return
	}
	r.allocations.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
