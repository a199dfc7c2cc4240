// Package metrics provides Prometheus instrumentation for seqflow components.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metric instances for seqflow components.
type Registry struct {
	// Pipeline Metrics
	PipelineOperations   *prometheus.CounterVec
	PipelineEvaluations  *prometheus.CounterVec
	PipelineItems        *prometheus.CounterVec
	PipelineEvalDuration *prometheus.HistogramVec

	// Refresher Metrics
	RefreshRuns         *prometheus.CounterVec
	RefreshDuration     *prometheus.HistogramVec
	RefreshSnapshotSize *prometheus.GaugeVec

	// Source Metrics
	SourceFetches       *prometheus.CounterVec
	SourceItems         *prometheus.CounterVec
	SourceFetchDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by seqflow components.
var DefaultRegistry *Registry

var (
	registriesMu sync.Mutex
	registries   = map[prometheus.Registerer]*Registry{}
)

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// register registers c with reg, reusing the existing collector when the
// same family was registered before. Several components sharing one
// registerer is the normal case, not an error.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(C)
		}
		panic(err)
	}
	return c
}

// NewRegistry returns the metrics registry for the given Prometheus
// registerer, creating it on first use. Repeated calls with the same
// registerer return the same Registry; a nil registerer means
// prometheus.DefaultRegisterer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	registriesMu.Lock()
	defer registriesMu.Unlock()

	if r, ok := registries[reg]; ok {
		return r
	}
	r := newRegistry(reg)
	registries[reg] = r
	return r
}

func newRegistry(reg prometheus.Registerer) *Registry {
	return &Registry{
		// Pipeline Metrics
		PipelineOperations: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "operations_total",
				Help:      "Total number of chain operations queued or applied",
			},
			[]string{"operation", "pipeline_name"},
		)),

		PipelineEvaluations: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "evaluations_total",
				Help:      "Total number of terminal evaluations",
			},
			[]string{"terminal", "pipeline_name"},
		)),

		PipelineItems: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "items_produced_total",
				Help:      "Total number of elements produced by terminal evaluations",
			},
			[]string{"terminal", "pipeline_name"},
		)),

		PipelineEvalDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "evaluation_duration_seconds",
				Help:      "Time spent in terminal evaluations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"terminal", "pipeline_name"},
		)),

		// Refresher Metrics
		RefreshRuns: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "refresher",
				Name:      "runs_total",
				Help:      "Total number of refresh runs",
			},
			[]string{"refresher_name", "status"},
		)),

		RefreshDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "seqflow",
				Subsystem: "refresher",
				Name:      "run_duration_seconds",
				Help:      "Time spent re-evaluating pipelines",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"refresher_name"},
		)),

		RefreshSnapshotSize: register(reg, prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "seqflow",
				Subsystem: "refresher",
				Name:      "snapshot_size",
				Help:      "Number of elements in the latest snapshot",
			},
			[]string{"refresher_name"},
		)),

		// Source Metrics
		SourceFetches: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "source",
				Name:      "fetches_total",
				Help:      "Total number of external source fetches",
			},
			[]string{"source_type", "status"},
		)),

		SourceItems: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "source",
				Name:      "items_total",
				Help:      "Total number of elements fetched from external sources",
			},
			[]string{"source_type"},
		)),

		SourceFetchDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "seqflow",
				Subsystem: "source",
				Name:      "fetch_duration_seconds",
				Help:      "Time spent fetching from external sources",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source_type"},
		)),
	}
}
