package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistryRegistersAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	// exercise one metric of each kind so Gather has something to report
	r.PipelineOperations.WithLabelValues("filter", "test").Inc()
	r.PipelineEvaluations.WithLabelValues("to_slice", "test").Inc()
	r.PipelineItems.WithLabelValues("to_slice", "test").Add(3)
	r.PipelineEvalDuration.WithLabelValues("to_slice", "test").Observe(0.001)
	r.RefreshRuns.WithLabelValues("view", "ok").Inc()
	r.RefreshDuration.WithLabelValues("view").Observe(0.001)
	r.RefreshSnapshotSize.WithLabelValues("view").Set(3)
	r.SourceFetches.WithLabelValues("redis_list", "ok").Inc()
	r.SourceItems.WithLabelValues("redis_list").Add(7)
	r.SourceFetchDuration.WithLabelValues("redis_list").Observe(0.001)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	want := []string{
		"seqflow_pipeline_operations_total",
		"seqflow_pipeline_evaluations_total",
		"seqflow_pipeline_items_produced_total",
		"seqflow_pipeline_evaluation_duration_seconds",
		"seqflow_refresher_runs_total",
		"seqflow_refresher_run_duration_seconds",
		"seqflow_refresher_snapshot_size",
		"seqflow_source_fetches_total",
		"seqflow_source_items_total",
		"seqflow_source_fetch_duration_seconds",
	}

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, name := range want {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestDefaultRegistryIsInitialized(t *testing.T) {
	if DefaultRegistry == nil {
		t.Fatal("DefaultRegistry should be initialized at package load")
	}
}

func TestNewRegistryIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewRegistry(reg)
	second := NewRegistry(reg)
	if first != second {
		t.Error("NewRegistry should return the same Registry for the same registerer")
	}

	if NewRegistry(prometheus.DefaultRegisterer) != DefaultRegistry {
		t.Error("NewRegistry on the default registerer should return DefaultRegistry")
	}
	if NewRegistry(nil) != DefaultRegistry {
		t.Error("NewRegistry(nil) should return DefaultRegistry")
	}
}

func TestRegistrationReusesExistingCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	// build twice against the same registerer; the second build must pick
	// up the collectors the first one registered instead of panicking
	first := newRegistry(reg)
	second := newRegistry(reg)

	if first.PipelineOperations != second.PipelineOperations {
		t.Error("expected the existing CounterVec to be reused")
	}
	if first.RefreshDuration != second.RefreshDuration {
		t.Error("expected the existing HistogramVec to be reused")
	}
	if first.RefreshSnapshotSize != second.RefreshSnapshotSize {
		t.Error("expected the existing GaugeVec to be reused")
	}

	first.PipelineOperations.WithLabelValues("filter", "shared").Inc()
	second.PipelineOperations.WithLabelValues("filter", "shared").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "seqflow_pipeline_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if got := m.GetCounter().GetValue(); got != 2 {
				t.Errorf("shared counter = %v, want 2", got)
			}
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("default config should enable metrics")
	}
	if cfg.Registry == nil {
		t.Error("default config should use the default registerer")
	}
}
