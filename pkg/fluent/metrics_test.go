package fluent_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nikitashade/seqflow/internal/testutil"
	"github.com/nikitashade/seqflow/pkg/fluent"
	"github.com/nikitashade/seqflow/pkg/fluent/eager"
	"github.com/nikitashade/seqflow/pkg/fluent/lazy"
	"github.com/nikitashade/seqflow/pkg/metrics"
)

func TestWithMetricsDisabledReturnsInner(t *testing.T) {
	inner := eager.Of(1, 2, 3)

	wrapped := fluent.WithMetrics[int](inner, "test", metrics.Config{Enabled: false})

	if wrapped != fluent.Pipeline[int](inner) {
		t.Error("disabled metrics should return the inner pipeline unchanged")
	}
}

func TestWithMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	config := metrics.Config{Enabled: true, Registry: reg}

	// two pipelines instrumented against the same registry must coexist
	a := fluent.WithMetrics[int](lazy.Of(1, 2, 3), "a", config)
	b := fluent.WithMetrics[int](eager.Of(4, 5, 6), "b", config)

	testutil.AssertEqual(t, a.Count(), 3)
	testutil.AssertEqual(t, b.Count(), 3)

	families, err := reg.Gather()
	testutil.AssertNoError(t, err)

	var series int
	for _, mf := range families {
		if mf.GetName() == "seqflow_pipeline_evaluations_total" {
			series = len(mf.GetMetric())
		}
	}
	// one count series per pipeline name
	testutil.AssertEqual(t, series, 2)
}

func TestWithMetricsDefaultConfig(t *testing.T) {
	p := fluent.WithMetrics[int](lazy.Of(1, 2, 3), "default-config", metrics.DefaultConfig())

	testutil.AssertSliceEqual(t, p.ToSlice(), []int{1, 2, 3})
}

func TestWithMetricsPreservesResults(t *testing.T) {
	reg := prometheus.NewRegistry()
	config := metrics.Config{Enabled: true, Registry: reg}

	p := fluent.WithMetrics[int](lazy.Of(1, -2, 3, -4, 5), "scores", config)

	result := p.
		Filter(func(n int) bool { return n > 0 }).
		Take(2).
		ToSlice()

	testutil.AssertSliceEqual(t, result, []int{1, 3})

	families, err := reg.Gather()
	testutil.AssertNoError(t, err)

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	if !found["seqflow_pipeline_operations_total"] {
		t.Error("expected seqflow_pipeline_operations_total to be recorded")
	}
	if !found["seqflow_pipeline_evaluations_total"] {
		t.Error("expected seqflow_pipeline_evaluations_total to be recorded")
	}
	if !found["seqflow_pipeline_items_produced_total"] {
		t.Error("expected seqflow_pipeline_items_produced_total to be recorded")
	}
}

func TestWithMetricsWholeChainStaysInstrumented(t *testing.T) {
	reg := prometheus.NewRegistry()
	config := metrics.Config{Enabled: true, Registry: reg}

	p := fluent.WithMetrics[int](eager.Of(1, 2, 3, 4), "chain", config)

	count := p.
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * 10 }).
		Count()

	testutil.AssertEqual(t, count, 2)

	families, err := reg.Gather()
	testutil.AssertNoError(t, err)

	var ops float64
	for _, mf := range families {
		if mf.GetName() != "seqflow_pipeline_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			ops += m.GetCounter().GetValue()
		}
	}
	// filter + map, each counted once
	testutil.AssertEqual(t, ops, 2.0)
}

func TestWithMetricsTerminalOptionals(t *testing.T) {
	reg := prometheus.NewRegistry()
	config := metrics.Config{Enabled: true, Registry: reg}

	p := fluent.WithMetrics[int](lazy.Of(1, 3, 5), "odds", config)

	v, ok := p.First().Get()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 1)

	absent := p.Filter(func(n int) bool { return n%2 == 0 }).Last()
	testutil.AssertEqual(t, absent.IsPresent(), false)
}
