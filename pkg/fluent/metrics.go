package fluent

import (
	"time"

	"github.com/nikitashade/seqflow/pkg/metrics"
)

// metricsPipeline wraps a Pipeline with Prometheus metrics collection.
// Chain operations count one operation and rewrap, so the whole chain stays
// instrumented; terminal operations record duration and produced items.
type metricsPipeline[T any] struct {
	inner    Pipeline[T]
	name     string
	registry *metrics.Registry
}

// WithMetrics wraps p so that every operation and terminal evaluation is
// recorded under the given pipeline name. With metrics disabled in config,
// p is returned unchanged.
func WithMetrics[T any](p Pipeline[T], name string, config metrics.Config) Pipeline[T] {
	if !config.Enabled {
		return p
	}

	return &metricsPipeline[T]{
		inner:    p,
		name:     name,
		registry: metrics.NewRegistry(config.Registry),
	}
}

func (mp *metricsPipeline[T]) rewrap(inner Pipeline[T]) Pipeline[T] {
	return &metricsPipeline[T]{inner: inner, name: mp.name, registry: mp.registry}
}

func (mp *metricsPipeline[T]) countOp(operation string) {
	mp.registry.PipelineOperations.WithLabelValues(operation, mp.name).Inc()
}

func (mp *metricsPipeline[T]) observe(terminal string, start time.Time, items int) {
	mp.registry.PipelineEvaluations.WithLabelValues(terminal, mp.name).Inc()
	mp.registry.PipelineEvalDuration.WithLabelValues(terminal, mp.name).Observe(time.Since(start).Seconds())
	mp.registry.PipelineItems.WithLabelValues(terminal, mp.name).Add(float64(items))
}

// Filter counts the operation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) Filter(predicate func(T) bool) Pipeline[T] {
	mp.countOp("filter")
	return mp.rewrap(mp.inner.Filter(predicate))
}

// Map counts the operation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) Map(mapper func(T) T) Pipeline[T] {
	mp.countOp("map")
	return mp.rewrap(mp.inner.Map(mapper))
}

// MapTo counts the operation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) MapTo(mapper func(T) any) Pipeline[any] {
	mp.countOp("map_to")
	return &metricsPipeline[any]{inner: mp.inner.MapTo(mapper), name: mp.name, registry: mp.registry}
}

// Peek counts the operation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) Peek(action func(T)) Pipeline[T] {
	mp.countOp("peek")
	return mp.rewrap(mp.inner.Peek(action))
}

// Take counts the operation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) Take(n int) Pipeline[T] {
	mp.countOp("take")
	return mp.rewrap(mp.inner.Take(n))
}

// TakeLast counts the operation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) TakeLast(n int) Pipeline[T] {
	mp.countOp("take_last")
	return mp.rewrap(mp.inner.TakeLast(n))
}

// First records the evaluation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) First() Optional[T] {
	start := time.Now()
	result := mp.inner.First()
	items := 0
	if result.IsPresent() {
		items = 1
	}
	mp.observe("first", start, items)
	return result
}

// Last records the evaluation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) Last() Optional[T] {
	start := time.Now()
	result := mp.inner.Last()
	items := 0
	if result.IsPresent() {
		items = 1
	}
	mp.observe("last", start, items)
	return result
}

// ToSlice records the evaluation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) ToSlice() []T {
	start := time.Now()
	result := mp.inner.ToSlice()
	mp.observe("to_slice", start, len(result))
	return result
}

// Count records the evaluation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) Count() int {
	start := time.Now()
	count := mp.inner.Count()
	mp.observe("count", start, count)
	return count
}

// ForEach records the evaluation and forwards to the wrapped pipeline.
func (mp *metricsPipeline[T]) ForEach(action func(T)) {
	start := time.Now()
	items := 0
	mp.inner.ForEach(func(v T) {
		items++
		action(v)
	})
	mp.observe("for_each", start, items)
}
