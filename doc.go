/*
Package seqflow provides fluent, chainable pipelines over sequences of values,
with interchangeable eager and lazy evaluation strategies.

Fluent Pipelines (pkg/fluent):
  - fluent: Shared Pipeline contract and Optional results
  - eager: Materializes every step immediately
  - lazy: Queues operations and evaluates in a single fused pass

Supporting Components:
  - pkg/scheduling/refresher: Cron-scheduled pipeline re-evaluation
  - pkg/source/redislist: Redis lists as pipeline sources
  - pkg/metrics: Prometheus instrumentation

Example usage:

	import (
		"github.com/nikitashade/seqflow/pkg/fluent"
		"github.com/nikitashade/seqflow/pkg/fluent/lazy"
	)

	result := lazy.From([]int{1, -61, 14, -22, 18}).
		Filter(func(n int) bool { return n < 0 }).
		Take(1).
		ToSlice() // [-61], evaluated in one pass

	lazy.From(numbers).Filter(even).First().IfPresent(func(n int) {
		log.Printf("first even number: %d", n)
	})

Both strategies implement fluent.Pipeline and produce identical results
for the same source and operation chain; only the evaluation cost differs.
*/
package seqflow
