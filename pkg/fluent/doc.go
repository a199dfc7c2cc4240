/*
Package fluent defines the shared contract for chainable sequence pipelines.

A Pipeline wraps an ordered sequence and exposes a fluent API for filtering,
transforming and slicing it. Two interchangeable strategies implement the
contract:

  - eager (pkg/fluent/eager): every chain operation immediately computes and
    stores a new materialized sequence. Simple and predictable, at the cost
    of one allocation and one pass per step.
  - lazy (pkg/fluent/lazy): chain operations only queue descriptors; a
    terminal operation drives a single fused pass over the source.

Basic usage:

	result := eager.From([]int{1, -61, 14, -22, 18}).
		Filter(func(n int) bool { return n < 0 }).
		Take(1).
		ToSlice() // [-61]

Callers that should not care about the strategy accept a fluent.Pipeline:

	func negatives(p fluent.Pipeline[int]) []int {
		return p.Filter(func(n int) bool { return n < 0 }).ToSlice()
	}

Single-element terminals return an Optional rather than a zero value:

	lazy.From(numbers).Filter(even).First().IfPresent(func(n int) {
		fmt.Println("first even:", n)
	})

Both strategies guarantee identical observable results for the same source
and operation chain. Take and TakeLast reject negative counts immediately by
panicking with a *errors.ValidationError; the count is not data-dependent,
so the failure is a programming error rather than a runtime condition.
*/
package fluent
