/*
Package eager implements fluent.Pipeline by materializing every step.

Each chain operation traverses the current sequence once and stores the
result in a new pipeline, leaving the receiver untouched. This makes the
cost model trivial to reason about (O(n) time and space per step) and
terminal operations effectively free, at the price of intermediate
allocations that the lazy strategy avoids.

	firstNegatives := eager.From(numbers).
		Filter(func(n int) bool { return n < 0 }).
		Take(3).
		ToSlice()

Inputs are copied on construction and outputs are copied on ToSlice, so a
pipeline never shares storage with its caller. Eager evaluation requires a
finite, fully materializable source; use pkg/fluent/lazy for generator or
channel sources.
*/
package eager
