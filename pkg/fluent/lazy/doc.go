/*
Package lazy implements fluent.Pipeline with deferred evaluation.

Chain operations never touch the source: each one returns a new pipeline
whose queue is the previous queue plus one descriptor, an O(1) step with no
data copying. Building a long chain and discarding it unterminated costs
nothing but the descriptors.

A terminal operation (ToSlice, First, Last, Count, ForEach) evaluates the
pipeline in a single fused pass: every element read from the source flows
through all queued operations before the next element is read, and an
element rejected by a filter never reaches later operations. Take stops
reading the source as soon as enough elements have survived, which makes it
safe on infinite Generate sources. TakeLast is the one operation that
cannot short-circuit: the tail of a sequence is unknown until the sequence
ends, so it buffers at most n survivors in a sliding ring and needs a
finite source, as do Last, ToSlice, Count and ForEach on unbounded chains.

	// One pass over numbers; stops after the first four positives.
	result := lazy.From(numbers).
		Filter(func(n int) bool { return n > 0 }).
		Take(4).
		TakeLast(2).
		MapTo(func(n int) any { return fmt.Sprintf("String[%d]", n) }).
		ToSlice()

Pipelines are immutable between steps and safe to retain; each terminal
call on a slice-backed pipeline re-evaluates from scratch. Generator and
channel sources are consumed as they are read, so pipelines over them
should be terminated once.
*/
package lazy
