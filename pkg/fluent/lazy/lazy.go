package lazy

import (
	"github.com/nikitashade/seqflow/pkg/common/validation"
	"github.com/nikitashade/seqflow/pkg/fluent"
)

const moduleName = "lazy"

// Pipeline is the lazy implementation of fluent.Pipeline. It holds a
// reference to the source plus the queued, not-yet-applied operations.
// Chain operations append one descriptor in O(1) without touching the
// source; a terminal operation drives a single fused pass in which every
// element flows through all queued operations before the next element is
// read.
type Pipeline[T any] struct {
	src source[T]
	ops []operation[T]
}

var _ fluent.Pipeline[int] = (*Pipeline[int])(nil)

// From creates a lazy pipeline over items. The slice is referenced, not
// copied; the caller must not mutate it between chaining and termination.
func From[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{src: &sliceSource[T]{items: items}}
}

// Of creates a lazy pipeline from a variadic list of items.
func Of[T any](items ...T) *Pipeline[T] {
	return From(items)
}

// Generate creates a lazy pipeline over an infinite generator source.
// Only Take-bounded evaluations and First terminate on such a pipeline.
func Generate[T any](generator func() T) *Pipeline[T] {
	return &Pipeline[T]{src: &generatorSource[T]{generator: generator}}
}

// FromChannel creates a lazy pipeline that drains elements from ch during
// evaluation. The pipeline is exhausted once ch is closed.
func FromChannel[T any](ch <-chan T) *Pipeline[T] {
	return &Pipeline[T]{src: &channelSource[T]{ch: ch}}
}

// Empty creates an empty lazy pipeline of type T.
func Empty[T any]() *Pipeline[T] {
	return &Pipeline[T]{src: &emptySource[T]{}}
}

// with returns a new pipeline with op appended to the queue. The receiver's
// queue is copied, never shared, so earlier pipelines stay valid.
func (p *Pipeline[T]) with(op operation[T]) *Pipeline[T] {
	ops := make([]operation[T], len(p.ops)+1)
	copy(ops, p.ops)
	ops[len(p.ops)] = op
	return &Pipeline[T]{src: p.src, ops: ops}
}

// iterator builds the fused evaluation chain: a fresh source iterator
// decorated by every queued operation in queue order.
func (p *Pipeline[T]) iterator() iterator[T] {
	it := p.src.iterate()
	for _, op := range p.ops {
		it = op.decorate(it)
	}
	return it
}

// Filter queues a predicate; elements it rejects are skipped before any
// later operation sees them.
func (p *Pipeline[T]) Filter(predicate func(T) bool) fluent.Pipeline[T] {
	return p.with(operation[T]{kind: opFilter, predicate: predicate})
}

// Map queues a same-type transform.
func (p *Pipeline[T]) Map(mapper func(T) T) fluent.Pipeline[T] {
	return p.with(operation[T]{kind: opMap, mapper: mapper})
}

// MapTo queues a type-changing transform. The returned pipeline pulls from
// this pipeline's fused evaluation, so still nothing runs before a terminal
// operation.
func (p *Pipeline[T]) MapTo(mapper func(T) any) fluent.Pipeline[any] {
	return &Pipeline[any]{src: &mappedSource[T]{inner: p, mapper: mapper}}
}

// Peek queues an action invoked on each element that reaches this point of
// the chain during evaluation. Elements never evaluated (e.g. cut off by
// Take) are never observed.
func (p *Pipeline[T]) Peek(action func(T)) fluent.Pipeline[T] {
	return p.with(operation[T]{kind: opPeek, action: action})
}

// Take queues a limit on the number of surviving elements. Evaluation stops
// reading the source as soon as n elements have been produced, which is
// what makes Take usable on infinite sources.
// Panics with a *errors.ValidationError if n is negative; the argument is
// not data-dependent, so it is rejected at queue time rather than deferred
// to the terminal call.
func (p *Pipeline[T]) Take(n int) fluent.Pipeline[T] {
	if err := validation.ValidateNonNegativeInt(moduleName, "n", n); err != nil {
		panic(err)
	}
	return p.with(operation[T]{kind: opTake, n: n})
}

// TakeLast queues a limit keeping only the last n surviving elements, in
// original order. The tail cannot be known before upstream is exhausted, so
// this is the one operation that cannot short-circuit: evaluation buffers
// at most n survivors in a ring, discarding older ones, and requires a
// finite effective sequence.
// Panics with a *errors.ValidationError if n is negative.
func (p *Pipeline[T]) TakeLast(n int) fluent.Pipeline[T] {
	if err := validation.ValidateNonNegativeInt(moduleName, "n", n); err != nil {
		panic(err)
	}
	return p.with(operation[T]{kind: opTakeLast, n: n})
}

// First evaluates the pipeline until one element survives and returns it,
// absent if nothing does. Equivalent to Take(1) plus extraction; works on
// infinite sources as long as an element eventually survives.
func (p *Pipeline[T]) First() fluent.Optional[T] {
	if v, ok := p.iterator().next(); ok {
		return fluent.Present(v)
	}
	return fluent.Absent[T]()
}

// Last evaluates the whole pipeline and returns the final surviving
// element, absent if nothing survives. Requires a finite source.
func (p *Pipeline[T]) Last() fluent.Optional[T] {
	it := p.iterator()
	var last T
	found := false
	for {
		v, ok := it.next()
		if !ok {
			break
		}
		last = v
		found = true
	}
	if !found {
		return fluent.Absent[T]()
	}
	return fluent.Present(last)
}

// ToSlice evaluates the pipeline in a single fused pass and returns the
// surviving elements. Requires a finite source unless a Take bounds the
// chain.
func (p *Pipeline[T]) ToSlice() []T {
	it := p.iterator()
	result := make([]T, 0)
	for {
		v, ok := it.next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	return result
}

// Count evaluates the pipeline and returns the number of survivors.
func (p *Pipeline[T]) Count() int {
	it := p.iterator()
	count := 0
	for {
		if _, ok := it.next(); !ok {
			break
		}
		count++
	}
	return count
}

// ForEach evaluates the pipeline, invoking action on each survivor in order.
func (p *Pipeline[T]) ForEach(action func(T)) {
	it := p.iterator()
	for {
		v, ok := it.next()
		if !ok {
			break
		}
		action(v)
	}
}
