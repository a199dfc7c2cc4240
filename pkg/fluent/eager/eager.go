package eager

import (
	"github.com/nikitashade/seqflow/pkg/common/validation"
	"github.com/nikitashade/seqflow/pkg/fluent"
)

const moduleName = "eager"

// Pipeline is the eager implementation of fluent.Pipeline. Every chain
// operation computes and stores a new materialized sequence, so each step
// costs one pass and one allocation but terminal operations are free.
type Pipeline[T any] struct {
	items []T
}

var _ fluent.Pipeline[int] = (*Pipeline[int])(nil)

// From creates a pipeline from a copy of items. The input slice is never
// aliased, so later mutation by the caller cannot be observed.
func From[T any](items []T) *Pipeline[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Pipeline[T]{items: dst}
}

// Of creates a pipeline from a variadic list of items.
func Of[T any](items ...T) *Pipeline[T] {
	return From(items)
}

// Empty creates an empty pipeline of type T.
func Empty[T any]() *Pipeline[T] {
	return &Pipeline[T]{items: []T{}}
}

// Filter returns a pipeline keeping, in order, the elements for which the
// predicate holds.
func (p *Pipeline[T]) Filter(predicate func(T) bool) fluent.Pipeline[T] {
	kept := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if predicate(item) {
			kept = append(kept, item)
		}
	}
	return &Pipeline[T]{items: kept}
}

// Map returns a pipeline with the mapper applied to every element.
func (p *Pipeline[T]) Map(mapper func(T) T) fluent.Pipeline[T] {
	mapped := make([]T, len(p.items))
	for i, item := range p.items {
		mapped[i] = mapper(item)
	}
	return &Pipeline[T]{items: mapped}
}

// MapTo transforms every element to a different type.
func (p *Pipeline[T]) MapTo(mapper func(T) any) fluent.Pipeline[any] {
	mapped := make([]any, len(p.items))
	for i, item := range p.items {
		mapped[i] = mapper(item)
	}
	return &Pipeline[any]{items: mapped}
}

// Peek invokes action on every element and returns an unchanged pipeline.
// In the eager strategy the actions run immediately over the full
// materialized sequence, even for elements a downstream Take would cut
// off; the lazy strategy observes only elements actually evaluated.
func (p *Pipeline[T]) Peek(action func(T)) fluent.Pipeline[T] {
	for _, item := range p.items {
		action(item)
	}
	return From(p.items)
}

// Take returns a pipeline of the first min(n, size) elements.
// Panics with a *errors.ValidationError if n is negative.
func (p *Pipeline[T]) Take(n int) fluent.Pipeline[T] {
	if err := validation.ValidateNonNegativeInt(moduleName, "n", n); err != nil {
		panic(err)
	}
	if n > len(p.items) {
		n = len(p.items)
	}
	return From(p.items[:n])
}

// TakeLast returns a pipeline of the last min(n, size) elements, in
// original order. Panics with a *errors.ValidationError if n is negative.
func (p *Pipeline[T]) TakeLast(n int) fluent.Pipeline[T] {
	if err := validation.ValidateNonNegativeInt(moduleName, "n", n); err != nil {
		panic(err)
	}
	if n > len(p.items) {
		n = len(p.items)
	}
	return From(p.items[len(p.items)-n:])
}

// First returns the first element, absent if the pipeline is empty.
func (p *Pipeline[T]) First() fluent.Optional[T] {
	if len(p.items) == 0 {
		return fluent.Absent[T]()
	}
	return fluent.Present(p.items[0])
}

// Last returns the last element, absent if the pipeline is empty.
func (p *Pipeline[T]) Last() fluent.Optional[T] {
	if len(p.items) == 0 {
		return fluent.Absent[T]()
	}
	return fluent.Present(p.items[len(p.items)-1])
}

// ToSlice returns a copy of the materialized sequence.
func (p *Pipeline[T]) ToSlice() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Count returns the number of elements.
func (p *Pipeline[T]) Count() int {
	return len(p.items)
}

// ForEach invokes action on every element in order.
func (p *Pipeline[T]) ForEach(action func(T)) {
	for _, item := range p.items {
		action(item)
	}
}
