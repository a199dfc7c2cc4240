package fluent

// Pipeline represents an ordered sequence of elements together with a chain
// of transformation steps, evaluated either eagerly or lazily depending on
// the implementation chosen at construction time.
//
// Pipelines are immutable: every chain operation returns a new pipeline and
// leaves the receiver untouched, so intermediate pipelines may be retained,
// reused, or discarded freely. Both strategies produce identical results for
// the same source and operation chain; only the evaluation cost differs.
type Pipeline[T any] interface {
	// Chain operations (return a new Pipeline)

	// Filter returns a pipeline keeping, in order, the elements for which
	// the predicate holds.
	Filter(predicate func(T) bool) Pipeline[T]

	// Map returns a pipeline with the mapper applied to every element.
	Map(mapper func(T) T) Pipeline[T]

	// MapTo transforms elements to a different type. Go methods cannot
	// introduce new type parameters, so the target type is any.
	MapTo(mapper func(T) any) Pipeline[any]

	// Peek returns a pipeline that additionally invokes action on each
	// element as it is evaluated, without changing the element.
	Peek(action func(T)) Pipeline[T]

	// Take returns a pipeline of the first min(n, size) elements.
	// Panics with a *errors.ValidationError if n is negative.
	Take(n int) Pipeline[T]

	// TakeLast returns a pipeline of the last min(n, size) elements, in
	// original order. Panics with a *errors.ValidationError if n is
	// negative. Requires a finite source.
	TakeLast(n int) Pipeline[T]

	// Terminal operations (consume the pipeline)

	// First returns the first element, absent if the pipeline is empty.
	First() Optional[T]

	// Last returns the last element, absent if the pipeline is empty.
	// Requires a finite source.
	Last() Optional[T]

	// ToSlice materializes the pipeline into a fresh slice the caller owns.
	// Requires a finite source.
	ToSlice() []T

	// Count returns the number of elements. Requires a finite source.
	Count() int

	// ForEach invokes action on every element in order. Requires a
	// finite source.
	ForEach(action func(T))
}
