package lazy

// source produces a fresh iterator per evaluation, so several terminal
// calls on the same pipeline each see the full sequence (generator and
// channel sources excepted: their elements are consumed as produced).
type source[T any] interface {
	iterate() iterator[T]
}

// sliceSource references the caller's slice without copying it.
type sliceSource[T any] struct {
	items []T
}

func (s *sliceSource[T]) iterate() iterator[T] {
	return &sliceIterator[T]{items: s.items}
}

type sliceIterator[T any] struct {
	items []T
	index int
}

func (it *sliceIterator[T]) next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	v := it.items[it.index]
	it.index++
	return v, true
}

// generatorSource produces an infinite sequence from a generator function.
// Stateful generators advance across evaluations; terminate such a pipeline
// once.
type generatorSource[T any] struct {
	generator func() T
}

func (s *generatorSource[T]) iterate() iterator[T] {
	return generatorIterator[T]{generator: s.generator}
}

type generatorIterator[T any] struct {
	generator func() T
}

func (it generatorIterator[T]) next() (T, bool) {
	return it.generator(), true
}

// channelSource drains elements from a channel; exhausted when the channel
// is closed.
type channelSource[T any] struct {
	ch <-chan T
}

func (s *channelSource[T]) iterate() iterator[T] {
	return channelIterator[T]{ch: s.ch}
}

type channelIterator[T any] struct {
	ch <-chan T
}

func (it channelIterator[T]) next() (T, bool) {
	v, ok := <-it.ch
	return v, ok
}

// emptySource has no elements.
type emptySource[T any] struct{}

func (s *emptySource[T]) iterate() iterator[T] {
	return emptyIterator[T]{}
}

type emptyIterator[T any] struct{}

func (emptyIterator[T]) next() (T, bool) {
	var zero T
	return zero, false
}

// mappedSource bridges a T-typed pipeline into an any-typed one for MapTo.
// Building the upstream fused chain is deferred until iterate, preserving
// the laziness guarantee across the type change.
type mappedSource[T any] struct {
	inner  *Pipeline[T]
	mapper func(T) any
}

func (s *mappedSource[T]) iterate() iterator[any] {
	return &mapToIterator[T]{upstream: s.inner.iterator(), mapper: s.mapper}
}
