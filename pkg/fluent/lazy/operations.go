package lazy

// iterator yields elements one at a time. next returns the next element and
// true, or the zero value and false once the sequence is exhausted.
type iterator[T any] interface {
	next() (T, bool)
}

// opKind tags a queued operation descriptor.
type opKind uint8

const (
	opFilter opKind = iota
	opMap
	opPeek
	opTake
	opTakeLast
)

// operation is a queued, not-yet-applied pipeline step. Only the fields for
// its kind are set. Descriptors are plain values so copying a pipeline's
// queue is cheap and never shares mutable state.
type operation[T any] struct {
	kind      opKind
	predicate func(T) bool
	mapper    func(T) T
	action    func(T)
	n         int
}

// decorate wraps upstream in the evaluation step for this operation.
// Decorators hold per-evaluation state (remaining counts, ring buffers), so
// a fresh chain is built for every terminal call.
func (op operation[T]) decorate(upstream iterator[T]) iterator[T] {
	switch op.kind {
	case opFilter:
		return &filterIterator[T]{upstream: upstream, predicate: op.predicate}
	case opMap:
		return &mapIterator[T]{upstream: upstream, mapper: op.mapper}
	case opPeek:
		return &peekIterator[T]{upstream: upstream, action: op.action}
	case opTake:
		return &takeIterator[T]{upstream: upstream, remaining: op.n}
	case opTakeLast:
		return &takeLastIterator[T]{upstream: upstream, n: op.n}
	default:
		panic("lazy: unknown operation kind")
	}
}

// filterIterator skips upstream elements rejected by the predicate.
type filterIterator[T any] struct {
	upstream  iterator[T]
	predicate func(T) bool
}

func (it *filterIterator[T]) next() (T, bool) {
	for {
		v, ok := it.upstream.next()
		if !ok {
			var zero T
			return zero, false
		}
		if it.predicate(v) {
			return v, true
		}
	}
}

// mapIterator transforms each upstream element.
type mapIterator[T any] struct {
	upstream iterator[T]
	mapper   func(T) T
}

func (it *mapIterator[T]) next() (T, bool) {
	v, ok := it.upstream.next()
	if !ok {
		var zero T
		return zero, false
	}
	return it.mapper(v), true
}

// peekIterator invokes the action on each element passing through.
type peekIterator[T any] struct {
	upstream iterator[T]
	action   func(T)
}

func (it *peekIterator[T]) next() (T, bool) {
	v, ok := it.upstream.next()
	if !ok {
		var zero T
		return zero, false
	}
	it.action(v)
	return v, true
}

// takeIterator stops pulling from upstream after n elements. The upstream
// is never read past the limit, so Take terminates on infinite sources.
type takeIterator[T any] struct {
	upstream  iterator[T]
	remaining int
}

func (it *takeIterator[T]) next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	v, ok := it.upstream.next()
	if !ok {
		it.remaining = 0
		var zero T
		return zero, false
	}
	it.remaining--
	return v, true
}

// takeLastIterator keeps the last n upstream elements. On the first pull it
// exhausts upstream into a ring buffer of capacity n, overwriting older
// elements, then serves the buffer in arrival order. Requires upstream to
// be finite.
type takeLastIterator[T any] struct {
	upstream iterator[T]
	n        int

	buf     []T
	start   int
	count   int
	served  int
	drained bool
}

func (it *takeLastIterator[T]) next() (T, bool) {
	var zero T
	if it.n == 0 {
		return zero, false
	}
	if !it.drained {
		it.buf = make([]T, it.n)
		for {
			v, ok := it.upstream.next()
			if !ok {
				break
			}
			if it.count < it.n {
				it.buf[(it.start+it.count)%it.n] = v
				it.count++
			} else {
				it.buf[it.start] = v
				it.start = (it.start + 1) % it.n
			}
		}
		it.drained = true
	}
	if it.served >= it.count {
		return zero, false
	}
	v := it.buf[(it.start+it.served)%it.n]
	it.served++
	return v, true
}

// mapToIterator adapts a T-typed fused chain to an any-typed one; used by
// MapTo, which cannot stay inside the generic method set.
type mapToIterator[T any] struct {
	upstream iterator[T]
	mapper   func(T) any
}

func (it *mapToIterator[T]) next() (any, bool) {
	v, ok := it.upstream.next()
	if !ok {
		return nil, false
	}
	return it.mapper(v), true
}
