package fluent

import "fmt"

// Optional holds a value that may be absent. The zero value is absent.
//
// Terminal operations that select a single element return an Optional
// instead of a pointer or a zero value, so absence is always explicit.
type Optional[T any] struct {
	value   T
	present bool
}

// Present returns an Optional holding value.
func Present[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// Absent returns an empty Optional.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// MustGet returns the value or panics if absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("fluent: MustGet on absent Optional")
	}
	return o.value
}

// OrElse returns the value if present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// IfPresent invokes action with the value when one is present.
func (o Optional[T]) IfPresent(action func(T)) {
	if o.present {
		action(o.value)
	}
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional[absent]"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
