// Package optional provides a container for values that may be absent and
// combinators for composing partial computations without nil checks.
package optional

import (
	"fmt"
)

// Optional is a container for zero or one values of type T. The zero value
// is empty. Presence and nil-ness are orthogonal: an Optional may hold a nil
// pointer as its present value, which is not the same as being empty.
type Optional[T any] struct {
	present bool
	value   T
}

// Handle resolves an Optional by invoking exactly one of the two branch
// functions and returning its result: onPresent with the held value, or
// onAbsent with no arguments. A nil onPresent resolves to the absent branch
// even when a value is held. A nil onAbsent resolves to the zero value of R.
func Handle[T any, R any](opt Optional[T], onPresent func(T) R, onAbsent func() R) R {
	if opt.present && onPresent != nil {
		return onPresent(opt.value)
	}
	if onAbsent != nil {
		return onAbsent()
	}
	var zero R
	return zero
}

// IsPresent reports whether a value is held. Some[*T](nil).IsPresent() is
// true.
func (self Optional[T]) IsPresent() bool {
	return Map(self, func(T) bool { return true }).GetOrDefault(false)
}

// Value returns the held value without any protection against absence. It
// returns the zero value of T when empty, indistinguishable from a held
// zero. Use this only at boundaries where nil-style access is required.
func (self Optional[T]) Value() T {
	return Handle(self, func(v T) T {
		return v
	}, func() T {
		var zero T
		return zero
	})
}

// GetOrDefault returns the held value, or def when empty.
func (self Optional[T]) GetOrDefault(def T) T {
	return Handle(self, func(v T) T {
		return v
	}, func() T {
		return def
	})
}

// Get returns the held value, or ErrEmpty when empty.
func (self Optional[T]) Get() (T, error) {
	return self.GetOrError(func() error {
		return ErrEmpty
	})
}

// GetOrError returns the held value, or the error produced by newError when
// empty. The factory is validated eagerly: a nil newError returns
// ErrNilErrorFactory even when a value is held. The factory is never invoked
// when a value is held.
func (self Optional[T]) GetOrError(newError func() error) (T, error) {
	if newError == nil {
		var zero T
		return zero, ErrNilErrorFactory
	}
	var err error
	value := Handle(self, func(v T) T {
		return v
	}, func() T {
		err = newError()
		var zero T
		return zero
	})
	return value, err
}

// Must returns the held value and panics with ErrEmpty when empty. For
// callers that have already established presence.
func (self Optional[T]) Must() T {
	v, err := self.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Ptr converts to nullable-pointer style. It returns a pointer to a copy of
// the held value, or nil when empty.
func (self Optional[T]) Ptr() *T {
	return Handle(self, func(v T) *T {
		return &v
	}, func() *T {
		return nil
	})
}

func (self Optional[T]) String() string {
	return Handle(self, func(v T) string {
		return fmt.Sprintf("Some(%v)", v)
	}, func() string {
		return "None"
	})
}

// Some wraps v as a present value. A nil pointer or interface is still a
// value: Some[*T](nil) is present, not empty.
func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

// None is the empty Optional of type T.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts from nullable-pointer style: nil becomes empty, anything
// else becomes a present copy of the pointed-to value. The inverse of Ptr.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Map applies f to the held value, producing an Optional of the result type.
// An empty input stays empty and f is not invoked. A nil f always produces
// an empty result regardless of input.
func Map[T any, R any](opt Optional[T], f func(T) R) Optional[R] {
	if f == nil {
		return None[R]()
	}
	return Handle(opt, func(v T) Optional[R] {
		return Some(f(v))
	}, None[R])
}

// FlatMap applies f to the held value and uses the Optional it returns
// directly, without re-wrapping. An empty input stays empty and f is not
// invoked. A nil f always produces an empty result regardless of input.
func FlatMap[T any, R any](opt Optional[T], f func(T) Optional[R]) Optional[R] {
	if f == nil {
		return None[R]()
	}
	return Handle(opt, f, None[R])
}

// Pair is a plain two-element tuple produced by Zip.
type Pair[T1 any, T2 any] struct {
	First  T1
	Second T2
}

// Zip combines two Optionals into one holding a Pair of both values. The
// result is empty if either input is empty. The second Optional is not
// inspected when the first is empty.
func Zip[T1 any, T2 any](a Optional[T1], b Optional[T2]) Optional[Pair[T1, T2]] {
	return Handle(a, func(first T1) Optional[Pair[T1, T2]] {
		return Handle(b, func(second T2) Optional[Pair[T1, T2]] {
			return Some(Pair[T1, T2]{First: first, Second: second})
		}, None[Pair[T1, T2]])
	}, None[Pair[T1, T2]])
}
