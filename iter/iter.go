// Package iter provides constructors and adapters for the optional.Iterator
// sequence abstraction.
package iter

import (
	"gopkg.microglot.org/optional.go"
)

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) optional.Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next() optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

// Func adapts a generator function into an Iterator. The function is invoked
// once per Next call and reports exhaustion by returning an empty Optional.
// A nil function yields an exhausted Iterator. Use like:
//
//	Func(func() optional.Optional[int] { return optional.Some(next()) })
func Func[T any](next func() optional.Optional[T]) optional.Iterator[T] {
	if next == nil {
		return NewSlice[T](nil)
	}
	return iteratorFunc[T](next)
}

type iteratorFunc[T any] func() optional.Optional[T]

func (f iteratorFunc[T]) Next() optional.Optional[T] {
	return f()
}

// NewFilter wraps an iterator so that only values for which keep returns
// true are produced. A nil iterator or a nil keep function yields an
// exhausted Iterator.
func NewFilter[T any](it optional.Iterator[T], keep func(T) bool) optional.Iterator[T] {
	if it == nil || keep == nil {
		return NewSlice[T](nil)
	}
	return &iteratorFilter[T]{iter: it, keep: keep}
}

type iteratorFilter[T any] struct {
	iter optional.Iterator[T]
	keep func(T) bool
}

func (it *iteratorFilter[T]) Next() optional.Optional[T] {
	for {
		v := it.iter.Next()
		if !v.IsPresent() {
			return v
		}
		if it.keep(v.Value()) {
			return v
		}
	}
}

// Collect drains an iterator into a slice. It does not terminate on an
// unbounded sequence.
func Collect[T any](it optional.Iterator[T]) []T {
	var out []T
	if it == nil {
		return out
	}
	for {
		v := it.Next()
		if !v.IsPresent() {
			return out
		}
		out = append(out, v.Value())
	}
}
