// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	stditer "iter"

	"gopkg.microglot.org/optional.go"
)

// FromSeq adapts a standard library sequence into an Iterator. Values are
// pulled on demand; the underlying sequence is released once it reports
// exhaustion. A nil sequence yields an exhausted Iterator.
func FromSeq[T any](seq stditer.Seq[T]) optional.Iterator[T] {
	if seq == nil {
		return NewSlice[T](nil)
	}
	next, stop := stditer.Pull(seq)
	return &iteratorSeq[T]{next: next, stop: stop}
}

type iteratorSeq[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (it *iteratorSeq[T]) Next() optional.Optional[T] {
	if it.done {
		return optional.None[T]()
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		return optional.None[T]()
	}
	return optional.Some(v)
}

// ToSeq adapts an Iterator into a standard library sequence. The iterator is
// consumed as the sequence is ranged over; breaking early leaves the
// remaining values unconsumed. A nil iterator yields an empty sequence.
func ToSeq[T any](it optional.Iterator[T]) stditer.Seq[T] {
	return func(yield func(T) bool) {
		if it == nil {
			return
		}
		for {
			v := it.Next()
			if !v.IsPresent() {
				return
			}
			if !yield(v.Value()) {
				return
			}
		}
	}
}
