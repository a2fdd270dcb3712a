// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

// Iterator is a lazily-produced sequence of T. Next returns the next value,
// or an empty Optional once the sequence is exhausted. Implementations are
// free to produce values on demand; callers must not assume the sequence is
// finite.
type Iterator[T any] interface {
	Next() Optional[T]
}

// Coalesce returns the first present element of seq, in sequence order. It
// returns an empty Optional when seq is nil, exhausted, or holds no present
// element. Consumption stops at the first present element, so seq may be
// infinite.
func Coalesce[T any](seq Iterator[Optional[T]]) Optional[T] {
	if seq == nil {
		return None[T]()
	}
	for {
		elem := seq.Next()
		if !elem.IsPresent() {
			return None[T]()
		}
		candidate := elem.Value()
		if candidate.IsPresent() {
			return candidate
		}
	}
}
