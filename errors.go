// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

import (
	"errors"
)

var (
	// ErrEmpty is returned by Get, and carried by Must panics, when no value
	// is held.
	ErrEmpty = errors.New("optional: no value present")
	// ErrNilErrorFactory is returned by GetOrError when the error factory is
	// nil. It is produced without inspecting the Optional.
	ErrNilErrorFactory = errors.New("optional: nil error factory")
)

// IsErrEmpty reports whether err is, or wraps, ErrEmpty.
func IsErrEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsErrNilErrorFactory reports whether err is, or wraps, ErrNilErrorFactory.
func IsErrNilErrorFactory(err error) bool {
	return errors.Is(err, ErrNilErrorFactory)
}
