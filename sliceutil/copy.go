package sliceutil

import (
	"fmt"

	"github.com/arloliu/tebo/errs"
)

// CopyOf returns a new slice of exactly length elements. The first
// min(len(source), length) elements are copied from source in order; when
// length exceeds len(source) the remaining tail holds the zero value of E.
//
// The result never shares a backing array with source. A nil source is
// treated as empty.
//
// Parameters:
//   - source: slice to copy from
//   - length: number of elements in the result
//
// Returns:
//   - S: new slice of the requested length
//   - error: errs.ErrNegativeLength if length is negative
func CopyOf[S ~[]E, E any](source S, length int) (S, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: length %d", errs.ErrNegativeLength, length)
	}

	target := make(S, length)
	copy(target, source)

	return target, nil
}

// CopyOfRange returns a new slice of length upto-from holding the elements
// source[from:upto). The range must satisfy 0 <= from <= upto <= len(source);
// anything else is rejected, never clamped.
//
// The result never shares a backing array with source. An empty range
// (from == upto) yields an empty slice.
//
// Parameters:
//   - source: slice to copy from
//   - from: first element to copy (inclusive)
//   - upto: last element to copy (exclusive)
//
// Returns:
//   - S: new slice holding the requested range
//   - error: errs.ErrInvalidRange if the range is inverted or out of bounds
func CopyOfRange[S ~[]E, E any](source S, from, upto int) (S, error) {
	if from < 0 || upto < from || upto > len(source) {
		return nil, fmt.Errorf("%w: [%d:%d) of %d elements", errs.ErrInvalidRange, from, upto, len(source))
	}

	target := make(S, upto-from)
	copy(target, source[from:upto])

	return target, nil
}
