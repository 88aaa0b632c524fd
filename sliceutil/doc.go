// Package sliceutil provides bounds-validated slice copying and three-way
// comparison.
//
// The standard library's copy builtin silently truncates and the slice
// expression s[from:upto] panics on bad indices. The copy functions here wrap
// the same primitives behind an explicit contract: every result is a freshly
// allocated slice of the exact requested length, and every bounds violation
// is reported as an error from the errs package instead of a panic or a
// silent truncation.
//
// # Basic Usage
//
//	grown, err := sliceutil.CopyOf([]int{1, 2, 3}, 5)   // [1 2 3 0 0]
//	window, err := sliceutil.CopyOfRange(rows, 1, 3)     // rows[1:3), new backing array
//	order := sliceutil.Compare(3, 5)                     // -1
//
// A nil source slice is treated as an empty one.
//
// # Thread Safety
//
// All functions are pure: they never mutate their arguments and share no
// state, so they are safe for unbounded concurrent use.
package sliceutil
