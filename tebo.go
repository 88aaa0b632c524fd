// Package tebo provides small, allocation-explicit text/bytes operations:
// charset-aware conversion between strings and byte sequences, and
// bounds-checked slice copying.
//
// Every operation is a pure function: no state, no goroutines, no locks.
// Inputs are never mutated and results are always freshly allocated, so any
// number of goroutines may call anything concurrently.
//
// # Core Features
//
//   - Charset transcoding (Latin-1, UTF-8, the UTF-16 family, plus the full
//     IANA registry by name) with substitution instead of data-dependent errors
//   - Slice copying with an explicit bounds contract: zero-filled growth,
//     validated ranges, never a panic or a silent truncation
//   - Three-way comparison for ordered types
//
// # Basic Usage
//
// Transcoding between strings and bytes:
//
//	raw, err := tebo.Bytes("café", tebo.Latin1)   // []byte{'c','a','f',0xE9}
//	txt, err := tebo.String(raw, tebo.Latin1)     // "café"
//
//	cs, err := tebo.LookupCharset("latin1")       // == tebo.Latin1
//
// Copying slices:
//
//	grown, err := tebo.CopyOf([]int{1, 2, 3}, 5)        // [1 2 3 0 0]
//	window, err := tebo.CopyOfRange([]int{10, 20, 30, 40}, 1, 3) // [20 30]
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the charset and
// sliceutil packages. Use those directly for the full surface (custom
// charsets via charset.New, the Charset methods, and so on). Sentinel errors
// live in the errs package and are matched with errors.Is.
package tebo

import (
	"cmp"

	"github.com/arloliu/tebo/charset"
	"github.com/arloliu/tebo/sliceutil"
)

// Pre-resolved charsets, re-exported so single-import callers have them next
// to the conversion functions. See the charset package for details.
var (
	Latin1  = charset.Latin1
	UTF8    = charset.UTF8
	UTF16   = charset.UTF16
	UTF16BE = charset.UTF16BE
	UTF16LE = charset.UTF16LE
)

// Bytes encodes text into its byte representation under the given charset.
//
// Runes the charset cannot represent are substituted with the codec's
// standard replacement rather than failing; see charset.Charset.Encode for
// the exact policy.
//
// Parameters:
//   - contents: text to encode
//   - cs: target charset
//
// Returns:
//   - []byte: the encoded representation, newly allocated
//   - error: errs.ErrNilCharset if cs is the zero Charset
//
// Example:
//
//	raw, err := tebo.Bytes("héllo", tebo.Latin1)
func Bytes(contents string, cs charset.Charset) ([]byte, error) {
	return cs.Encode(contents)
}

// String decodes a byte sequence in the given charset into text.
//
// Malformed byte sequences decode to U+FFFD per the charset's standard
// policy; they are substituted, not reported. A nil content slice decodes
// to "".
//
// Parameters:
//   - content: bytes to decode
//   - cs: charset the bytes are encoded in
//
// Returns:
//   - string: the decoded text, always valid UTF-8
//   - error: errs.ErrNilCharset if cs is the zero Charset
//
// Example:
//
//	txt, err := tebo.String(payload, tebo.UTF8)
func String(content []byte, cs charset.Charset) (string, error) {
	return cs.Decode(content)
}

// LookupCharset resolves a character-set name or IANA alias to a Charset.
// Unknown names fail with errs.ErrUnknownCharset.
func LookupCharset(name string) (charset.Charset, error) {
	return charset.Lookup(name)
}

// IsEmpty reports whether contents has zero length.
func IsEmpty(contents string) bool {
	return len(contents) == 0
}

// CopyOf returns a new slice of exactly length elements copied from source,
// zero-filling the tail when length exceeds len(source). A negative length
// fails with errs.ErrNegativeLength. See sliceutil.CopyOf.
func CopyOf[S ~[]E, E any](source S, length int) (S, error) {
	return sliceutil.CopyOf(source, length)
}

// CopyOfRange returns a new slice holding source[from:upto). Ranges outside
// [0, len(source)] or with from > upto fail with errs.ErrInvalidRange. See
// sliceutil.CopyOfRange.
func CopyOfRange[S ~[]E, E any](source S, from, upto int) (S, error) {
	return sliceutil.CopyOfRange(source, from, upto)
}

// Compare returns -1 if a < b, +1 if a > b, and 0 otherwise. See
// sliceutil.Compare.
func Compare[T cmp.Ordered](a, b T) int {
	return sliceutil.Compare(a, b)
}
