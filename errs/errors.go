// Package errs defines the sentinel errors returned by tebo operations.
//
// All failures surface as one of these values, usually wrapped with call-site
// context via fmt.Errorf("%w: ...", ...). Match them with errors.Is:
//
//	_, err := sliceutil.CopyOf(data, -1)
//	if errors.Is(err, errs.ErrNegativeLength) {
//	    // reject the request
//	}
package errs

import "errors"

var (
	// ErrNegativeLength indicates a copy operation was asked to produce a
	// slice of negative length.
	ErrNegativeLength = errors.New("negative length")

	// ErrInvalidRange indicates a [from, upto) range that is inverted or
	// falls outside the bounds of the source slice.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNilCharset indicates a transcoding operation was invoked on the
	// zero Charset, which names no encoding.
	ErrNilCharset = errors.New("nil charset")

	// ErrUnknownCharset indicates a charset name that is not in the IANA
	// registry, or is registered but has no codec implementation.
	ErrUnknownCharset = errors.New("unknown charset")
)
