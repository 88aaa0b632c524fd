package charset

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/arloliu/tebo/errs"
	"github.com/arloliu/tebo/internal/transcode"
)

// Charset pairs a character-set name with the codec that maps between text
// and its byte representation. It is a small immutable value; copy it freely.
//
// The zero Charset names no codec. Encode and Decode reject it with
// errs.ErrNilCharset, so a Charset that was never resolved cannot silently
// transcode as something else.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// New wraps an x/text encoding as a Charset under the given name.
//
// Use this to carry charsets beyond the pre-resolved ones, e.g. from
// golang.org/x/text/encoding/charmap:
//
//	koi8 := charset.New("KOI8-R", charmap.KOI8R)
//
// Parameters:
//   - name: the name reported by Name and String
//   - enc: the codec; must not be nil for a usable Charset
//
// Returns:
//   - Charset: the wrapped charset value
func New(name string, enc encoding.Encoding) Charset {
	return Charset{name: name, enc: enc}
}

// Name returns the charset's name, or "" for the zero Charset.
func (c Charset) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c Charset) String() string {
	if c.IsZero() {
		return "<unset>"
	}

	return c.name
}

// IsZero reports whether the Charset names no codec.
func (c Charset) IsZero() bool {
	return c.enc == nil
}

// Encode converts text into its byte representation under this charset.
//
// The contents string is interpreted as UTF-8. Runes the charset cannot
// represent are substituted with the codec's standard replacement (the ASCII
// SUB byte 0x1A for single-byte charsets, the encoding of U+FFFD for Unicode
// forms); ill-formed UTF-8 input is treated as U+FFFD. Substitution is not
// an error: the only failure mode is calling Encode on the zero Charset,
// reported as errs.ErrNilCharset.
//
// An empty contents string encodes to an empty slice; no charset emits a
// byte order mark for empty input.
//
// Parameters:
//   - contents: text to encode
//
// Returns:
//   - []byte: the encoded representation, newly allocated
//   - error: errs.ErrNilCharset on the zero Charset
func (c Charset) Encode(contents string) ([]byte, error) {
	if c.enc == nil {
		return nil, errs.ErrNilCharset
	}

	out, err := transcode.Encode(c.enc, []byte(contents))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}

	return out, nil
}

// Decode converts a byte sequence in this charset back into text.
//
// Malformed byte sequences are replaced with U+FFFD per the codec's standard
// decoding policy; they never fail the call. A nil content slice is an empty
// sequence and decodes to "".
//
// Parameters:
//   - content: bytes to decode
//
// Returns:
//   - string: the decoded text, always valid UTF-8
//   - error: errs.ErrNilCharset on the zero Charset
func (c Charset) Decode(content []byte) (string, error) {
	if c.enc == nil {
		return "", errs.ErrNilCharset
	}

	out, err := transcode.Decode(c.enc, content)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.name, err)
	}

	return string(out), nil
}
