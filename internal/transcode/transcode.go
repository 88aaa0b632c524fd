// Package transcode applies x/text codecs to whole values.
//
// It owns the transformer plumbing shared by the charset package: chain
// construction, the empty-input fast path, and error normalization. Both
// directions operate on complete inputs; there is no streaming mode.
package transcode

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Encode transforms UTF-8 src into the byte representation of enc.
//
// Ill-formed UTF-8 in src is replaced with U+FFFD before encoding, and runes
// outside the repertoire of enc are substituted with the codec's replacement
// (0x1A for single-byte charmaps, the encoded U+FFFD for Unicode forms), so
// the transform itself never fails on caller data.
func Encode(enc encoding.Encoding, src []byte) ([]byte, error) {
	chain := transform.Chain(runes.ReplaceIllFormed(), encoding.ReplaceUnsupported(enc.NewEncoder()))

	return apply(chain, src)
}

// Decode transforms enc-encoded src into UTF-8. Malformed byte sequences
// decode to U+FFFD per the codec's standard policy rather than failing.
func Decode(enc encoding.Encoding, src []byte) ([]byte, error) {
	return apply(enc.NewDecoder(), src)
}

// apply runs src through a freshly constructed transformer. Transformers are
// stateful, so each call builds its own; none are shared or pooled.
func apply(t transform.Transformer, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	dst, _, err := transform.Bytes(t, src)
	if err != nil {
		return nil, err
	}

	return dst, nil
}
