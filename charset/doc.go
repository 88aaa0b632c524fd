// Package charset converts text to and from named byte encodings.
//
// A Charset is a value pairing a character-set name with a codec from
// golang.org/x/text. The package pre-resolves the common cases (Latin1,
// UTF8, the UTF-16 family) and resolves everything else by IANA name or
// alias through Lookup.
//
// # Basic Usage
//
//	raw, err := charset.Latin1.Encode("café")   // []byte{'c','a','f',0xE9}
//	txt, err := charset.Latin1.Decode(raw)      // "café"
//
//	cs, err := charset.Lookup("latin1")         // == charset.Latin1
//
// # Substitution, Not Failure
//
// Transcoding never fails on data. Encoding a rune the charset cannot
// represent substitutes the codec's replacement; decoding a malformed byte
// sequence substitutes U+FFFD. The only error a transcoding call returns is
// errs.ErrNilCharset for the zero Charset, and Lookup reports unknown names
// as errs.ErrUnknownCharset. Callers that need strict validation should
// compare the round trip against the original.
//
// # Thread Safety
//
// Charset values are immutable and safe for concurrent use. Each Encode and
// Decode call builds its own transformer, so calls never share state.
package charset
