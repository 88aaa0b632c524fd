package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Pre-resolved charsets. These cover the names most callers need without a
// registry lookup; anything else goes through Lookup.
var (
	// Latin1 is ISO-8859-1. Every byte value decodes to the code point of
	// the same value, so Decode is total over arbitrary input.
	Latin1 = Charset{name: "ISO-8859-1", enc: charmap.ISO8859_1}

	// UTF8 neither expects nor emits a byte order mark.
	UTF8 = Charset{name: "UTF-8", enc: unicode.UTF8}

	// UTF16BE is big-endian UTF-16 without a byte order mark.
	UTF16BE = Charset{name: "UTF-16BE", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}

	// UTF16LE is little-endian UTF-16 without a byte order mark.
	UTF16LE = Charset{name: "UTF-16LE", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}

	// UTF16 is BOM-sensitive UTF-16: decoding honors a leading byte order
	// mark (defaulting to big-endian when absent) and encoding writes a
	// big-endian BOM.
	UTF16 = Charset{name: "UTF-16", enc: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)}
)
