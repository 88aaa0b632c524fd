package charset

import (
	"fmt"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/arloliu/tebo/errs"
)

// standard lists the pre-resolved charsets so Lookup can canonicalize onto
// them: resolving any registry alias of a pre-resolved charset returns that
// exact value, canonical name included.
var standard = []Charset{Latin1, UTF8, UTF16, UTF16BE, UTF16LE}

// Lookup resolves a character-set name against the IANA registry.
//
// All registered aliases work, so Lookup("latin1") and Lookup("csISOLatin1")
// both yield Latin1. Names the registry does not know, and registered names
// for which no codec implementation exists, fail with errs.ErrUnknownCharset.
//
// Parameters:
//   - name: an IANA charset name or alias
//
// Returns:
//   - Charset: the resolved charset; a pre-resolved value when the name is
//     an alias of one, otherwise a Charset carrying the requested name
//   - error: errs.ErrUnknownCharset wrapped with the offending name
func Lookup(name string) (Charset, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return Charset{}, fmt.Errorf("%w: %q", errs.ErrUnknownCharset, name)
	}

	for _, std := range standard {
		if std.enc == enc {
			return std, nil
		}
	}

	return Charset{name: name, enc: enc}, nil
}
