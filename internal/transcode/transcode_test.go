package transcode

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestEncode_Latin1(t *testing.T) {
	got, err := Encode(charmap.ISO8859_1, []byte("café"))
	require.NoError(t, err)
	require.Equal(t, []byte{'c', 'a', 'f', 0xE9}, got)
}

func TestEncode_ReplacesUnsupportedRune(t *testing.T) {
	// U+20AC euro sign has no Latin-1 representation.
	got, err := Encode(charmap.ISO8859_1, []byte("€"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x1A}, got)
}

func TestEncode_ReplacesIllFormedInput(t *testing.T) {
	// A lone 0xFF is not valid UTF-8; it must become U+FFFD, not an error.
	got, err := Encode(unicode.UTF8, []byte{'a', 0xFF, 'b'})
	require.NoError(t, err)
	require.Equal(t, "a�b", string(got))
}

func TestDecode_Latin1(t *testing.T) {
	got, err := Decode(charmap.ISO8859_1, []byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	require.Equal(t, "café", string(got))
}

func TestDecode_MalformedUTF8(t *testing.T) {
	got, err := Decode(unicode.UTF8, []byte{'a', 0xFF, 'b'})
	require.NoError(t, err)
	require.Equal(t, "a�b", string(got))
}

func TestApply_EmptyAndNilInput(t *testing.T) {
	for _, src := range [][]byte{nil, {}} {
		enc, err := Encode(unicode.UTF8, src)
		require.NoError(t, err)
		require.Empty(t, enc)

		dec, err := Decode(unicode.UTF8, src)
		require.NoError(t, err)
		require.Empty(t, dec)
	}
}
