package charset

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("Voilà un café bien serré. ", 40)

func BenchmarkEncode_Latin1(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_, _ = Latin1.Encode(benchText)
	}
}

func BenchmarkEncode_UTF8(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_, _ = UTF8.Encode(benchText)
	}
}

func BenchmarkEncode_UTF16BE(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_, _ = UTF16BE.Encode(benchText)
	}
}

func BenchmarkDecode_Latin1(b *testing.B) {
	raw, err := Latin1.Encode(benchText)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = Latin1.Decode(raw)
	}
}

func BenchmarkDecode_UTF8(b *testing.B) {
	raw := []byte(benchText)

	b.ResetTimer()
	for b.Loop() {
		_, _ = UTF8.Decode(raw)
	}
}

func BenchmarkLookup_Alias(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_, _ = Lookup("latin1")
	}
}
