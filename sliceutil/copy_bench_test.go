package sliceutil

import "testing"

func benchSource(n int) []int {
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}

	return src
}

func BenchmarkCopyOf_Small(b *testing.B) {
	src := benchSource(16)

	b.ResetTimer()
	for b.Loop() {
		_, _ = CopyOf(src, 16)
	}
}

func BenchmarkCopyOf_Grow(b *testing.B) {
	src := benchSource(16)

	b.ResetTimer()
	for b.Loop() {
		_, _ = CopyOf(src, 64)
	}
}

func BenchmarkCopyOf_Large(b *testing.B) {
	src := benchSource(4096)

	b.ResetTimer()
	for b.Loop() {
		_, _ = CopyOf(src, 4096)
	}
}

func BenchmarkCopyOfRange_Window(b *testing.B) {
	src := benchSource(4096)

	b.ResetTimer()
	for b.Loop() {
		_, _ = CopyOfRange(src, 1024, 3072)
	}
}
