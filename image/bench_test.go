package image_test

import (
	"testing"

	"github.com/katalvlaran/wdt/image"
)

// BenchmarkFill measures Image.Fill on a 1000x1000 grid.
func BenchmarkFill(b *testing.B) {
	const n = 1000
	img, err := image.New[float64](n, n)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img.Fill(1.5)
	}
}

// BenchmarkClone measures Image.Clone on a 1000x1000 grid.
func BenchmarkClone(b *testing.B) {
	const n = 1000
	img, err := image.New[float64](n, n)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = img.Clone()
	}
}
