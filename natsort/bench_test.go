package natsort_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vibrisca/natsort"
)

// benchmarkSort is a helper that sorts a synthetic frame listing of n
// names spread over a handful of session directories. Names are generated
// in a shuffled-looking but deterministic order.
func benchmarkSort(b *testing.B, n int, opts ...natsort.Option) {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		// multiplicative stepping scatters numeric order without randomness
		k := (i*2654435761 + 7) % n
		names[i] = fmt.Sprintf("session%d/frame_%d.tif", k%4, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := natsort.Sort(names, opts...); err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

// BenchmarkSort_1k sorts 1 000 hierarchical frame names.
func BenchmarkSort_1k(b *testing.B) { benchmarkSort(b, 1000) }

// BenchmarkSort_10k sorts 10 000 hierarchical frame names.
func BenchmarkSort_10k(b *testing.B) { benchmarkSort(b, 10000) }

// BenchmarkSort_10kPathOnly sorts 10 000 names on base names alone.
func BenchmarkSort_10kPathOnly(b *testing.B) {
	benchmarkSort(b, 10000, natsort.PathOnly())
}

// BenchmarkSort_10kDecimals sorts 10 000 names with the heaviest
// tokenizer mode.
func BenchmarkSort_10kDecimals(b *testing.B) {
	benchmarkSort(b, 10000, natsort.WithNumberMode(natsort.Decimals))
}
