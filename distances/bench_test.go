package distances_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// BenchmarkCompute measures one BFS over a 200×200 backtracker maze.
// Complexity: O(N·d)
func BenchmarkCompute(b *testing.B) {
	g, err := gridgraph.New(200, 200)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err := generate.Generate(generate.RecursiveBacktracker, g, 42); err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distances.Compute(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLongestPath measures the two-pass diameter search.
func BenchmarkLongestPath(b *testing.B) {
	g, err := gridgraph.New(200, 200)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err := generate.Generate(generate.Wilson, g, 42); err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := distances.LongestPath(g); err != nil {
			b.Fatal(err)
		}
	}
}
