package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/heaptree/prim_kruskal"
)

// BenchmarkPrim measures Prim on a random graph with 500 vertices and 2000 edges,
// always starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000, 42) // pre-build graph once
	b.ResetTimer()                          // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, 0)
	}
}

// BenchmarkKruskal measures Kruskal on the same graph.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}
