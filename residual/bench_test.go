package residual_test

import (
	"testing"

	"github.com/beltworks/beltflow/residual"
)

// buildChain constructs a chain 0→1→...→n with unit capacities.
func buildChain(n int) *residual.Graph {
	g := residual.NewGraph(n + 1)
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	return g
}

// BenchmarkAddEdge measures paired-edge insertion throughput.
func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := residual.NewGraph(2)
		for k := 0; k < 100; k++ {
			_, _ = g.AddEdge(0, 1, float64(k))
		}
	}
}

// BenchmarkPush measures the flow-update hot path on a single edge.
func BenchmarkPush(b *testing.B) {
	g := residual.NewGraph(2)
	idx, _ := g.AddEdge(0, 1, 1e12)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Push(0, idx, 1)
	}
}

// BenchmarkReachable_Chain measures the residual scan on a 10k-vertex chain.
func BenchmarkReachable_Chain(b *testing.B) {
	const N = 10000
	g := buildChain(N)

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Reachable(0, residual.Eps)
	}
}
