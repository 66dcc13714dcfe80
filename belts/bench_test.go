package belts_test

import (
	"fmt"
	"testing"

	"github.com/beltworks/beltflow/belts"
)

// layeredNetwork builds width parallel chains of the given depth, all fed
// by one source and drained by one sink.
func layeredNetwork(width, depth int) belts.Network {
	net := belts.Network{
		Sources: map[string]float64{"src": float64(width)},
		Sink:    "dst",
	}
	for w := 0; w < width; w++ {
		prev := "src"
		for d := 0; d < depth; d++ {
			cur := fmt.Sprintf("n_%d_%d", w, d)
			net.Edges = append(net.Edges, belts.EdgeSpec{From: prev, To: cur, Hi: 2})
			prev = cur
		}
		net.Edges = append(net.Edges, belts.EdgeSpec{From: prev, To: "dst", Hi: 2})
	}

	return net
}

// BenchmarkSolve_Layered measures the full pipeline (build + max flow +
// reconstruction) on a 50x20 lattice.
func BenchmarkSolve_Layered(b *testing.B) {
	net := layeredNetwork(50, 20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := belts.Solve(net)
		if res.Status != belts.StatusOK {
			b.Fatalf("unexpected status %s", res.Status)
		}
	}
}

// BenchmarkSolveRequest_Small measures the JSON round trip on a small net.
func BenchmarkSolveRequest_Small(b *testing.B) {
	input := []byte(`{
		"edges": [
			{"from":"s1","to":"a","hi":1000},
			{"from":"s2","to":"a","hi":1000},
			{"from":"a","to":"sink","hi":2000}
		],
		"sources": {"s1":900,"s2":600},
		"sink": "sink"
	}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = belts.SolveRequest(input)
	}
}
