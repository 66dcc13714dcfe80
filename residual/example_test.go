package residual_test

import (
	"fmt"

	"github.com/beltworks/beltflow/residual"
)

// ExampleGraph_Push demonstrates the paired-edge bookkeeping: sending flow
// forward opens the same amount of residual capacity on the reverse edge.
func ExampleGraph_Push() {
	g := residual.NewGraph(2)
	idx, _ := g.AddEdge(0, 1, 10)

	g.Push(0, idx, 4)

	fwd := g.EdgeAt(0, idx)
	rev := g.EdgeAt(fwd.To, fwd.Rev)
	fmt.Printf("forward: flow=%g residual=%g\n", fwd.Flow, fwd.Residual())
	fmt.Printf("reverse: flow=%g residual=%g\n", rev.Flow, rev.Residual())
	// Output:
	// forward: flow=4 residual=6
	// reverse: flow=-4 residual=4
}

// ExampleGraph_Reachable shows the min-cut witness: once the only path is
// saturated, the far side of the graph drops out of the residual scan.
func ExampleGraph_Reachable() {
	g := residual.NewGraph(3)
	ab, _ := g.AddEdge(0, 1, 5)
	_, _ = g.AddEdge(1, 2, 5)

	g.Push(0, ab, 5) // saturate 0→1

	seen, _ := g.Reachable(0, residual.Eps)
	fmt.Println(seen)
	// Output:
	// [true false false]
}
