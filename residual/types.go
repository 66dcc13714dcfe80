package residual

import "errors"

// Eps is the shared algorithmic tolerance: capacities and flows within Eps
// of a boundary are treated as exactly at the boundary. Every beltflow
// package compares against this constant rather than re-declaring its own.
const Eps = 1e-9

// Sentinel errors for residual-graph construction and queries.
var (
	// ErrVertexRange is returned when a vertex index falls outside the graph.
	ErrVertexRange = errors.New("residual: vertex index out of range")

	// ErrNegativeCapacity is returned when AddEdge receives a capacity < 0.
	ErrNegativeCapacity = errors.New("residual: negative capacity")

	// ErrSelfLoop is returned when AddEdge receives identical endpoints.
	ErrSelfLoop = errors.New("residual: self-loop not allowed")
)

// Edge is one directed residual edge.
//
// To   – head vertex index.
// Rev  – index of the paired reverse edge inside adj[To].
// Cap  – capacity, fixed at construction.
// Flow – current flow; mutated only through Graph.Push so the pairing
// invariant flow(e) == -flow(rev(e)) always holds.
type Edge struct {
	To   int
	Rev  int
	Cap  float64
	Flow float64
}

// Residual reports the remaining capacity Cap - Flow of e.
func (e *Edge) Residual() float64 { return e.Cap - e.Flow }

// Graph is an adjacency-list residual digraph over vertices 0..n-1.
// The zero value is unusable; construct with NewGraph.
type Graph struct {
	adj [][]Edge
}
