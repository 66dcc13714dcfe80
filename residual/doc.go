// Package residual provides the residual-graph representation used by the
// beltflow solvers: an adjacency-list digraph over integer vertex indices
// whose edges carry float64 capacities, mutable flow, and a handle to their
// paired reverse edge.
//
// What
//
//   - Graph: n vertices (0..n-1), slice-of-slices adjacency, no maps.
//   - AddEdge(u,v,cap) appends a forward edge with the given capacity and a
//     paired reverse edge of capacity zero; each stores the other's index.
//   - Push(u,i,f) moves f units across edge i of vertex u and pulls the same
//     amount back across its reverse, preserving flow(e) == -flow(rev(e)).
//   - Reachable(src,eps) scans the residual graph from src across edges with
//     remaining capacity above eps (the min-cut witness used by certificates).
//
// Determinism
//
//	Adjacency order is exactly insertion order, forever. Nothing in this
//	package iterates a map, so identical construction sequences yield
//	identical traversals and identical downstream results.
//
// Complexity (V = vertices, E = stored edges)
//
//   - AddEdge, Push, EdgeAt: O(1)
//   - Reachable: O(V + E)
//   - Memory: O(V + E)
//
// Usage
//
//	g := residual.NewGraph(4)
//	_ = g.AddEdge(0, 1, 900)   // forward cap 900, reverse cap 0
//	_ = g.AddEdge(1, 2, 600)
//	g.Push(0, 0, 250)          // send 250 across the first edge of vertex 0
//	seen, _ := g.Reachable(0, residual.Eps)
//
// Errors
//
//   - ErrVertexRange      if a vertex index is outside [0, VertexCount).
//   - ErrNegativeCapacity if AddEdge is given a capacity below zero.
//   - ErrSelfLoop         if AddEdge is given u == v.
package residual
