// Package flow computes maximum flow over a residual.Graph, between one
// source vertex and one sink vertex, with float64 capacities and an optional
// flow cap for early exit.
//
// What
//
//   - Max: Dinic's algorithm — BFS level assignment plus DFS blocking flow
//     with one resume iterator per vertex, so exhausted adjacency prefixes
//     are never rescanned within a level graph.
//   - EdmondsKarp: BFS shortest-augmenting-path max flow. Slower in theory,
//     kept as an independent cross-check for the blocking-flow engine.
//   - Both engines mutate edge flows in place through residual.Push and
//     return the achieved flow value.
//
// Why
//
//   - Feasibility solving over lower-bounded networks reduces to one max
//     flow from a super-source to a super-sink, capped at the total positive
//     demand: the cap stops the engine the moment the requirement is met.
//
// Determinism
//
//	Adjacency order in a residual.Graph is insertion order, and both engines
//	scan adjacency strictly in index order. Identical graphs built in the
//	same sequence therefore augment identically, push identically and leave
//	identical final flows.
//
// Tolerance
//
//	All comparisons use Options.Epsilon (default residual.Eps = 1e-9):
//	an edge participates only while its residual exceeds Epsilon, and a DFS
//	returning ≤ Epsilon terminates the blocking-flow phase. Applying the
//	rule at every level is what keeps float capacities from generating
//	infinite micro-augmentations.
//
// Complexity (V = vertices, E = stored edges)
//
//   - Max:         O(V²·E) general bound; far lower in practice.
//   - EdmondsKarp: O(V·E²).
//   - Memory:      O(V) auxiliary (levels, iterators, queue).
//
// Usage
//
//	g := residual.NewGraph(4)
//	_, _ = g.AddEdge(0, 1, 900)
//	_, _ = g.AddEdge(1, 3, 900)
//	_, _ = g.AddEdge(0, 2, 600)
//	_, _ = g.AddEdge(2, 3, 600)
//
//	opts := flow.DefaultOptions()
//	opts.Limit = 1000 // stop once 1000 units have been routed
//	got, err := flow.Max(g, 0, 3, opts)
//
// Errors
//
//   - ErrNilGraph      if the graph pointer is nil.
//   - ErrSourceRange   if the source index is outside the graph.
//   - ErrSinkRange     if the sink index is outside the graph.
//   - ErrSameEndpoints if source == sink.
package flow
