package residual

// NewGraph returns a residual graph with n isolated vertices.
// A negative n is treated as zero.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]Edge, n)}
}

// VertexCount reports the number of vertices in g.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount reports the total number of stored residual edges,
// counting forward and reverse entries separately.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, es := range g.adj {
		total += len(es)
	}

	return total
}

// Degree reports the number of residual edges leaving u.
// Out-of-range u reports zero.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= len(g.adj) {
		return 0
	}

	return len(g.adj[u])
}

// EdgeAt returns a pointer to the i-th residual edge of vertex u.
// The pointer stays valid until the next AddEdge on u or e.To; callers
// must mutate flow through Push, never through the returned pointer.
// Out-of-range indices return nil.
func (g *Graph) EdgeAt(u, i int) *Edge {
	if u < 0 || u >= len(g.adj) || i < 0 || i >= len(g.adj[u]) {
		return nil
	}

	return &g.adj[u][i]
}

// AddEdge appends a forward edge u→v with the given capacity and its paired
// reverse edge v→u with capacity zero. Each edge records the adjacency index
// of its partner in Rev. Returns the adjacency index of the forward edge
// inside adj[u].
//
// Steps:
//  1. Validate u, v in range, u != v, cap >= 0.
//  2. Forward edge's Rev is the slot the reverse edge will occupy.
//  3. Reverse edge's Rev is the slot the forward edge occupies.
func (g *Graph) AddEdge(u, v int, cap float64) (int, error) {
	// 1) Validation before any mutation.
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return 0, ErrVertexRange
	}
	if u == v {
		return 0, ErrSelfLoop
	}
	if cap < 0 {
		return 0, ErrNegativeCapacity
	}

	// 2) Forward edge points at the reverse edge's future slot.
	fwdIdx := len(g.adj[u])
	g.adj[u] = append(g.adj[u], Edge{To: v, Rev: len(g.adj[v]), Cap: cap})

	// 3) Reverse edge points back at the forward edge's slot.
	g.adj[v] = append(g.adj[v], Edge{To: u, Rev: fwdIdx, Cap: 0})

	return fwdIdx, nil
}

// Push sends f units of flow across edge i of vertex u and withdraws the
// same amount from its paired reverse edge. Negative f undoes flow. Bounds
// are the caller's contract: Push is the augmenting-path hot path and does
// not re-validate indices.
func (g *Graph) Push(u, i int, f float64) {
	e := &g.adj[u][i]
	e.Flow += f
	g.adj[e.To][e.Rev].Flow -= f
}

// Reachable performs a breadth-first scan from src across edges whose
// remaining capacity exceeds eps, returning one reachability flag per
// vertex. This is the residual min-cut witness: after a maximal flow, the
// flagged set is the source side of a minimum cut.
func (g *Graph) Reachable(src int, eps float64) ([]bool, error) {
	if src < 0 || src >= len(g.adj) {
		return nil, ErrVertexRange
	}

	seen := make([]bool, len(g.adj))
	seen[src] = true
	queue := make([]int, 0, len(g.adj))
	queue = append(queue, src)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for i := range g.adj[u] {
			e := &g.adj[u][i]
			if !seen[e.To] && e.Residual() > eps {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return seen, nil
}
