package belts

import (
	"sort"

	"github.com/beltworks/beltflow/residual"
)

// edgeRecord ties one user edge to its residual counterpart: the exact
// adjacency slot of the from.out → to.in edge. Keeping the slot (rather
// than re-finding the edge by endpoint) lets parallel user edges
// reconstruct and report independently.
type edgeRecord struct {
	spec EdgeSpec
	uOut int // from.out vertex
	vIn  int // to.in vertex
	idx  int // adjacency index of the residual edge inside uOut's list
}

// transform is the residual encoding of a Network: split vertices, the
// super source/sink of the lower-bound transform, and the bookkeeping the
// certificate and reconstruction stages need afterwards.
//
// Vertex layout: node i (in sorted order) owns in=2i and out=2i+1, joined
// by the internal throughput edge; sstar=2n, tstar=2n+1.
type transform struct {
	g       *residual.Graph
	nodes   []string // sorted node set
	records []edgeRecord
	sstar   int
	tstar   int
	// required is the sum of positive demands: the flow that must be fully
	// routed from sstar to tstar for the original problem to be feasible.
	required float64
	// supply is the total fixed supply, reported as max_flow_per_min when
	// the network is feasible.
	supply float64
}

func nodeIn(i int) int  { return 2 * i }
func nodeOut(i int) int { return 2*i + 1 }

// validateNetwork rejects malformed requests before any graph is built.
// Edges, sources and caps are checked in sorted order so the reported
// error is deterministic regardless of input ordering.
func validateNetwork(net Network) error {
	if net.Sink == "" {
		return ErrMissingSink
	}

	for _, e := range sortedEdges(net.Edges) {
		if e.Lo < 0 {
			return &BoundsError{From: e.From, To: e.To, Lo: e.Lo, Hi: e.Hi}
		}
		if e.Hi+residual.Eps < e.Lo {
			return &BoundsError{From: e.From, To: e.To, Lo: e.Lo, Hi: e.Hi}
		}
	}

	for _, s := range sortedKeys(net.Sources) {
		if net.Sources[s] < 0 {
			return fmtRequestError(ErrNegativeSupply, s)
		}
	}

	for _, v := range sortedKeys(net.NodeCaps) {
		if net.NodeCaps[v] < 0 {
			return fmtRequestError(ErrNegativeCap, v)
		}
	}

	return nil
}

// build converts a validated Network into its residual encoding.
//
// Steps:
//  1. Node set = Nodes ∪ edge endpoints ∪ source names ∪ sink, sorted.
//  2. Internal in→out throughput edges first, in node order (the
//     certificate stage relies on the internal edge being adjacency
//     entry 0 of every node-in vertex).
//  3. User edges in (from,to,lo,hi) order, each as from.out → to.in with
//     capacity hi-lo; the lower bound moves into the demand ledger.
//  4. Fixed supplies raise their source's demand; the sink's demand drops
//     by the total supply (a fixed supply is a mandatory virtual sink→
//     source edge, and this is where its lower bound lands).
//  5. Positive demand d hangs sstar → v.in with capacity d; negative hangs
//     v.out → tstar with capacity -d; |d| ≤ Eps means balanced.
func build(net Network) *transform {
	// 1) Deterministic node indexing.
	set := make(map[string]struct{}, len(net.Nodes))
	for _, v := range net.Nodes {
		set[v] = struct{}{}
	}
	for _, e := range net.Edges {
		set[e.From] = struct{}{}
		set[e.To] = struct{}{}
	}
	for s := range net.Sources {
		set[s] = struct{}{}
	}
	set[net.Sink] = struct{}{}

	nodes := make([]string, 0, len(set))
	for v := range set {
		nodes = append(nodes, v)
	}
	sort.Strings(nodes)

	index := make(map[string]int, len(nodes))
	for i, v := range nodes {
		index[v] = i
	}

	t := &transform{
		nodes: nodes,
		sstar: 2 * len(nodes),
		tstar: 2*len(nodes) + 1,
		g:     residual.NewGraph(2*len(nodes) + 2),
	}

	// 2) Internal throughput edges, one per node, first in every node-in
	// adjacency list.
	for i, v := range nodes {
		cap := Unbounded
		if c, ok := net.NodeCaps[v]; ok {
			cap = c
		}
		_, _ = t.g.AddEdge(nodeIn(i), nodeOut(i), cap)
	}

	// 3) User edges in sorted order; lower bounds become demand shifts.
	demand := make(map[string]float64, len(nodes))
	for _, e := range sortedEdges(net.Edges) {
		cap := e.Hi - e.Lo
		if cap < 0 {
			cap = 0
		}
		uOut := nodeOut(index[e.From])
		vIn := nodeIn(index[e.To])
		idx, _ := t.g.AddEdge(uOut, vIn, cap)
		t.records = append(t.records, edgeRecord{spec: e, uOut: uOut, vIn: vIn, idx: idx})
		demand[e.From] -= e.Lo
		demand[e.To] += e.Lo
	}

	// 4) Fixed supplies.
	for _, s := range sortedKeys(net.Sources) {
		t.supply += net.Sources[s]
		demand[s] += net.Sources[s]
	}
	demand[net.Sink] -= t.supply

	// 5) Super edges in node order.
	for i, v := range nodes {
		switch d := demand[v]; {
		case d > residual.Eps:
			_, _ = t.g.AddEdge(t.sstar, nodeIn(i), d)
			t.required += d
		case d < -residual.Eps:
			_, _ = t.g.AddEdge(nodeOut(i), t.tstar, -d)
		}
	}

	return t
}

// sortedEdges returns a copy of edges ordered by (from, to, lo, hi).
func sortedEdges(edges []EdgeSpec) []EdgeSpec {
	out := make([]EdgeSpec, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		if a.Lo != b.Lo {
			return a.Lo < b.Lo
		}

		return a.Hi < b.Hi
	})

	return out
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
