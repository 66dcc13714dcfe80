// Package belts solves feasibility and throughput for conveyor-style
// networks: directed edges with [lo,hi] flow bounds, per-node aggregate
// throughput caps, fixed per-source supplies and a single sink.
//
// What
//
//   - Solve either routes every fixed supply within all bounds and returns
//     the per-edge flows, or proves infeasibility with a machine-checkable
//     certificate: the residual-reachable cut, the numeric deficit, and the
//     tight nodes/edges whose saturation causes it.
//   - DecodeNetwork / Result.MarshalJSON / SolveRequest are the JSON wire
//     surface used by cmd/belts and the batch runner.
//
// How
//
//	Each node splits into an in/out vertex pair joined by one capacity edge
//	(the throughput cap). Each edge [lo,hi] becomes a residual edge of
//	capacity hi-lo, its lower bound converted into node demand; a super
//	source feeds positive demands, a super sink drains negative ones, and
//	fixed supplies enter the same ledger as mandatory virtual flow. One max
//	flow from super source to super sink decides feasibility: the required
//	positive demand routes fully, or the saturated residual graph yields a
//	min-cut certificate.
//
// Determinism
//
//	Node sets are sorted before indexing, edges sorted by (from,to,lo,hi)
//	before insertion, sources iterated in sorted order, outputs emitted in
//	sorted order. Identical logical inputs produce byte-identical JSON
//	regardless of input element or key order.
//
// Tolerances
//
//   - residual.Eps (1e-9): algorithmic comparisons and feasibility margin.
//   - SaturationTol (1e-6): certificate saturation threshold.
//
// Usage
//
//	res := belts.Solve(belts.Network{
//		Edges: []belts.EdgeSpec{
//			{From: "s", To: "mid", Hi: 1000},
//			{From: "mid", To: "sink", Hi: 1000},
//		},
//		Sources: map[string]float64{"s": 750},
//		Sink:    "sink",
//	})
//	// res.Status == belts.StatusOK, res.MaxFlowPerMin == 750
//
// Errors
//
//	Request errors (missing sink, hi < lo, negative lo/supply/cap) come
//	back as Status "error" with a message naming the offender; they are
//	the caller's fault and no solve is attempted. Infeasibility is not an
//	error: it is a Status "infeasible" Result carrying a certificate.
package belts
