// Package beltflow is a deterministic throughput toolkit for conveyor-style
// logistics networks — feasibility and max-flow solving with lower bounds,
// node caps and machine-checkable infeasibility certificates, plus an
// LP-based production planner.
//
// 🚚 What is beltflow?
//
//	A small, deterministic solver suite that brings together:
//		• residual/ — paired-edge residual graphs with float capacities
//		• flow/     — blocking-flow (Dinic) max-flow engine with resume iterators
//		• belts/    — [lo,hi]-bounded networks, node throughput caps, fixed
//		              supplies, single sink; feasible assignment or a min-cut
//		              certificate (reachable set, deficit, tight nodes/edges)
//		• factory/  — recipe/machine production planning via linear programming
//		• runner/   — bounded-concurrency batch execution of solve requests
//
// ✨ Why beltflow?
//
//   - Deterministic – identical inputs yield byte-identical outputs: sorted
//     node sets, sorted edge insertion, no map iteration on any hot path
//   - Certified – infeasibility never comes bare; every "no" carries the
//     residual cut, the numeric deficit and the saturated nodes/edges
//   - Tolerance-explicit – one algorithmic epsilon (1e-9), one reporting
//     threshold (1e-6), both named constants, applied uniformly
//
// Command-line entry points live under cmd/: belts and factory read one
// JSON request on stdin and write one JSON response on stdout; runsamples
// drives batches of requests through a worker pool.
//
// Quick ASCII example:
//
//	    s1──▶a──▶b──▶sink
//	    s2──▶a──▶c──▶sink
//
//	two sources feed a shared belt junction "a"; beltflow either routes
//	both supplies or names the cut that makes it impossible.
//
//	go get github.com/beltworks/beltflow
package beltflow
