package flow

import (
	"fmt"
	"os"

	"github.com/beltworks/beltflow/residual"
)

// Max computes the maximum flow from source to sink in g using Dinic's
// algorithm (level graph + blocking flows), stopping early once the flow
// reaches opts.Limit. Edge flows are updated in place; the achieved flow is
// returned.
//
// Steps:
//  1. Normalize options, validate graph and endpoints.
//  2. Repeat until the sink leaves the level graph or the limit is reached:
//     a. BFS from source assigns levels across residuals > Epsilon.
//     b. Reset the per-vertex resume iterators.
//     c. DFS pushes min(limit-flow, path bottleneck) along level-increasing
//     edges until a push returns ≤ Epsilon.
//
// Complexity:
//
//	Time:   O(V²·E) worst case; O(E·√V) on unit-capacity networks.
//	Memory: O(V) for levels, iterators and the BFS queue.
func Max(g *residual.Graph, source, sink int, opts Options) (float64, error) {
	// 1) Options and endpoint validation.
	opts.normalize()
	if err := validate(g, source, sink); err != nil {
		return 0, err
	}

	d := &dinic{
		g:     g,
		src:   source,
		dst:   sink,
		eps:   opts.Epsilon,
		level: make([]int, g.VertexCount()),
		iter:  make([]int, g.VertexCount()),
		queue: make([]int, 0, g.VertexCount()),
	}

	var total float64
	for {
		// 2) Limit reached: nothing more to route.
		if total+d.eps >= opts.Limit {
			return total, nil
		}

		// 2a) Level assignment; sink unreachable means total is maximal.
		if !d.bfsLevels() {
			return total, nil
		}

		// 2b) Fresh resume iterators for this level graph.
		for i := range d.iter {
			d.iter[i] = 0
		}

		// 2c) Blocking flow within the current level graph.
		for {
			pushed := d.push(d.src, opts.Limit-total)
			if pushed <= d.eps {
				break
			}
			total += pushed
			if opts.Verbose {
				// Trace goes to stderr: callers reserve stdout for results.
				fmt.Fprintf(os.Stderr, "Dinic: pushed %g, total %g\n", pushed, total)
			}
			if total+d.eps >= opts.Limit {
				return total, nil
			}
		}
	}
}

// dinic carries the per-run state of the blocking-flow engine.
type dinic struct {
	g        *residual.Graph
	src, dst int
	eps      float64
	level    []int // BFS distance from src; -1 = unreached
	iter     []int // next adjacency index to probe per vertex
	queue    []int // reused BFS queue
}

// bfsLevels assigns BFS levels from src across edges with residual > eps
// and reports whether the sink was reached.
func (d *dinic) bfsLevels() bool {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[d.src] = 0
	d.queue = append(d.queue[:0], d.src)

	for head := 0; head < len(d.queue); head++ {
		u := d.queue[head]
		for i, deg := 0, d.g.Degree(u); i < deg; i++ {
			e := d.g.EdgeAt(u, i)
			if d.level[e.To] < 0 && e.Residual() > d.eps {
				d.level[e.To] = d.level[u] + 1
				d.queue = append(d.queue, e.To)
			}
		}
	}

	return d.level[d.dst] >= 0
}

// push advances depth-first from u toward the sink along level+1 edges,
// sending at most avail. The resume iterator parks on the edge that carried
// flow (it may carry more) and skips past exhausted ones for the lifetime
// of the current level graph.
func (d *dinic) push(u int, avail float64) float64 {
	if u == d.dst {
		return avail
	}

	for ; d.iter[u] < d.g.Degree(u); d.iter[u]++ {
		e := d.g.EdgeAt(u, d.iter[u])
		if e.Residual() <= d.eps || d.level[e.To] != d.level[u]+1 {
			continue
		}

		send := avail
		if r := e.Residual(); r < send {
			send = r
		}
		if got := d.push(e.To, send); got > d.eps {
			d.g.Push(u, d.iter[u], got)

			return got
		}
	}

	return 0
}
