package flow

import (
	"fmt"
	"os"

	"github.com/beltworks/beltflow/residual"
)

// EdmondsKarp computes the maximum flow from source to sink in g by
// repeatedly augmenting along a shortest residual path (BFS), stopping once
// the flow reaches opts.Limit. Edge flows are updated in place.
//
// It produces the same flow value as Max on any input and exists as an
// independently-implemented cross-check: the two engines share only the
// residual.Graph primitives.
//
// Steps:
//  1. Normalize options, validate graph and endpoints.
//  2. BFS from source across residuals > Epsilon, recording for every
//     reached vertex the edge it was discovered through.
//  3. Sink unreached ⇒ done. Otherwise walk the parent chain to find the
//     bottleneck, cap it by limit-flow, and push it back along the chain.
//
// Complexity:
//
//	Time:   O(V·E²).
//	Memory: O(V) for the parent chain and BFS queue.
func EdmondsKarp(g *residual.Graph, source, sink int, opts Options) (float64, error) {
	// 1) Options and endpoint validation.
	opts.normalize()
	if err := validate(g, source, sink); err != nil {
		return 0, err
	}

	n := g.VertexCount()
	parentV := make([]int, n) // vertex the BFS arrived from; -1 = unreached
	parentE := make([]int, n) // adjacency index of the discovering edge
	queue := make([]int, 0, n)

	var total float64
	for {
		if total+opts.Epsilon >= opts.Limit {
			return total, nil
		}

		// 2) Shortest augmenting path by BFS.
		for i := range parentV {
			parentV[i] = -1
		}
		parentV[source] = source
		queue = append(queue[:0], source)
		for head := 0; head < len(queue) && parentV[sink] < 0; head++ {
			u := queue[head]
			for i, deg := 0, g.Degree(u); i < deg; i++ {
				e := g.EdgeAt(u, i)
				if parentV[e.To] < 0 && e.Residual() > opts.Epsilon {
					parentV[e.To] = u
					parentE[e.To] = i
					queue = append(queue, e.To)
				}
			}
		}

		// 3) No augmenting path left: total is maximal.
		if parentV[sink] < 0 {
			return total, nil
		}

		// Bottleneck along the parent chain, capped by the remaining budget.
		bottleneck := opts.Limit - total
		for v := sink; v != source; v = parentV[v] {
			if r := g.EdgeAt(parentV[v], parentE[v]).Residual(); r < bottleneck {
				bottleneck = r
			}
		}

		// Push the bottleneck back along the chain.
		for v := sink; v != source; v = parentV[v] {
			g.Push(parentV[v], parentE[v], bottleneck)
		}
		total += bottleneck
		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "EdmondsKarp: pushed %g, total %g\n", bottleneck, total)
		}
	}
}
