package belts

import (
	"fmt"
	"os"

	"github.com/beltworks/beltflow/flow"
	"github.com/beltworks/beltflow/residual"
)

// Solve routes every fixed supply through the network to the sink while
// honoring all edge bounds and node caps, and returns either a feasible
// flow assignment or an infeasibility certificate. Request errors (missing
// sink, bad bounds, negative supplies/caps) short-circuit before any graph
// is built. Solve never panics on caller data and never returns a bare
// infeasibility: a certificate always accompanies it.
//
// Steps:
//  1. Validate the request.
//  2. Build the residual encoding (node split + lower-bound transform).
//  3. Max flow sstar → tstar, capped at the required positive demand.
//  4. Certificate when short of the requirement, reconstruction otherwise.
func Solve(net Network, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Request validation.
	if err := validateNetwork(net); err != nil {
		return Result{Status: StatusError, Message: requestMessage(err)}
	}

	// 2) Residual encoding.
	t := build(net)

	// 3) Max flow, stopping the moment the requirement is met.
	fopts := flow.DefaultOptions()
	fopts.Limit = t.required
	fopts.Verbose = o.Verbose
	achieved, err := flow.Max(t.g, t.sstar, t.tstar, fopts)
	if err != nil {
		return Result{Status: StatusError, Message: requestMessage(err)}
	}

	if o.Verbose {
		fmt.Fprintf(os.Stderr, "belts: routed %g of %g required\n", achieved, t.required)
		for i, v := range t.nodes {
			if e := t.g.EdgeAt(nodeIn(i), 0); e.Residual() <= SaturationTol {
				fmt.Fprintf(os.Stderr, "belts: node %s throughput saturated (cap %g)\n", v, e.Cap)
			}
		}
	}

	// 4) Outcome.
	if achieved+residual.Eps < t.required {
		return certificate(t, achieved)
	}

	return reconstruct(t)
}

// certificate builds the infeasibility witness from the saturated residual
// graph: the min-cut reachable set, the numeric deficit, the reachable
// nodes whose throughput cap is the bottleneck, and the saturated user
// edges crossing the cut.
func certificate(t *transform, achieved float64) Result {
	reach, _ := t.g.Reachable(t.sstar, residual.Eps)
	deficit := t.required - achieved

	cut := make([]string, 0, len(t.nodes))
	tightNodes := make([]string, 0)
	for i, v := range t.nodes {
		if !reach[nodeIn(i)] {
			continue
		}
		cut = append(cut, v)
		// The internal throughput edge is adjacency entry 0 by construction.
		if t.g.EdgeAt(nodeIn(i), 0).Residual() <= SaturationTol {
			tightNodes = append(tightNodes, v)
		}
	}

	tightEdges := make([]TightEdge, 0)
	for _, rec := range t.records {
		if !reach[rec.uOut] || reach[rec.vIn] {
			continue
		}
		if t.g.EdgeAt(rec.uOut, rec.idx).Residual() > SaturationTol {
			continue
		}
		need := rec.spec.Hi - rec.spec.Lo
		if need < 0 {
			need = 0
		}
		if deficit < need {
			need = deficit
		}
		tightEdges = append(tightEdges, TightEdge{From: rec.spec.From, To: rec.spec.To, FlowNeeded: need})
	}

	return Result{
		Status:       StatusInfeasible,
		CutReachable: cut,
		Deficit: &Deficit{
			DemandBalance: deficit,
			TightNodes:    tightNodes,
			TightEdges:    tightEdges,
		},
	}
}

// reconstruct reads the final flow off every user edge's residual slot and
// adds the lower bound back, clamping at zero against numeric noise. The
// records are already in (from,to,lo,hi) order, so the output is sorted by
// (from,to) as required.
func reconstruct(t *transform) Result {
	flows := make([]Flow, 0, len(t.records))
	for _, rec := range t.records {
		f := t.g.EdgeAt(rec.uOut, rec.idx).Flow + rec.spec.Lo
		if f < 0 {
			f = 0
		}
		flows = append(flows, Flow{From: rec.spec.From, To: rec.spec.To, Flow: f})
	}

	return Result{Status: StatusOK, MaxFlowPerMin: t.supply, Flows: flows}
}
