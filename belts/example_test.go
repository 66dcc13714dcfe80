package belts_test

import (
	"fmt"

	"github.com/beltworks/beltflow/belts"
)

// ExampleSolve routes two fixed supplies through a shared junction onto two
// belts whose capacities exactly absorb them.
func ExampleSolve() {
	res := belts.Solve(belts.Network{
		Edges: []belts.EdgeSpec{
			{From: "s1", To: "a", Hi: 1000},
			{From: "s2", To: "a", Hi: 1000},
			{From: "a", To: "b", Hi: 1000},
			{From: "b", To: "sink", Hi: 900},
			{From: "a", To: "c", Hi: 1000},
			{From: "c", To: "sink", Hi: 600},
		},
		Sources: map[string]float64{"s1": 900, "s2": 600},
		Sink:    "sink",
	})

	out, _ := res.MarshalJSON()
	fmt.Println(string(out))
	// Output:
	// {"flows":[{"flow":900,"from":"a","to":"b"},{"flow":600,"from":"a","to":"c"},{"flow":900,"from":"b","to":"sink"},{"flow":600,"from":"c","to":"sink"},{"flow":900,"from":"s1","to":"a"},{"flow":600,"from":"s2","to":"a"}],"max_flow_per_min":1500,"status":"ok"}
}

// ExampleSolve_infeasible shows the certificate for a junction capped below
// the combined supply: the cut, the deficit, and the node to blame.
func ExampleSolve_infeasible() {
	res := belts.Solve(belts.Network{
		Edges: []belts.EdgeSpec{
			{From: "s1", To: "a", Hi: 1000},
			{From: "s2", To: "a", Hi: 1000},
			{From: "a", To: "sink", Hi: 1000},
		},
		Sources:  map[string]float64{"s1": 900, "s2": 600},
		Sink:     "sink",
		NodeCaps: map[string]float64{"a": 500},
	})

	out, _ := res.MarshalJSON()
	fmt.Println(string(out))
	// Output:
	// {"cut_reachable":["a","s1","s2"],"deficit":{"demand_balance":1000,"tight_edges":[],"tight_nodes":["a"]},"status":"infeasible"}
}
