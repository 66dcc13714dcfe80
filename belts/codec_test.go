package belts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beltworks/beltflow/belts"
)

func TestDecodeNetworkDefaults(t *testing.T) {
	in := `{
		"nodes": ["x"],
		"edges": [
			{"from":"a","to":"b"},
			{"from":"b","to":"sink","lo":5,"hi":10}
		],
		"sources": {"a": 3},
		"sink": "sink",
		"node_caps": {"b": 7}
	}`
	net, err := belts.DecodeNetwork(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []string{"x"}, net.Nodes)
	require.Equal(t, "sink", net.Sink)
	require.Equal(t, 3.0, net.Sources["a"])
	require.Equal(t, 7.0, net.NodeCaps["b"])

	require.Len(t, net.Edges, 2)
	require.Equal(t, 0.0, net.Edges[0].Lo, "lo defaults to zero")
	require.Equal(t, belts.Unbounded, net.Edges[0].Hi, "hi defaults to unbounded")
	require.Equal(t, 5.0, net.Edges[1].Lo)
	require.Equal(t, 10.0, net.Edges[1].Hi)
}

func TestDecodeNetworkBadJSON(t *testing.T) {
	_, err := belts.DecodeNetwork(strings.NewReader(`{"edges": [`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid json stdin")
}

// TestMarshalShapes pins the three wire shapes byte-for-byte.
func TestMarshalShapes(t *testing.T) {
	ok := belts.Solve(belts.Network{
		Edges:   []belts.EdgeSpec{{From: "s", To: "t", Hi: 10}},
		Sources: map[string]float64{"s": 5},
		Sink:    "t",
	})
	j, err := ok.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t,
		`{"flows":[{"flow":5,"from":"s","to":"t"}],"max_flow_per_min":5,"status":"ok"}`,
		string(j))

	infeasible := belts.Solve(belts.Network{
		Edges:   []belts.EdgeSpec{{From: "s", To: "t", Hi: 2}},
		Sources: map[string]float64{"s": 5},
		Sink:    "t",
	})
	j, err = infeasible.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t,
		`{"cut_reachable":["s"],"deficit":{"demand_balance":3,"tight_edges":[{"flow_needed":2,"from":"s","to":"t"}],"tight_nodes":[]},"status":"infeasible"}`,
		string(j))

	bad := belts.Solve(belts.Network{
		Edges:   []belts.EdgeSpec{{From: "a", To: "b", Lo: 9, Hi: 1}},
		Sources: map[string]float64{"a": 1},
		Sink:    "b",
	})
	j, err = bad.MarshalJSON()
	require.NoError(t, err)
	// HTML escaping is off: the arrow survives verbatim.
	require.Equal(t, `{"message":"edge hi < lo for a->b","status":"error"}`, string(j))
}

func TestResultRoundTrip(t *testing.T) {
	orig := belts.Solve(cappedJunction())
	j, err := orig.MarshalJSON()
	require.NoError(t, err)

	var back belts.Result
	require.NoError(t, back.UnmarshalJSON(j))
	require.Equal(t, orig.Status, back.Status)
	require.Equal(t, orig.CutReachable, back.CutReachable)
	require.NotNil(t, back.Deficit)
	require.Equal(t, orig.Deficit.DemandBalance, back.Deficit.DemandBalance)
	require.Equal(t, orig.Deficit.TightNodes, back.Deficit.TightNodes)
	require.Equal(t, orig.Deficit.TightEdges, back.Deficit.TightEdges)
}

func TestSolveRequest(t *testing.T) {
	out := belts.SolveRequest([]byte(`{
		"edges": [{"from":"s","to":"t","hi":10}],
		"sources": {"s": 4},
		"sink": "t"
	}`))
	require.Equal(t,
		`{"flows":[{"flow":4,"from":"s","to":"t"}],"max_flow_per_min":4,"status":"ok"}`,
		string(out))

	out = belts.SolveRequest([]byte(`not json`))
	require.Contains(t, string(out), `"status":"error"`)
	require.Contains(t, string(out), "invalid json stdin")
}
