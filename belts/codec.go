package belts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Wire-shadow structs. Field order is alphabetical by JSON key, which is
// the emission order and therefore part of the byte-stable contract.
type (
	edgeJSON struct {
		From string   `json:"from"`
		To   string   `json:"to"`
		Lo   *float64 `json:"lo"`
		Hi   *float64 `json:"hi"`
	}

	networkJSON struct {
		Nodes    []string           `json:"nodes"`
		Edges    []edgeJSON         `json:"edges"`
		Sources  map[string]float64 `json:"sources"`
		Sink     string             `json:"sink"`
		NodeCaps map[string]float64 `json:"node_caps"`
	}

	flowJSON struct {
		Flow float64 `json:"flow"`
		From string  `json:"from"`
		To   string  `json:"to"`
	}

	tightEdgeJSON struct {
		FlowNeeded float64 `json:"flow_needed"`
		From       string  `json:"from"`
		To         string  `json:"to"`
	}

	deficitJSON struct {
		DemandBalance float64         `json:"demand_balance"`
		TightEdges    []tightEdgeJSON `json:"tight_edges"`
		TightNodes    []string        `json:"tight_nodes"`
	}

	okJSON struct {
		Flows         []flowJSON `json:"flows"`
		MaxFlowPerMin float64    `json:"max_flow_per_min"`
		Status        Status     `json:"status"`
	}

	infeasibleJSON struct {
		CutReachable []string    `json:"cut_reachable"`
		Deficit      deficitJSON `json:"deficit"`
		Status       Status      `json:"status"`
	}

	errorJSON struct {
		Message string `json:"message"`
		Status  Status `json:"status"`
	}
)

// DecodeNetwork reads one JSON network specification from r. Absent lo
// defaults to 0, absent hi to Unbounded; every other field decodes as-is
// and is validated by Solve, not here.
func DecodeNetwork(r io.Reader) (Network, error) {
	var raw networkJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Network{}, fmt.Errorf("belts: invalid json stdin: %w", err)
	}

	net := Network{
		Nodes:    raw.Nodes,
		Sources:  raw.Sources,
		Sink:     raw.Sink,
		NodeCaps: raw.NodeCaps,
		Edges:    make([]EdgeSpec, 0, len(raw.Edges)),
	}
	for _, e := range raw.Edges {
		spec := EdgeSpec{From: e.From, To: e.To, Hi: Unbounded}
		if e.Lo != nil {
			spec.Lo = *e.Lo
		}
		if e.Hi != nil {
			spec.Hi = *e.Hi
		}
		net.Edges = append(net.Edges, spec)
	}

	return net, nil
}

// marshalCompact encodes v without HTML escaping and without a trailing
// newline. Plain json.Marshal would render the '>' in "a->b" as a
// \u003e escape, which callers comparing output byte-for-byte do not want.
func marshalCompact(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON emits the status-shaped wire form: only the fields of the
// active status appear, keys in alphabetical order, compact, no HTML
// escaping. Encode through this method (or SolveRequest); a plain
// json.Marshal call re-escapes '<' and '>' in messages.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Status {
	case StatusOK:
		flows := make([]flowJSON, 0, len(r.Flows))
		for _, f := range r.Flows {
			flows = append(flows, flowJSON{Flow: f.Flow, From: f.From, To: f.To})
		}

		return marshalCompact(okJSON{Flows: flows, MaxFlowPerMin: r.MaxFlowPerMin, Status: r.Status})

	case StatusInfeasible:
		d := deficitJSON{
			TightEdges: make([]tightEdgeJSON, 0),
			TightNodes: make([]string, 0),
		}
		cut := make([]string, 0)
		if r.Deficit != nil {
			d.DemandBalance = r.Deficit.DemandBalance
			for _, te := range r.Deficit.TightEdges {
				d.TightEdges = append(d.TightEdges, tightEdgeJSON{FlowNeeded: te.FlowNeeded, From: te.From, To: te.To})
			}
			if r.Deficit.TightNodes != nil {
				d.TightNodes = r.Deficit.TightNodes
			}
		}
		if r.CutReachable != nil {
			cut = r.CutReachable
		}

		return marshalCompact(infeasibleJSON{CutReachable: cut, Deficit: d, Status: r.Status})

	case StatusError:
		return marshalCompact(errorJSON{Message: r.Message, Status: r.Status})
	}

	return nil, fmt.Errorf("belts: marshal: unknown status %q", r.Status)
}

// UnmarshalJSON accepts any of the three wire shapes back into a Result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status        Status       `json:"status"`
		MaxFlowPerMin float64      `json:"max_flow_per_min"`
		Flows         []flowJSON   `json:"flows"`
		CutReachable  []string     `json:"cut_reachable"`
		Deficit       *deficitJSON `json:"deficit"`
		Message       string       `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("belts: unmarshal result: %w", err)
	}

	*r = Result{
		Status:        raw.Status,
		MaxFlowPerMin: raw.MaxFlowPerMin,
		CutReachable:  raw.CutReachable,
		Message:       raw.Message,
	}
	if raw.Flows != nil {
		r.Flows = make([]Flow, 0, len(raw.Flows))
		for _, f := range raw.Flows {
			r.Flows = append(r.Flows, Flow{From: f.From, To: f.To, Flow: f.Flow})
		}
	}
	if raw.Deficit != nil {
		d := &Deficit{
			DemandBalance: raw.Deficit.DemandBalance,
			TightNodes:    raw.Deficit.TightNodes,
			TightEdges:    make([]TightEdge, 0, len(raw.Deficit.TightEdges)),
		}
		for _, te := range raw.Deficit.TightEdges {
			d.TightEdges = append(d.TightEdges, TightEdge{From: te.From, To: te.To, FlowNeeded: te.FlowNeeded})
		}
		r.Deficit = d
	}

	return nil
}

// SolveRequest is the full request→response cycle on raw JSON bytes:
// decode, solve, encode. Malformed JSON comes back as a status:"error"
// document, never as a Go error — the caller always gets one well-formed
// response to forward verbatim.
func SolveRequest(input []byte, opts ...Option) []byte {
	var res Result
	net, err := DecodeNetwork(bytes.NewReader(input))
	if err != nil {
		res = Result{Status: StatusError, Message: requestMessage(err)}
	} else {
		res = Solve(net, opts...)
	}

	out, err := res.MarshalJSON()
	if err != nil {
		return []byte(`{"message":"internal encode failure","status":"error"}`)
	}

	return out
}
