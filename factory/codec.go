package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Output shadow structs, fields in alphabetical JSON-key order. Map values
// marshal with sorted keys, so the whole document is byte-stable.
type (
	planOKJSON struct {
		PerMachineCounts      map[string]float64 `json:"per_machine_counts"`
		PerRecipeCraftsPerMin map[string]float64 `json:"per_recipe_crafts_per_min"`
		RawConsumptionPerMin  map[string]float64 `json:"raw_consumption_per_min"`
		Status                Status             `json:"status"`
	}

	planInfeasibleJSON struct {
		BottleneckHint          []string `json:"bottleneck_hint"`
		MaxFeasibleTargetPerMin float64  `json:"max_feasible_target_per_min"`
		Status                  Status   `json:"status"`
	}

	planErrorJSON struct {
		Message string `json:"message"`
		Status  Status `json:"status"`
	}
)

// DecodePlant reads one JSON plant specification from r. The Plant types
// carry their wire tags directly; no defaulting is needed beyond Go zero
// values, and validation happens in PlanProduction.
func DecodePlant(r io.Reader) (Plant, error) {
	var p Plant
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Plant{}, fmt.Errorf("factory: invalid json stdin: %w", err)
	}

	return p, nil
}

// marshalCompact encodes v compactly without HTML escaping or a trailing
// newline.
func marshalCompact(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON emits the status-shaped wire form of a plan result.
func (r PlanResult) MarshalJSON() ([]byte, error) {
	switch r.Status {
	case StatusOK:
		return marshalCompact(planOKJSON{
			PerMachineCounts:      nonNilMap(r.PerMachineCounts),
			PerRecipeCraftsPerMin: nonNilMap(r.PerRecipeCraftsPerMin),
			RawConsumptionPerMin:  nonNilMap(r.RawConsumptionPerMin),
			Status:                r.Status,
		})

	case StatusInfeasible:
		hints := r.BottleneckHint
		if hints == nil {
			hints = []string{}
		}

		return marshalCompact(planInfeasibleJSON{
			BottleneckHint:          hints,
			MaxFeasibleTargetPerMin: r.MaxFeasibleTargetPerMin,
			Status:                  r.Status,
		})

	case StatusError:
		return marshalCompact(planErrorJSON{Message: r.Message, Status: r.Status})
	}

	return nil, fmt.Errorf("factory: marshal: unknown status %q", r.Status)
}

// UnmarshalJSON accepts any of the three wire shapes back into a PlanResult.
func (r *PlanResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status                  Status             `json:"status"`
		PerMachineCounts        map[string]float64 `json:"per_machine_counts"`
		PerRecipeCraftsPerMin   map[string]float64 `json:"per_recipe_crafts_per_min"`
		RawConsumptionPerMin    map[string]float64 `json:"raw_consumption_per_min"`
		MaxFeasibleTargetPerMin float64            `json:"max_feasible_target_per_min"`
		BottleneckHint          []string           `json:"bottleneck_hint"`
		Message                 string             `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("factory: unmarshal result: %w", err)
	}

	*r = PlanResult{
		Status:                  raw.Status,
		PerMachineCounts:        raw.PerMachineCounts,
		PerRecipeCraftsPerMin:   raw.PerRecipeCraftsPerMin,
		RawConsumptionPerMin:    raw.RawConsumptionPerMin,
		MaxFeasibleTargetPerMin: raw.MaxFeasibleTargetPerMin,
		BottleneckHint:          raw.BottleneckHint,
		Message:                 raw.Message,
	}

	return nil
}

func nonNilMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}

	return m
}

// PlanRequest is the full request→response cycle on raw JSON bytes:
// decode, plan, encode. Malformed JSON comes back as a status:"error"
// document, never as a Go error.
func PlanRequest(input []byte) []byte {
	var res PlanResult
	p, err := DecodePlant(bytes.NewReader(input))
	if err != nil {
		res = PlanResult{Status: StatusError, Message: requestMessage(err)}
	} else {
		res = PlanProduction(p)
	}

	out, err := res.MarshalJSON()
	if err != nil {
		return []byte(`{"message":"internal encode failure","status":"error"}`)
	}

	return out
}
