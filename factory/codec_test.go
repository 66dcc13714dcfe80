package factory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beltworks/beltflow/factory"
)

func TestDecodePlant(t *testing.T) {
	in := `{
		"machines": {"chemical": {"crafts_per_min": 60}},
		"recipes": {
			"iron_plate": {
				"machine": "chemical", "time_s": 3.2,
				"in": {"iron_ore": 1}, "out": {"iron_plate": 1}
			}
		},
		"modules": {"chemical": {"prod": 0.2, "speed": 0.1}},
		"limits": {
			"raw_supply_per_min": {"iron_ore": 5000},
			"max_machines": {"chemical": 300}
		},
		"target": {"item": "iron_plate", "rate_per_min": 1200}
	}`
	p, err := factory.DecodePlant(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, 60.0, p.Machines["chemical"].CraftsPerMin)
	require.Equal(t, 3.2, p.Recipes["iron_plate"].TimeS)
	require.Equal(t, 0.2, p.Modules["chemical"].Prod)
	require.Equal(t, 5000.0, p.Limits.RawSupplyPerMin["iron_ore"])
	require.Equal(t, 300.0, p.Limits.MaxMachines["chemical"])
	require.Equal(t, "iron_plate", p.Target.Item)
	require.Equal(t, 1200.0, p.Target.RatePerMin)
}

func TestDecodePlantBadJSON(t *testing.T) {
	_, err := factory.DecodePlant(strings.NewReader(`{"machines":`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid json stdin")
}

// TestMarshalShapes pins the three wire shapes.
func TestMarshalShapes(t *testing.T) {
	res := factory.PlanResult{
		Status:                factory.StatusOK,
		PerRecipeCraftsPerMin: map[string]float64{"iron_plate": 1000},
		PerMachineCounts:      map[string]float64{"chemical": 0.5},
		RawConsumptionPerMin:  map[string]float64{"iron_ore": 1000},
	}
	j, err := res.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t,
		`{"per_machine_counts":{"chemical":0.5},"per_recipe_crafts_per_min":{"iron_plate":1000},"raw_consumption_per_min":{"iron_ore":1000},"status":"ok"}`,
		string(j))

	res = factory.PlanResult{
		Status:                  factory.StatusInfeasible,
		MaxFeasibleTargetPerMin: 2200,
		BottleneckHint:          []string{"copper_ore supply"},
	}
	j, err = res.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t,
		`{"bottleneck_hint":["copper_ore supply"],"max_feasible_target_per_min":2200,"status":"infeasible"}`,
		string(j))

	res = factory.PlanResult{Status: factory.StatusError, Message: "target item missing"}
	j, err = res.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"message":"target item missing","status":"error"}`, string(j))
}

func TestPlanResultRoundTrip(t *testing.T) {
	orig := factory.PlanResult{
		Status:                  factory.StatusInfeasible,
		MaxFeasibleTargetPerMin: 2200,
		BottleneckHint:          []string{"copper_ore supply"},
	}
	j, err := orig.MarshalJSON()
	require.NoError(t, err)

	var back factory.PlanResult
	require.NoError(t, back.UnmarshalJSON(j))
	require.Equal(t, orig.Status, back.Status)
	require.Equal(t, orig.MaxFeasibleTargetPerMin, back.MaxFeasibleTargetPerMin)
	require.Equal(t, orig.BottleneckHint, back.BottleneckHint)
}

func TestPlanRequest(t *testing.T) {
	out := factory.PlanRequest([]byte(`{"target": {}}`))
	require.Equal(t, `{"message":"target item missing","status":"error"}`, string(out))

	out = factory.PlanRequest([]byte(`garbage`))
	require.Contains(t, string(out), `"status":"error"`)
	require.Contains(t, string(out), "invalid json stdin")
}
