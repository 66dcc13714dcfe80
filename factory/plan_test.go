package factory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/beltworks/beltflow/factory"
)

// PlanSuite exercises the two-phase planner on the green-circuit reference
// plant and its failure modes.
type PlanSuite struct {
	suite.Suite
}

// greenCircuits is the reference plant: two smelting recipes on chemical
// plants feeding a circuit assembler, with module bonuses on both.
func greenCircuits(rate float64) factory.Plant {
	return factory.Plant{
		Machines: map[string]factory.Machine{
			"assembler_1": {CraftsPerMin: 30},
			"chemical":    {CraftsPerMin: 60},
		},
		Recipes: map[string]factory.Recipe{
			"iron_plate": {
				Machine: "chemical", TimeS: 3.2,
				In:  map[string]float64{"iron_ore": 1},
				Out: map[string]float64{"iron_plate": 1},
			},
			"copper_plate": {
				Machine: "chemical", TimeS: 3.2,
				In:  map[string]float64{"copper_ore": 1},
				Out: map[string]float64{"copper_plate": 1},
			},
			"green_circuit": {
				Machine: "assembler_1", TimeS: 0.5,
				In:  map[string]float64{"iron_plate": 1, "copper_plate": 3},
				Out: map[string]float64{"green_circuit": 1},
			},
		},
		Modules: map[string]factory.Module{
			"assembler_1": {Prod: 0.1, Speed: 0.15},
			"chemical":    {Prod: 0.2, Speed: 0.1},
		},
		Limits: factory.Limits{
			RawSupplyPerMin: map[string]float64{"iron_ore": 5000, "copper_ore": 5000},
			MaxMachines:     map[string]float64{"assembler_1": 300, "chemical": 300},
		},
		Target: factory.Target{Item: "green_circuit", RatePerMin: rate},
	}
}

func (s *PlanSuite) TestGreenCircuitsOK() {
	res := factory.PlanProduction(greenCircuits(1800))

	require.Equal(s.T(), factory.StatusOK, res.Status)

	// Balances pin the solution uniquely: 1.1·x_gc = 1800 and each plate
	// recipe produces exactly what the assembler consumes at prod 1.2.
	xGC := 1800.0 / 1.1
	require.InDelta(s.T(), xGC, res.PerRecipeCraftsPerMin["green_circuit"], 1e-6)
	require.InDelta(s.T(), xGC/1.2, res.PerRecipeCraftsPerMin["iron_plate"], 1e-6)
	require.InDelta(s.T(), 3*xGC/1.2, res.PerRecipeCraftsPerMin["copper_plate"], 1e-6)

	// Ore flows equal plate-recipe activity (one ore per craft).
	require.InDelta(s.T(), xGC/1.2, res.RawConsumptionPerMin["iron_ore"], 1e-6)
	require.InDelta(s.T(), 3*xGC/1.2, res.RawConsumptionPerMin["copper_ore"], 1e-6)

	// Machine counts: assembler eff 30·1.15·120 = 4140, chemical eff
	// 60·1.1·18.75 = 1237.5.
	require.InDelta(s.T(), xGC/4140, res.PerMachineCounts["assembler_1"], 1e-6)
	require.InDelta(s.T(), (xGC/1.2+3*xGC/1.2)/1237.5, res.PerMachineCounts["chemical"], 1e-6)
}

func (s *PlanSuite) TestTargetBeyondSupplyInfeasible() {
	res := factory.PlanProduction(greenCircuits(1e6))

	require.Equal(s.T(), factory.StatusInfeasible, res.Status)
	// Copper ore binds first: 5000 ore/min → 6000 plates → 2000 circuits
	// crafted → 2200/min with productivity.
	require.InDelta(s.T(), 2200.0, res.MaxFeasibleTargetPerMin, 1e-3)
	require.Equal(s.T(), []string{"copper_ore supply"}, res.BottleneckHint)
}

func (s *PlanSuite) TestMissingTargetItem() {
	p := greenCircuits(100)
	p.Target = factory.Target{}
	res := factory.PlanProduction(p)

	require.Equal(s.T(), factory.StatusError, res.Status)
	require.Equal(s.T(), "target item missing", res.Message)
}

func (s *PlanSuite) TestUnknownMachine() {
	p := greenCircuits(100)
	r := p.Recipes["iron_plate"]
	r.Machine = "foundry"
	p.Recipes["iron_plate"] = r
	res := factory.PlanProduction(p)

	require.Equal(s.T(), factory.StatusError, res.Status)
	require.Equal(s.T(), "unknown machine foundry for recipe iron_plate", res.Message)
}

func (s *PlanSuite) TestNonPositiveTime() {
	p := greenCircuits(100)
	r := p.Recipes["copper_plate"]
	r.TimeS = 0
	p.Recipes["copper_plate"] = r
	res := factory.PlanProduction(p)

	require.Equal(s.T(), factory.StatusError, res.Status)
	require.Equal(s.T(), "non-positive time_s for recipe copper_plate", res.Message)
}

func (s *PlanSuite) TestNonPositiveCraftRate() {
	p := greenCircuits(100)
	p.Machines["chemical"] = factory.Machine{CraftsPerMin: 0}
	res := factory.PlanProduction(p)

	require.Equal(s.T(), factory.StatusError, res.Status)
	require.Equal(s.T(), "non-positive crafts_per_min for machine chemical", res.Message)
}

// TestAbsentMachineCapMeansZero: a machine type missing from max_machines
// contributes zero machines, so any positive target is infeasible.
func (s *PlanSuite) TestAbsentMachineCapMeansZero() {
	p := greenCircuits(1800)
	delete(p.Limits.MaxMachines, "assembler_1")
	res := factory.PlanProduction(p)

	require.Equal(s.T(), factory.StatusInfeasible, res.Status)
	require.InDelta(s.T(), 0.0, res.MaxFeasibleTargetPerMin, 1e-6)
	require.Contains(s.T(), res.BottleneckHint, "assembler_1 cap")
}

func (s *PlanSuite) TestNoRecipes() {
	p := factory.Plant{Target: factory.Target{Item: "widget", RatePerMin: 10}}
	res := factory.PlanProduction(p)
	require.Equal(s.T(), factory.StatusInfeasible, res.Status)
	require.Equal(s.T(), 0.0, res.MaxFeasibleTargetPerMin)

	p.Target.RatePerMin = 0
	res = factory.PlanProduction(p)
	require.Equal(s.T(), factory.StatusOK, res.Status)
}

func (s *PlanSuite) TestDeterministicRepeat() {
	p := greenCircuits(1800)
	j1, err := factory.PlanProduction(p).MarshalJSON()
	require.NoError(s.T(), err)
	j2, err := factory.PlanProduction(p).MarshalJSON()
	require.NoError(s.T(), err)
	require.Equal(s.T(), string(j1), string(j2))
}

func TestPlanSuite(t *testing.T) {
	suite.Run(t, new(PlanSuite))
}
