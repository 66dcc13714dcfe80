package factory

import "sort"

// PlanProduction plans recipe activities for the requested target rate.
//
// Phase 1 fixes the target rate and minimizes total machine count; success
// yields a StatusOK plan. When phase 1 cannot meet the rate, phase 2 frees
// the rate as a variable and maximizes it, yielding a StatusInfeasible
// result with the achievable ceiling and the binding bottlenecks.
// Request errors (missing target, unknown machine, non-positive time or
// craft rate) short-circuit with StatusError before any solve.
func PlanProduction(p Plant) PlanResult {
	pr, err := newProgram(p)
	if err != nil {
		return PlanResult{Status: StatusError, Message: requestMessage(err)}
	}

	if len(pr.recipes) == 0 {
		// Nothing can be crafted: only a zero target is satisfiable.
		if p.Target.RatePerMin <= eps {
			return pr.okResult(nil)
		}

		return PlanResult{
			Status:         StatusInfeasible,
			BottleneckHint: []string{},
		}
	}

	// Phase 1: requested rate, minimum machines.
	if x, err := pr.solve(p.Target.RatePerMin, false); err == nil {
		return pr.okResult(x)
	}

	// Phase 2: maximize the achievable rate.
	x, err := pr.solve(0, true)
	if err != nil {
		return PlanResult{
			Status:         StatusInfeasible,
			BottleneckHint: []string{},
		}
	}

	return pr.infeasibleResult(x)
}

// okResult shapes a feasible plan: every recipe reported (zeros included),
// machine counts per machine type in use, and clamped net raw consumption.
func (pr *program) okResult(x []float64) PlanResult {
	res := PlanResult{
		Status:                StatusOK,
		PerRecipeCraftsPerMin: make(map[string]float64, len(pr.recipes)),
		PerMachineCounts:      make(map[string]float64),
		RawConsumptionPerMin:  make(map[string]float64, len(pr.rawItems)),
	}

	for j, name := range pr.recipes {
		xj := clampNonneg(x[j])
		res.PerRecipeCraftsPerMin[name] = xj
		res.PerMachineCounts[pr.machineOf[j]] += xj / pr.eff[j]
	}
	for _, item := range pr.rawItems {
		res.RawConsumptionPerMin[item] = pr.rawConsumption(item, x)
	}

	return res
}

// infeasibleResult shapes the phase-2 outcome: the achieved ceiling t and
// sorted, deduplicated bottleneck hints for every binding constraint.
func (pr *program) infeasibleResult(x []float64) PlanResult {
	res := PlanResult{
		Status:                  StatusInfeasible,
		MaxFeasibleTargetPerMin: clampNonneg(x[len(pr.recipes)]),
	}

	usage := make(map[string]float64)
	for j := range pr.recipes {
		usage[pr.machineOf[j]] += clampNonneg(x[j]) / pr.eff[j]
	}

	var hints []string
	for _, m := range sortedUsageKeys(usage) {
		if usage[m] >= pr.plant.Limits.MaxMachines[m]-bindTol {
			hints = append(hints, m+" cap")
		}
	}
	for _, item := range pr.rawItems {
		if _, ok := pr.itemIndex[item]; !ok {
			continue
		}
		if pr.rawConsumption(item, x) >= pr.plant.Limits.RawSupplyPerMin[item]-bindTol {
			hints = append(hints, item+" supply")
		}
	}

	sort.Strings(hints)
	res.BottleneckHint = dedup(hints)

	return res
}

// rawConsumption is the net consumption of item across all recipe
// activities, clamped at zero.
func (pr *program) rawConsumption(item string, x []float64) float64 {
	idx, ok := pr.itemIndex[item]
	if !ok {
		return 0
	}
	net := 0.0
	for j := range pr.recipes {
		net += -pr.coef[idx][j] * clampNonneg(x[j])
	}

	return clampNonneg(net)
}

func clampNonneg(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

func sortedUsageKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func dedup(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}

	return out
}
