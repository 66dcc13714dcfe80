package factory

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// program is the deterministic LP view of a Plant: recipes, items and
// machines pinned to sorted orderings, effective craft rates with module
// speed applied, and the item×recipe balance matrix with productivity
// applied to outputs.
type program struct {
	recipes   []string  // sorted recipe names; variable j = crafts/min of recipes[j]
	machineOf []string  // machine per recipe
	eff       []float64 // effective crafts/min of one machine on recipe j
	items     []string  // sorted item universe (recipe in/out ∪ target)
	itemIndex map[string]int
	coef      [][]float64 // coef[item][recipe] = out·(1+prod) − in
	rawItems  []string    // sorted raw-supply item names
	machines  []string    // sorted machine names
	plant     Plant
}

// newProgram validates the plant and precomputes the formulation inputs.
// Validation walks recipes in sorted order so the reported error is
// deterministic.
func newProgram(p Plant) (*program, error) {
	if p.Target.Item == "" {
		return nil, ErrMissingTarget
	}

	pr := &program{plant: p}
	for name := range p.Recipes {
		pr.recipes = append(pr.recipes, name)
	}
	sort.Strings(pr.recipes)
	for name := range p.Machines {
		pr.machines = append(pr.machines, name)
	}
	sort.Strings(pr.machines)
	for item := range p.Limits.RawSupplyPerMin {
		pr.rawItems = append(pr.rawItems, item)
	}
	sort.Strings(pr.rawItems)

	// Effective rates: crafts_per_min · (1+speed) · 60 / time_s.
	itemSet := map[string]struct{}{p.Target.Item: {}}
	for _, name := range pr.recipes {
		r := p.Recipes[name]
		m, ok := p.Machines[r.Machine]
		if !ok {
			return nil, fmt.Errorf("%w %s for recipe %s", ErrUnknownMachine, r.Machine, name)
		}
		if r.TimeS <= 0 {
			return nil, fmt.Errorf("%w for recipe %s", ErrBadRecipeTime, name)
		}
		if m.CraftsPerMin <= 0 {
			return nil, fmt.Errorf("%w for machine %s", ErrBadCraftRate, r.Machine)
		}
		mod := p.Modules[r.Machine]
		pr.machineOf = append(pr.machineOf, r.Machine)
		pr.eff = append(pr.eff, m.CraftsPerMin*(1+mod.Speed)*60/r.TimeS)
		for item := range r.In {
			itemSet[item] = struct{}{}
		}
		for item := range r.Out {
			itemSet[item] = struct{}{}
		}
	}

	for item := range itemSet {
		pr.items = append(pr.items, item)
	}
	sort.Strings(pr.items)
	pr.itemIndex = make(map[string]int, len(pr.items))
	for i, item := range pr.items {
		pr.itemIndex[item] = i
	}

	// Balance matrix: productivity multiplies outputs only.
	pr.coef = make([][]float64, len(pr.items))
	for i := range pr.coef {
		pr.coef[i] = make([]float64, len(pr.recipes))
	}
	for j, name := range pr.recipes {
		r := p.Recipes[name]
		prod := p.Modules[r.Machine].Prod
		for item, qty := range r.Out {
			pr.coef[pr.itemIndex[item]][j] += qty * (1 + prod)
		}
		for item, qty := range r.In {
			pr.coef[pr.itemIndex[item]][j] -= qty
		}
	}

	return pr, nil
}

// standardForm assembles the LP in the equality standard form lp.Simplex
// expects: minimize c·x subject to Ax = b, x ≥ 0, with one slack variable
// per inequality row.
//
// Rows (all recipe/item/machine iterations in sorted order):
//   - target item balance = rate (phase 1) or balance − t = 0 (phase 2);
//   - every non-target, non-raw item with a nonzero row balances to 0;
//   - per raw item: net production ≤ 0 and net consumption ≤ supply cap;
//   - per machine with recipes: Σ x_j/eff_j ≤ max_machines (absent = 0).
//
// Objective: phase 1 minimizes total machine count Σ x_j/eff_j; phase 2
// additionally carries t with coefficient −1, maximizing the achieved rate.
func (pr *program) standardForm(rate float64, maximize bool) (c []float64, a *mat.Dense, b []float64) {
	nrec := len(pr.recipes)
	nvar := nrec
	if maximize {
		nvar++ // trailing t variable
	}

	var eqRows, ubRows [][]float64
	var eqB, ubB []float64

	row := func(item string) []float64 {
		r := make([]float64, nvar)
		copy(r, pr.coef[pr.itemIndex[item]])

		return r
	}

	// Target row.
	targ := row(pr.plant.Target.Item)
	if maximize {
		targ[nrec] = -1
		eqRows, eqB = append(eqRows, targ), append(eqB, 0)
	} else {
		eqRows, eqB = append(eqRows, targ), append(eqB, rate)
	}

	// Intermediate balances.
	rawSet := make(map[string]struct{}, len(pr.rawItems))
	for _, item := range pr.rawItems {
		rawSet[item] = struct{}{}
	}
	for _, item := range pr.items {
		if item == pr.plant.Target.Item {
			continue
		}
		if _, raw := rawSet[item]; raw {
			continue
		}
		r := row(item)
		if maxAbs(r) > eps {
			eqRows, eqB = append(eqRows, r), append(eqB, 0)
		}
	}

	// Raw supplies: never net produced, consumption within cap.
	for _, item := range pr.rawItems {
		if _, ok := pr.itemIndex[item]; !ok {
			continue
		}
		r := row(item)
		ubRows, ubB = append(ubRows, r), append(ubB, 0)
		neg := make([]float64, nvar)
		for i, v := range r {
			neg[i] = -v
		}
		ubRows, ubB = append(ubRows, neg), append(ubB, pr.plant.Limits.RawSupplyPerMin[item])
	}

	// Machine count ceilings.
	for _, m := range pr.machines {
		r := make([]float64, nvar)
		for j := range pr.recipes {
			if pr.machineOf[j] == m {
				r[j] = 1 / pr.eff[j]
			}
		}
		if maxAbs(r) > eps {
			ubRows, ubB = append(ubRows, r), append(ubB, pr.plant.Limits.MaxMachines[m])
		}
	}

	// Slack-form assembly.
	total := nvar + len(ubRows)
	rows := len(eqRows) + len(ubRows)
	a = mat.NewDense(rows, total, nil)
	b = make([]float64, 0, rows)
	for i, r := range eqRows {
		a.SetRow(i, pad(r, total))
		b = append(b, eqB[i])
	}
	for i, r := range ubRows {
		padded := pad(r, total)
		padded[nvar+i] = 1
		a.SetRow(len(eqRows)+i, padded)
		b = append(b, ubB[i])
	}

	c = make([]float64, total)
	for j := range pr.recipes {
		c[j] = 1 / pr.eff[j]
	}
	if maximize {
		c[nrec] = -1
	}

	return c, a, b
}

// solve runs the simplex on the assembled program and returns the recipe
// activities (plus t when maximizing).
func (pr *program) solve(rate float64, maximize bool) ([]float64, error) {
	c, a, b := pr.standardForm(rate, maximize)
	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, err
	}

	return x, nil
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

func pad(r []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, r)

	return out
}
