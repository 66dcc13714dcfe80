// Package factory plans production rates for a recipe/machine plant via
// linear programming: which recipes to run at what crafts-per-minute to
// hit a target output rate, within raw-supply and machine-count limits.
//
// What
//
//   - PlanProduction formulates the plant as an LP — recipe activities as
//     variables, item balances as equalities, raw supplies and machine
//     ceilings as inequalities — and delegates optimization to gonum's
//     simplex (optimize/convex/lp).
//   - Phase 1 fixes the requested target rate and minimizes total machine
//     count. When infeasible, phase 2 frees the rate as a variable and
//     maximizes it, reporting the achievable ceiling plus bottleneck hints
//     naming every binding machine cap and raw supply.
//   - DecodePlant / PlanResult.MarshalJSON / PlanRequest are the JSON wire
//     surface used by cmd/factory and the batch runner.
//
// Model
//
//	A machine's effective rate on a recipe is crafts_per_min · (1+speed) ·
//	60 / time_s, with the speed bonus from its module loadout; productivity
//	bonuses multiply recipe outputs only. An item present in
//	raw_supply_per_min is a raw: it may be consumed up to its cap and never
//	net produced. Every other non-target item must balance to zero. A
//	machine type absent from max_machines contributes zero machines —
//	unlimited capacity must be declared, not assumed.
//
// Determinism
//
//	Recipes, items, machines and raws are all iterated in sorted order when
//	assembling the program, and result maps marshal with sorted keys, so
//	identical plants produce byte-identical JSON.
//
// Errors
//
//	Request errors (missing target item, unknown machine, non-positive
//	time_s or crafts_per_min) come back as Status "error". An unreachable
//	target rate is not an error: it is Status "infeasible" with the
//	achievable ceiling.
package factory
