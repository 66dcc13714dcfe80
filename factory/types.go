package factory

import (
	"errors"
	"strings"
)

// eps filters numerically-zero constraint rows out of the formulation.
const eps = 1e-9

// bindTol is the slack below which a machine or raw-supply constraint
// counts as binding when naming bottlenecks.
const bindTol = 1e-6

// Sentinel request errors. Each one means the plant specification is
// malformed; planning is not attempted.
var (
	// ErrMissingTarget is returned when no target item is declared.
	ErrMissingTarget = errors.New("factory: target item missing")

	// ErrUnknownMachine is returned when a recipe names an undeclared machine.
	ErrUnknownMachine = errors.New("factory: unknown machine")

	// ErrBadRecipeTime is returned when a recipe's time_s is not positive.
	ErrBadRecipeTime = errors.New("factory: non-positive time_s")

	// ErrBadCraftRate is returned when a used machine's crafts_per_min is
	// not positive.
	ErrBadCraftRate = errors.New("factory: non-positive crafts_per_min")
)

// requestMessage strips the package prefix for user-facing messages.
func requestMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "factory: ")
}

// Machine is one machine type and its base crafting rate.
type Machine struct {
	CraftsPerMin float64 `json:"crafts_per_min"`
}

// Recipe crafts Out items from In items on one machine type, taking TimeS
// seconds per craft at unit speed.
type Recipe struct {
	Machine string             `json:"machine"`
	TimeS   float64            `json:"time_s"`
	In      map[string]float64 `json:"in"`
	Out     map[string]float64 `json:"out"`
}

// Module is the per-machine module loadout: Speed scales crafting rate,
// Prod scales recipe outputs (productivity applies to outputs only).
type Module struct {
	Speed float64 `json:"speed"`
	Prod  float64 `json:"prod"`
}

// Limits bounds the plan: available raw supply per minute per item, and
// the machine count ceiling per machine type. An absent max_machines entry
// means zero machines — unlimited capacity must be stated explicitly.
type Limits struct {
	RawSupplyPerMin map[string]float64 `json:"raw_supply_per_min"`
	MaxMachines     map[string]float64 `json:"max_machines"`
}

// Target is the requested output item and rate.
type Target struct {
	Item       string  `json:"item"`
	RatePerMin float64 `json:"rate_per_min"`
}

// Plant is the full production-planning request.
type Plant struct {
	Machines map[string]Machine `json:"machines"`
	Recipes  map[string]Recipe  `json:"recipes"`
	Modules  map[string]Module  `json:"modules"`
	Limits   Limits             `json:"limits"`
	Target   Target             `json:"target"`
}

// Status is the outcome class of a planning request.
type Status string

// The three planning statuses.
const (
	StatusOK         Status = "ok"
	StatusInfeasible Status = "infeasible"
	StatusError      Status = "error"
)

// PlanResult is the status-shaped outcome of PlanProduction.
//
//   - StatusOK:         per-recipe rates, per-machine counts, raw consumption.
//   - StatusInfeasible: the maximum achievable target rate and bottleneck
//     hints naming the binding machine caps and raw supplies.
//   - StatusError:      Message is set.
type PlanResult struct {
	Status                  Status
	PerRecipeCraftsPerMin   map[string]float64
	PerMachineCounts        map[string]float64
	RawConsumptionPerMin    map[string]float64
	MaxFeasibleTargetPerMin float64
	BottleneckHint          []string
	Message                 string
}
