package belts

import (
	"errors"
	"fmt"
	"strings"
)

// Tolerances and sentinels of the user-facing solver. The algorithmic
// epsilon lives in residual.Eps; these are the reporting-side constants.
const (
	// SaturationTol is the threshold below which a residual capacity counts
	// as saturated when building certificates (tight nodes, tight edges).
	SaturationTol = 1e-6

	// Unbounded is the sentinel capacity for edges without a declared upper
	// bound and for nodes without a throughput cap.
	Unbounded = 1e18
)

// Sentinel request errors. Every one of them means the caller's network
// specification is malformed; none of them is ever raised for a network
// that is merely infeasible.
var (
	// ErrMissingSink is returned when the network declares no sink node.
	ErrMissingSink = errors.New("belts: sink not specified")

	// ErrBadEdgeBounds is the category wrapped by BoundsError.
	ErrBadEdgeBounds = errors.New("belts: bad edge bounds")

	// ErrNegativeSupply is returned when a source declares a supply < 0.
	ErrNegativeSupply = errors.New("belts: negative supply")

	// ErrNegativeCap is returned when a node declares a throughput cap < 0.
	ErrNegativeCap = errors.New("belts: negative node cap")
)

// BoundsError reports a user edge whose [Lo,Hi] interval is invalid,
// either because Hi < Lo beyond tolerance or because Lo is negative.
// It wraps ErrBadEdgeBounds for errors.Is matching.
type BoundsError struct {
	From string
	To   string
	Lo   float64
	Hi   float64
}

// Error names the offending edge the way callers expect to see it.
func (e *BoundsError) Error() string {
	if e.Lo < 0 {
		return fmt.Sprintf("belts: edge lo < 0 for %s->%s", e.From, e.To)
	}

	return fmt.Sprintf("belts: edge hi < lo for %s->%s", e.From, e.To)
}

// Unwrap ties BoundsError into the ErrBadEdgeBounds category.
func (e *BoundsError) Unwrap() error { return ErrBadEdgeBounds }

// fmtRequestError attaches the offending node name to a sentinel.
func fmtRequestError(sentinel error, node string) error {
	return fmt.Errorf("%w for %s", sentinel, node)
}

// requestMessage strips the package prefix for user-facing Result messages:
// callers see "sink not specified", not "belts: sink not specified".
func requestMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "belts: ")
}

// EdgeSpec is one user-level directed edge with mandatory minimum flow Lo
// and maximum flow Hi.
type EdgeSpec struct {
	From string
	To   string
	Lo   float64
	Hi   float64
}

// Network is the parsed belt-network specification consumed by Solve.
//
// Nodes may be nil: the effective node set is always the union of Nodes,
// every edge endpoint, every source name and the sink. Sources maps source
// node → fixed supply it must emit; NodeCaps maps node → maximum aggregate
// throughput (absent = unbounded).
type Network struct {
	Nodes    []string
	Edges    []EdgeSpec
	Sources  map[string]float64
	Sink     string
	NodeCaps map[string]float64
}

// Status is the outcome class of a solve request.
type Status string

// The three result statuses. Infeasible is a legitimate outcome, not an
// error: it always carries a certificate.
const (
	StatusOK         Status = "ok"
	StatusInfeasible Status = "infeasible"
	StatusError      Status = "error"
)

// Flow is one reconstructed user-edge flow of a feasible result.
type Flow struct {
	From string
	To   string
	Flow float64
}

// TightEdge is a saturated user edge crossing the infeasibility cut.
// FlowNeeded is min(deficit, hi-lo): how much extra headroom this single
// edge would need to close the whole gap. It is a hint, not a minimal
// fix — several cut edges may need widening at once.
type TightEdge struct {
	From       string
	To         string
	FlowNeeded float64
}

// Deficit quantifies an infeasibility: the unroutable demand, the nodes
// whose throughput caps are the bottleneck, and the saturated cut edges.
type Deficit struct {
	DemandBalance float64
	TightNodes    []string
	TightEdges    []TightEdge
}

// Result is the status-shaped outcome of Solve.
//
//   - StatusOK:         MaxFlowPerMin and Flows are set.
//   - StatusInfeasible: CutReachable and Deficit are set.
//   - StatusError:      Message is set.
type Result struct {
	Status        Status
	MaxFlowPerMin float64
	Flows         []Flow
	CutReachable  []string
	Deficit       *Deficit
	Message       string
}

// Options configures Solve.
type Options struct {
	// Verbose traces routing progress and saturated node caps to stderr.
	Verbose bool
}

// DefaultOptions returns the canonical solver configuration: silent.
func DefaultOptions() Options { return Options{} }

// Option mutates Options in the functional style.
type Option func(*Options)

// WithVerbose toggles the stderr solve trace.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}
