package flow

import (
	"errors"
	"math"

	"github.com/beltworks/beltflow/residual"
)

// Sentinel errors shared by both engines.
var (
	// ErrNilGraph is returned when a nil residual graph is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceRange is returned when the source index is out of range.
	ErrSourceRange = errors.New("flow: source vertex out of range")

	// ErrSinkRange is returned when the sink index is out of range.
	ErrSinkRange = errors.New("flow: sink vertex out of range")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source and sink coincide")
)

// Options configures the max-flow engines.
//
// Epsilon – comparison tolerance; residuals ≤ Epsilon count as saturated and
// a DFS push ≤ Epsilon terminates the blocking-flow phase. Values ≤ 0 fall
// back to residual.Eps.
//
// Limit – flow cap: the engine stops augmenting once the accumulated flow is
// within Epsilon of Limit. Zero means "route nothing"; callers that want an
// uncapped run keep the DefaultOptions value of +Inf. NaN and negative
// values normalize to +Inf and 0 respectively.
//
// Verbose – print each augmentation (amount pushed and running total).
type Options struct {
	Epsilon float64
	Limit   float64
	Verbose bool
}

// DefaultOptions returns the canonical engine configuration:
// Epsilon = residual.Eps, no flow cap, no tracing.
func DefaultOptions() Options {
	return Options{
		Epsilon: residual.Eps,
		Limit:   math.Inf(1),
		Verbose: false,
	}
}

// normalize repairs out-of-domain settings in place.
func (o *Options) normalize() {
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) {
		o.Epsilon = residual.Eps
	}
	if math.IsNaN(o.Limit) {
		o.Limit = math.Inf(1)
	}
	if o.Limit < 0 {
		o.Limit = 0
	}
}

// validate checks graph and endpoint indices common to both engines.
func validate(g *residual.Graph, source, sink int) error {
	if g == nil {
		return ErrNilGraph
	}
	if source < 0 || source >= g.VertexCount() {
		return ErrSourceRange
	}
	if sink < 0 || sink >= g.VertexCount() {
		return ErrSinkRange
	}
	if source == sink {
		return ErrSameEndpoints
	}

	return nil
}
