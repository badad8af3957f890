// types.go declares the configuration surface and sentinel errors of the
// salience computation.
//
// Errors:
//
//	ErrNilGraph      - a nil *core.Graph was passed.
//	ErrDirectedGraph - the graph is directed; salience is defined on undirected graphs.
//	ErrMultigraph    - the graph permits parallel edges.
//	ErrMissingWeight - an edge lacks the configured weight attribute (weighted variant).
//	ErrInvalidWeight - an edge weight is zero or negative (weighted variant).
//
// All of them are fatal preconditions: either the full salience matrix is
// produced or the call fails before any tree is built. A zero weight is
// never coerced to an epsilon - that would silently corrupt distances.
package salience

import "errors"

// DefaultWeightKey is the conventional edge attribute holding weights.
const DefaultWeightKey = "weight"

// Sentinel errors returned by Salience and SalienceUnweighted.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("salience: graph is nil")

	// ErrDirectedGraph indicates the input graph is directed.
	ErrDirectedGraph = errors.New("salience: directed graphs not supported")

	// ErrMultigraph indicates the input graph permits parallel edges.
	ErrMultigraph = errors.New("salience: multigraphs not supported")

	// ErrMissingWeight indicates an edge lacks the configured weight attribute.
	ErrMissingWeight = errors.New("salience: edge missing weight attribute")

	// ErrInvalidWeight indicates an edge weight whose reciprocal is not a
	// usable distance: zero or negative.
	ErrInvalidWeight = errors.New("salience: edge weight must be positive")
)

// Options configures the weighted salience computation.
type Options struct {
	// WeightKey names the edge attribute holding the weight w; the
	// effective proximity distance of an edge is 1/w.
	WeightKey string
}

// Option represents a functional option for configuring Salience.
type Option func(*Options)

// WithWeightKey overrides the edge attribute used as the weight.
// An empty key leaves DefaultWeightKey in place.
func WithWeightKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.WeightKey = key
		}
	}
}

// DefaultOptions returns the Options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{WeightKey: DefaultWeightKey}
}
