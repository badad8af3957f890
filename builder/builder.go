// Package builder assembles deterministic graph fixtures for tests,
// examples, and benchmarks.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves the configuration, runs constructors in order.
//   - Determinism: same options and constructor order ⇒ identical graphs.
//     Vertex IDs come from a zero-padded scheme ("v000", "v001", …) so
//     that sorted enumeration matches construction order.
//   - Safety: constructors never panic; they return sentinel errors.
//
// Errors:
//
//	ErrTooFewVertices - a topology was requested below its minimum size.
//	ErrNilConstructor - a nil Constructor was passed to BuildGraph.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salience/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a topology was requested below its minimum size.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNilConstructor indicates a nil Constructor was passed to BuildGraph.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies a deterministic graph mutation using the resolved
// configuration. Constructors validate their parameters early and return
// sentinel errors.
type Constructor func(g *core.Graph, cfg config) error

// config is the immutable resolved builder configuration.
type config struct {
	weightKey string                    // attribute key for generated weights
	weightFn  func(u, v string) float64 // nil = no weight attributes
	idFn      func(i int) string        // vertex ID scheme
}

// Option adjusts the builder configuration.
type Option func(*config)

// WithWeightFn attaches a weight attribute to every generated edge,
// computed from its endpoint IDs.
func WithWeightFn(fn func(u, v string) float64) Option {
	return func(c *config) { c.weightFn = fn }
}

// WithWeightKey overrides the attribute key used by WithWeightFn.
// An empty key leaves the default "weight" in place.
func WithWeightKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.weightKey = key
		}
	}
}

// WithIDFn overrides the vertex ID scheme.
func WithIDFn(fn func(i int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		weightKey: "weight",
		idFn:      func(i int) string { return fmt.Sprintf("v%03d", i) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. The first constructor error aborts the build.
// Complexity: Σ cost of the constructors.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Path builds the simple path P_n: v0—v1—…—v(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: Path needs n >= 2, got %d", ErrTooFewVertices, n)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the simple cycle C_n. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("%w: Cycle needs n >= 3, got %d", ErrTooFewVertices, n)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds the complete simple graph K_n. Requires n ≥ 1.
// Edges are emitted in lexicographic endpoint order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%w: Complete needs n >= 1, got %d", ErrTooFewVertices, n)
		}
		if err := g.AddVertex(cfg.idFn(0)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star builds a star: v0 is the hub, v1…v(n-1) are leaves. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: Star needs n >= 2, got %d", ErrTooFewVertices, n)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// addEdge inserts u—v, attaching the configured weight attribute if a
// weight function is set.
func addEdge(g *core.Graph, cfg config, u, v string) error {
	var opts []core.EdgeOption
	if cfg.weightFn != nil {
		opts = append(opts, core.WithEdgeAttr(cfg.weightKey, cfg.weightFn(u, v)))
	}
	_, err := g.AddEdge(u, v, opts...)

	return err
}
