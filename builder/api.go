// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - All-or-nothing: on error no graph is returned, never a partial one.

package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/netgen/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first mutation and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng, never from a global stream.
//   - Report every mutation to cfg.observer when it is set.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and the
// partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrInvalidParameter, ErrGenerationStalled, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// GenerateBarabasiAlbert grows an n-node preferential-attachment network in
// which every new node brings m edges. rng is required; when non-nil it takes
// precedence over WithRand/WithSeed in opts.
//
// Errors: ErrTooFewVertices (m < 1 or m ≥ n), ErrNeedRandSource,
// ErrObserverMutated.
// Complexity: O(n·(n + m)) time, O(n + n·m) space.
func GenerateBarabasiAlbert(n, m int, rng *rand.Rand, opts ...BuilderOption) (*core.Graph, error) {
	return generate(rng, opts, BarabasiAlbert(n, m))
}

// GenerateKlemmEguiluz grows an n-node network with a fixed-size active set
// of m nodes. For every active node, pMu is the probability that the new node
// links directly to it; otherwise the new node links to a deactivated node
// chosen with probability proportional to its degree.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrGenerationStalled, ErrObserverMutated.
// Complexity: O(n·(n + m·R)) expected time where R is the rejection cost.
func GenerateKlemmEguiluz(n, m int, pMu float64, rng *rand.Rand, opts ...BuilderOption) (*core.Graph, error) {
	return generate(rng, opts, KlemmEguiluz(n, m, pMu))
}

// GenerateWattsStrogatz builds a ring lattice of n nodes with degree k and
// rewires each edge with probability p. rng may be nil only when p == 0.
//
// Errors: ErrTooFewVertices, ErrOddDegree, ErrInvalidProbability, ErrNeedRandSource,
// ErrObserverMutated.
// Complexity: O(n²) time, O(n) extra space per rewired node.
func GenerateWattsStrogatz(n, k int, p float64, rng *rand.Rand, opts ...BuilderOption) (*core.Graph, error) {
	return generate(rng, opts, WattsStrogatz(n, k, p))
}

// generate appends the explicit rng last so it wins over any option.
func generate(rnd *rand.Rand, opts []BuilderOption, con Constructor) (*core.Graph, error) {
	bopts := make([]BuilderOption, 0, len(opts)+1)
	bopts = append(bopts, opts...)
	if rnd != nil {
		bopts = append(bopts, WithRand(rnd))
	}

	return BuildGraph(bopts, con)
}
