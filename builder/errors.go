// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every validation sentinel wraps ErrInvalidParameter, so one check
//     covers the whole validation class.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates out-of-range or inconsistent model parameters.
// It is raised before any mutation of the target graph.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrTooFewVertices indicates a size parameter (n, m, k) below its minimum or
// inconsistent with another size (m ≥ n, k ≥ n).
var ErrTooFewVertices = fmt.Errorf("%w: size out of range", ErrInvalidParameter)

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = fmt.Errorf("%w: probability out of range", ErrInvalidParameter)

// ErrOddDegree indicates a ring-lattice degree k that is not even.
var ErrOddDegree = fmt.Errorf("%w: lattice degree must be even", ErrInvalidParameter)

// ErrNeedRandSource indicates a stochastic constructor was run without a
// *rand.Rand (see WithRand / WithSeed).
var ErrNeedRandSource = fmt.Errorf("%w: rng is required", ErrInvalidParameter)

// ErrGraphNotEmpty indicates a constructor that numbers nodes from zero was
// applied to a graph that already holds nodes.
var ErrGraphNotEmpty = fmt.Errorf("%w: target graph is not empty", ErrInvalidParameter)

// ErrGenerationStalled indicates a rejection-sampling loop exhausted its
// draw budget (see WithMaxRetries). Retry with a different seed or budget.
var ErrGenerationStalled = errors.New("builder: generation stalled")

// ErrObserverMutated indicates an observer added or removed nodes or edges
// while handling a step. Observers must treat the graph as read-only.
var ErrObserverMutated = errors.New("builder: observer mutated the graph")

// ErrConstructFailed indicates an internal inconsistency (nil constructor,
// broken active-set invariant). It signals a programming error.
var ErrConstructFailed = errors.New("builder: construction failed")
