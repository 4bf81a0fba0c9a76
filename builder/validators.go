// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel wrapped with the method tag
// when its precondition is violated.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netgen/core"
)

// validateGrowth enforces MinAttachments ≤ m < n for the growth models.
// Complexity: O(1)
func validateGrowth(method string, n, m int) error {
	if m < MinAttachments {
		return fmt.Errorf("%s: m=%d < min=%d: %w", method, m, MinAttachments, ErrTooFewVertices)
	}
	if m >= n {
		return fmt.Errorf("%s: m=%d must be < n=%d: %w", method, m, n, ErrTooFewVertices)
	}

	return nil
}

// validateLattice enforces MinLatticeDegree ≤ k < n with k even.
// Complexity: O(1)
func validateLattice(method string, n, k int) error {
	if k < MinLatticeDegree {
		return fmt.Errorf("%s: k=%d < min=%d: %w", method, k, MinLatticeDegree, ErrTooFewVertices)
	}
	if k%2 != 0 {
		return fmt.Errorf("%s: k=%d: %w", method, k, ErrOddDegree)
	}
	if k >= n {
		return fmt.Errorf("%s: k=%d must be < n=%d: %w", method, k, n, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN fails.
// Complexity: O(1)
func validateProbability(method, name string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: %s=%v not in [%.1f,%.1f]: %w",
			method, name, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand requires a configured RNG.
// Complexity: O(1)
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// validateEmpty requires g to hold no nodes, since the models number their
// nodes 0..n-1 themselves.
// Complexity: O(1)
func validateEmpty(method string, g *core.Graph) error {
	if c := g.NodeCount(); c != 0 {
		return fmt.Errorf("%s: graph holds %d nodes: %w", method, c, ErrGraphNotEmpty)
	}

	return nil
}
