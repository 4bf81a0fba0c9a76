// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); target graph must be empty.
//   • Adds nodes 0..n-1 in ascending order.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j. No randomness.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := validateEmpty(MethodComplete, g); err != nil {
			return err
		}

		return seedComplete(newTracker(MethodComplete, g, cfg), n)
	}
}

// seedComplete adds K_n on nodes 0..n-1 through t. The growth models start
// from K_m with it.
// Complexity: O(n²)
func seedComplete(t *tracker, n int) error {
	if err := t.addNodes(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := t.addEdge(core.NodeID(i), core.NodeID(j)); err != nil {
				return err
			}
		}
	}

	return nil
}
