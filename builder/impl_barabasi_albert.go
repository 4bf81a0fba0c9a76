// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_barabasi_albert.go - implementation of BarabasiAlbert(n, m) constructor.
//
// Contract:
//   • 1 ≤ m < n (else ErrTooFewVertices); requires cfg.rng (else ErrNeedRandSource).
//   • Seeds K_m on nodes 0..m-1, then for i = m..n-1:
//       – draws m distinct existing nodes by sequential degree-proportional
//         sampling without replacement, over the degrees BEFORE node i exists;
//       – adds node i and the edges {i, j} in draw order.
//   • A zero total weight (only the K_1 seed when m = 1) falls back to
//     uniform weights.
//   • |V| = n, |E| = C(m,2) + m·(n−m); every grown node has degree ≥ m.
//
// Complexity:
//   • Time: O(m² + Σ_i (i + m·log i)) = O(n²) for the per-step weight vectors.
//   • Space: O(n) per step for candidates and weights.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/sample"
)

// BarabasiAlbert returns a Constructor growing a preferential-attachment
// network of n nodes, each new node bringing m edges.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// All validation happens before the first mutation.
		if err := validateGrowth(MethodBarabasiAlbert, n, m); err != nil {
			return err
		}
		if err := validateRand(MethodBarabasiAlbert, cfg); err != nil {
			return err
		}
		if err := validateEmpty(MethodBarabasiAlbert, g); err != nil {
			return err
		}

		t := newTracker(MethodBarabasiAlbert, g, cfg)
		if err := seedComplete(t, m); err != nil {
			return err
		}

		for i := m; i < n; i++ {
			t.round = i
			// Candidates and weights are snapshotted before node i exists.
			candidates := g.Nodes()
			weights, err := degreeWeights(g, candidates)
			if err != nil {
				return fmt.Errorf("%s: %w", MethodBarabasiAlbert, err)
			}
			uniformIfZero(weights)

			targets, err := sample.WithoutReplacement(candidates, weights, m, cfg.rng)
			if err != nil {
				if errors.Is(err, sample.ErrInvalidWeight) {
					return fmt.Errorf("%s: step %d: %v: %w", MethodBarabasiAlbert, i, err, ErrConstructFailed)
				}
				return fmt.Errorf("%s: step %d: %w", MethodBarabasiAlbert, i, err)
			}

			id := core.NodeID(i)
			if err = t.addNode(id); err != nil {
				return err
			}
			for _, j := range targets {
				if err = t.addEdge(id, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// uniformIfZero replaces an all-zero weight vector with ones.
// Complexity: O(len(w))
func uniformIfZero(w []float64) {
	for _, x := range w {
		if x != 0 {
			return
		}
	}
	for i := range w {
		w[i] = 1
	}
}
