// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_ring_lattice.go - implementation of RingLattice(n, k) constructor.
//
// Contract:
//   • k even, 0 ≤ k < n (else ErrOddDegree / ErrTooFewVertices).
//   • Adds nodes 0..n-1, then for each u the edges {u, (u+d) mod n}, d = 1..k/2.
//   • Every node ends with degree exactly k; |E| = n·k/2.
//
// Complexity:
//   • Time: O(n + n·k). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// RingLattice returns a Constructor that builds the circular k-regular lattice
// on n nodes, the starting point of Watts–Strogatz.
func RingLattice(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateLattice(MethodRingLattice, n, k); err != nil {
			return err
		}
		if err := validateEmpty(MethodRingLattice, g); err != nil {
			return err
		}

		return seedRingLattice(newTracker(MethodRingLattice, g, cfg), n, k)
	}
}

// seedRingLattice emits the lattice in (u, d) order.
// Complexity: O(n·k)
func seedRingLattice(t *tracker, n, k int) error {
	if err := t.addNodes(n); err != nil {
		return err
	}
	half := k / 2
	for u := 0; u < n; u++ {
		for d := 1; d <= half; d++ {
			v := (u + d) % n
			if err := t.addEdge(core.NodeID(u), core.NodeID(v)); err != nil {
				return err
			}
		}
	}

	return nil
}
