// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_watts_strogatz.go - implementation of WattsStrogatz(n, k, p) constructor.
//
// Contract:
//   • k even, 0 ≤ k < n, p ∈ [0,1]; cfg.rng is required unless p == 0.
//   • Builds RingLattice(n, k), then visits every node u in node order:
//       – snapshots N(u) and the non-neighbours of u (excluding u);
//       – selects each neighbour v with probability p (one draw per neighbour,
//         in N(u) order);
//       – assigns each selected v a replacement target per cfg.rewire;
//       – removes all selected {u,v}, then adds all {u,w}, as one batch.
//   • RewireDistinct: targets are drawn without replacement, so u keeps its
//     degree and |E| = n·k/2 always holds.
//   • RewireIndependent: targets may repeat and collapse into one edge.
//   • p == 0: the ring lattice is returned unchanged and no randomness is used.
//
// Complexity:
//   • Time: O(n·(n + k)). Space: O(n) for the per-node snapshot.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/sample"
)

// WattsStrogatz returns a Constructor building a small-world network.
func WattsStrogatz(n, k int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateLattice(MethodWattsStrogatz, n, k); err != nil {
			return err
		}
		if err := validateProbability(MethodWattsStrogatz, "p", p); err != nil {
			return err
		}
		if p > MinProbability {
			if err := validateRand(MethodWattsStrogatz, cfg); err != nil {
				return err
			}
		}
		if err := validateEmpty(MethodWattsStrogatz, g); err != nil {
			return err
		}

		t := newTracker(MethodWattsStrogatz, g, cfg)
		if err := seedRingLattice(t, n, k); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		for _, u := range g.Nodes() {
			t.round = int(u)
			if err := rewireNode(t, cfg, u, p); err != nil {
				return err
			}
		}

		return nil
	}
}

// rewireNode applies one node's removal/addition batch.
func rewireNode(t *tracker, cfg builderConfig, u core.NodeID, p float64) error {
	g := t.g
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}
	others, err := g.NonNeighbors(u)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}

	var (
		removed = make([]core.NodeID, 0, len(nbrs))
		added   = make([]core.NodeID, 0, len(nbrs))
		pool    = others
	)
	if cfg.rewire == RewireDistinct {
		// Draws shrink the pool; keep the snapshot itself intact.
		pool = append([]core.NodeID(nil), others...)
	}

	for _, v := range nbrs {
		if cfg.rng.Float64() >= p {
			continue
		}
		if len(pool) == 0 {
			continue
		}
		idx, err := sample.Uniform(len(pool), cfg.rng)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
		}
		w := pool[idx]
		if cfg.rewire == RewireDistinct {
			last := len(pool) - 1
			pool[idx] = pool[last]
			pool = pool[:last]
		}
		removed = append(removed, v)
		added = append(added, w)
	}

	for _, v := range removed {
		if err = t.removeEdge(u, v); err != nil {
			return err
		}
	}
	for _, w := range added {
		if err = t.addEdge(u, w); err != nil {
			return err
		}
	}

	return nil
}
