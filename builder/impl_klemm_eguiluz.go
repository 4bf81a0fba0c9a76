// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_klemm_eguiluz.go - implementation of KlemmEguiluz(n, m, pMu) constructor.
//
// Contract:
//   • 1 ≤ m < n, pMu ∈ [0,1]; requires cfg.rng.
//   • Seeds K_m on nodes 0..m-1, all of them active.
//   • For i = m..n-1:
//       – pool ← nodes not active, in node order (snapshot before node i).
//       – add node i; for each active j (snapshot order) draw u ∈ [0,1):
//           if pMu > u or the pool is empty, link {i, j};
//           else pick a pool node by degree-proportional rejection sampling,
//           link it to i and drop it from the pool.
//       – pick an active node with probability ∝ 1/degree and swap it out
//         for i. A zero-degree active node is picked immediately.
//   • |active| = m after every step; every grown node brings exactly m edges.
//
// Determinism:
//   • Active-set iteration is insertion ordered; pools follow node order.
//
// Complexity:
//   • Time: O(n·(n + m·R)) with R the expected rejection cost (≈ pool size).
//   • Space: O(n) per step.

package builder

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/observe"
	"github.com/katalvlaran/netgen/sample"
)

// KlemmEguiluz returns a Constructor growing an n-node network with an
// active set of m nodes. pMu is the per-edge probability that a new node
// links directly to the active node; otherwise the edge goes to a
// deactivated node picked with probability proportional to its degree.
func KlemmEguiluz(n, m int, pMu float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateGrowth(MethodKlemmEguiluz, n, m); err != nil {
			return err
		}
		if err := validateProbability(MethodKlemmEguiluz, "pMu", pMu); err != nil {
			return err
		}
		if err := validateRand(MethodKlemmEguiluz, cfg); err != nil {
			return err
		}
		if err := validateEmpty(MethodKlemmEguiluz, g); err != nil {
			return err
		}

		t := newTracker(MethodKlemmEguiluz, g, cfg)
		if err := seedComplete(t, m); err != nil {
			return err
		}
		active := NewActiveSet(g.Nodes()...)
		for _, id := range active.Nodes() {
			if err := t.emit(observe.NodeActivated, id, 0); err != nil {
				return err
			}
		}

		ke := &klemmEguiluz{t: t, cfg: cfg, active: active, pMu: pMu}
		for i := m; i < n; i++ {
			t.round = i
			if err := ke.grow(core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// klemmEguiluz carries the per-run state of one generation.
type klemmEguiluz struct {
	t      *tracker
	cfg    builderConfig
	active *ActiveSet
	pMu    float64
}

// grow performs one step: add id, link it, then swap it into the active set.
func (ke *klemmEguiluz) grow(id core.NodeID) error {
	g := ke.t.g
	pool := ke.active.Inactive(g.Nodes())
	targets := ke.active.Nodes()

	if err := ke.t.addNode(id); err != nil {
		return err
	}

	for _, j := range targets {
		chance := ke.cfg.rng.Float64()
		if ke.pMu > chance || len(pool) == 0 {
			if err := ke.t.addEdge(id, j); err != nil {
				return err
			}
			continue
		}

		k, err := ke.pickByDegree(id, pool)
		if err != nil {
			return err
		}
		if err = ke.t.addEdge(id, pool[k]); err != nil {
			return err
		}
		pool = slices.Delete(pool, k, k+1)
	}

	victim, err := ke.pickVictim(targets)
	if err != nil {
		return err
	}
	if err = ke.active.Swap(victim, id); err != nil {
		return fmt.Errorf("%s: %w", MethodKlemmEguiluz, err)
	}
	if err = ke.t.emit(observe.NodeDeactivated, victim, 0); err != nil {
		return err
	}

	return ke.t.emit(observe.NodeActivated, id, 0)
}

// pickByDegree selects a pool index with probability ∝ degree, redrawing
// when the selected node is already adjacent to id. An all-zero pool is
// sampled uniformly. The whole selection shares one draw budget.
func (ke *klemmEguiluz) pickByDegree(id core.NodeID, pool []core.NodeID) (int, error) {
	g := ke.t.g
	weights, err := degreeWeights(g, pool)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", MethodKlemmEguiluz, err)
	}
	uniformIfZero(weights)

	budget := ke.cfg.maxRetries
	for budget > 0 {
		k, spent, err := sample.Rejection(weights, budget, ke.cfg.rng)
		if err != nil {
			return -1, ke.stalled(err)
		}
		budget -= spent
		if !g.HasEdge(id, pool[k]) {
			return k, nil
		}
	}

	return -1, fmt.Errorf("%s: node %d: pool of %d exhausted %d draws: %w",
		MethodKlemmEguiluz, id, len(pool), ke.cfg.maxRetries, ErrGenerationStalled)
}

// pickVictim selects the active node to deactivate with probability
// ∝ 1/degree. The first zero-degree node, if any, is chosen outright.
func (ke *klemmEguiluz) pickVictim(actives []core.NodeID) (core.NodeID, error) {
	degs, err := ke.t.g.Degrees(actives)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", MethodKlemmEguiluz, err)
	}

	inv := make([]float64, len(degs))
	for i, d := range degs {
		if d == 0 {
			return actives[i], nil
		}
		inv[i] = 1 / float64(d)
	}

	k, _, err := sample.Rejection(inv, ke.cfg.maxRetries, ke.cfg.rng)
	if err != nil {
		return 0, ke.stalled(err)
	}

	return actives[k], nil
}

// stalled maps sampler failures onto builder sentinels.
func (ke *klemmEguiluz) stalled(err error) error {
	if errors.Is(err, sample.ErrExhausted) {
		return fmt.Errorf("%s: %v: %w", MethodKlemmEguiluz, err, ErrGenerationStalled)
	}

	return fmt.Errorf("%s: %v: %w", MethodKlemmEguiluz, err, ErrConstructFailed)
}
