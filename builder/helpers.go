// Package builder provides the mutation tracker shared by every
// Constructor implementation.
//
// Design principles:
//   - Single Responsibility: the tracker mutates the graph and reports the step.
//   - Error Context: core errors are wrapped with the method tag.
//   - Zero cost when no observer is configured.
package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/observe"
)

// tracker funnels all graph mutations of one constructor run so the
// observer sees a gap-free Seq and the current Round.
type tracker struct {
	g      *core.Graph
	obs    observe.Observer
	method string
	seq    int
	round  int
}

// newTracker starts a tracker in the seeding round.
// Complexity: O(1)
func newTracker(method string, g *core.Graph, cfg builderConfig) *tracker {
	return &tracker{g: g, obs: cfg.observer, method: method, round: seedRound}
}

// emit reports one step to the observer, if any. An observer that changes
// the node or edge count fails the generation with ErrObserverMutated.
func (t *tracker) emit(kind observe.StepKind, u, v core.NodeID) error {
	if t.obs == nil {
		return nil
	}
	t.seq++
	nodes, edges := t.g.NodeCount(), t.g.EdgeCount()
	t.obs(t.g, observe.Step{Seq: t.seq, Round: t.round, Kind: kind, U: u, V: v})
	if t.g.NodeCount() != nodes || t.g.EdgeCount() != edges {
		return fmt.Errorf("%s: step %d (%s): %w", t.method, t.seq, kind, ErrObserverMutated)
	}

	return nil
}

// addNode inserts id and reports NodeAdded.
// Complexity: O(1)
func (t *tracker) addNode(id core.NodeID) error {
	if err := t.g.AddNode(id); err != nil {
		return fmt.Errorf("%s: AddNode(%d): %w", t.method, id, err)
	}
	return t.emit(observe.NodeAdded, id, 0)
}

// addNodes inserts 0..n-1 in ascending order.
// Complexity: O(n)
func (t *tracker) addNodes(n int) error {
	for i := 0; i < n; i++ {
		if err := t.addNode(core.NodeID(i)); err != nil {
			return err
		}
	}

	return nil
}

// addEdge inserts {u,v} and reports EdgeAdded. Re-adding an existing edge
// is reported only once, on first insertion.
// Complexity: O(1)
func (t *tracker) addEdge(u, v core.NodeID) error {
	existed := t.obs != nil && t.g.HasEdge(u, v)
	if err := t.g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", t.method, u, v, err)
	}
	if existed {
		return nil
	}

	return t.emit(observe.EdgeAdded, u, v)
}

// removeEdge deletes {u,v} and reports EdgeRemoved.
// Complexity: O(1)
func (t *tracker) removeEdge(u, v core.NodeID) error {
	if err := t.g.RemoveEdge(u, v); err != nil {
		return fmt.Errorf("%s: RemoveEdge(%d,%d): %w", t.method, u, v, err)
	}
	return t.emit(observe.EdgeRemoved, u, v)
}

// degreeWeights returns the degrees of ids as float64 sampling weights.
// Complexity: O(len(ids))
func degreeWeights(g *core.Graph, ids []core.NodeID) ([]float64, error) {
	degs, err := g.Degrees(ids)
	if err != nil {
		return nil, err
	}
	w := make([]float64, len(degs))
	for i, d := range degs {
		w[i] = float64(d)
	}

	return w, nil
}
