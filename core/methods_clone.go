// File: methods_clone.go
// Role: Snapshots and invariant checks.
//
// Clone is what frame-capturing observers use; generators never clone for
// their own logic.

package core

import "fmt"

// Clone returns a deep copy: node order, adjacency and edge count.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		order:     make([]NodeID, len(g.order)),
		index:     make(map[NodeID]int, len(g.index)),
		adjacency: make(map[NodeID]map[NodeID]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	copy(clone.order, g.order)
	for id, pos := range g.index {
		clone.index[id] = pos
	}
	for id, nbrs := range g.adjacency {
		cp := make(map[NodeID]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// Validate checks the simple-graph invariants: symmetric adjacency, no
// self-loops, no dangling endpoints, and a consistent edge counter.
//
// Errors:
//   - ErrAsymmetric, wrapped with the first offending pair.
//
// Complexity: O(V + E)
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) != len(g.adjacency) || len(g.order) != len(g.index) {
		return fmt.Errorf("Validate: %d ordered nodes, %d adjacency rows: %w",
			len(g.order), len(g.adjacency), ErrAsymmetric)
	}

	half := 0
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u == v {
				return fmt.Errorf("Validate: self-loop at %d: %w", u, ErrAsymmetric)
			}
			back, ok := g.adjacency[v]
			if !ok {
				return fmt.Errorf("Validate: dangling endpoint %d-%d: %w", u, v, ErrAsymmetric)
			}
			if _, ok = back[u]; !ok {
				return fmt.Errorf("Validate: %d-%d not mirrored: %w", u, v, ErrAsymmetric)
			}
			half++
		}
	}
	if half != 2*g.edgeCount {
		return fmt.Errorf("Validate: counter %d, adjacency holds %d: %w",
			g.edgeCount, half/2, ErrAsymmetric)
	}

	return nil
}
