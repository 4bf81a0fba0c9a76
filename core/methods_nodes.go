// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns ids in insertion order, never sorted and never map-ordered.

package core

import "fmt"

// AddNode inserts a new isolated node.
//
// Unlike edges, nodes are not idempotent: a generator that re-adds an
// existing id has lost track of its own numbering, so the call fails.
//
// Errors:
//   - ErrDuplicateNode: id already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}

	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[NodeID]struct{})

	return nil
}

// HasNode reports whether id is present.
// Complexity: O(1)
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns a copy of the node ids in insertion order.
// Complexity: O(V)
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, len(g.order))
	copy(ids, g.order)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns |adj[id]|.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//
// Complexity: O(1)
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(nbrs), nil
}

// Degrees returns the degree of every id, aligned with ids. It is the
// weight vector the preferential samplers consume, read under one lock so
// the snapshot is consistent.
//
// Errors:
//   - ErrNodeNotFound: any id absent (no partial result is returned).
//
// Complexity: O(len(ids))
func (g *Graph) Degrees(ids []NodeID) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(ids))
	for i, id := range ids {
		nbrs, ok := g.adjacency[id]
		if !ok {
			return nil, fmt.Errorf("Degrees: node %d: %w", id, ErrNodeNotFound)
		}
		out[i] = len(nbrs)
	}

	return out, nil
}
