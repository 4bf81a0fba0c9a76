// File: methods_edges.go
// Role: Edge lifecycle & enumeration.
//
// Policy:
//   - AddEdge is idempotent; RemoveEdge of an absent edge is a no-op.
//   - Self-loops are rejected; parallel edges cannot be represented.

package core

import "fmt"

// AddEdge connects u and v. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrSelfLoop: u == v.
//   - ErrNodeNotFound: either endpoint absent.
//
// Complexity: O(1)
func (g *Graph) AddEdge(u, v NodeID) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nu, okU := g.adjacency[u]
	nv, okV := g.adjacency[v]
	if !okU || !okV {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if _, exists := nu[v]; exists {
		return nil
	}

	nu[v] = struct{}{}
	nv[u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge disconnects u and v; absent edges are ignored.
//
// Errors:
//   - ErrNodeNotFound: either endpoint absent.
//
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu, okU := g.adjacency[u]
	nv, okV := g.adjacency[v]
	if !okU || !okV {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if _, exists := nu[v]; !exists {
		return nil
	}

	delete(nu, v)
	delete(nv, u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent. Unknown nodes yield false.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nu, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nu[v]

	return ok
}

// Edges returns every edge exactly once, ordered by the insertion position
// of U and then of V, with U inserted before V.
//
// Complexity: O(V + E·log d)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		pu := g.index[u]
		for _, v := range g.sortedNeighbors(u) {
			if g.index[v] > pu {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}

	return edges
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
