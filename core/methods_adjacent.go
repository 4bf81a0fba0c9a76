// File: methods_adjacent.go
// Role: Neighbourhood queries used by the generators.
//
// Determinism:
//   - Neighbor lists are sorted by node insertion position, so draws indexed
//     into them are reproducible for a fixed random stream.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the neighbours of id in node insertion order.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//
// Complexity: O(d·log d)
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.adjacency[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	return g.sortedNeighbors(id), nil
}

// NonNeighbors returns nodes − {id} − Neighbors(id) in insertion order,
// i.e. every node id could be joined to without creating a loop or a
// parallel edge.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//
// Complexity: O(V)
func (g *Graph) NonNeighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NonNeighbors(%d): %w", id, ErrNodeNotFound)
	}

	out := make([]NodeID, 0, len(g.order)-len(nbrs)-1)
	for _, v := range g.order {
		if v == id {
			continue
		}
		if _, adjacent := nbrs[v]; adjacent {
			continue
		}
		out = append(out, v)
	}

	return out, nil
}

// sortedNeighbors lists adj[id] by insertion position. Caller holds g.mu.
func (g *Graph) sortedNeighbors(id NodeID) []NodeID {
	nbrs := g.adjacency[id]
	out := make([]NodeID, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return g.index[out[i]] < g.index[out[j]] })

	return out
}
