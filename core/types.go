// Package core defines NodeID, Edge, Graph and the sentinel errors raised
// when a graph invariant would be violated.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates AddNode was called with an id already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a node that is absent.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates the adjacency invariants no longer hold.
	ErrAsymmetric = errors.New("core: adjacency invariant violated")
)

// NodeID is an opaque integer node identifier, unique within a Graph and
// assigned by generators in creation order.
type NodeID int

// Edge is an unordered node pair. Edges() always reports U before V in
// node insertion order.
type Edge struct {
	U NodeID
	V NodeID
}

// Graph is an undirected simple graph.
//
// order keeps node insertion order; index maps a node to its position in
// order so that neighbor lists can be returned deterministically.
type Graph struct {
	mu sync.RWMutex

	order     []NodeID
	index     map[NodeID]int
	adjacency map[NodeID]map[NodeID]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index:     make(map[NodeID]int),
		adjacency: make(map[NodeID]map[NodeID]struct{}),
	}
}
