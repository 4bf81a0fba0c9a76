// Package core provides the in-memory undirected simple graph shared by every
// network model in netgen.
//
// The Graph G = (V,E) keeps exactly the structure the generators need:
//
//   - Node set with insertion order preserved (reproducible iteration).
//   - Symmetric adjacency: v ∈ adj[u] ⇔ u ∈ adj[v].
//   - No self-loops and no parallel edges (simple graph).
//   - A single sync.RWMutex so a presentation layer may read while a
//     generator mutates from another goroutine.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id NodeID) error             // O(1), ErrDuplicateNode on re-add
//	HasNode(id NodeID) bool              // O(1)
//	Nodes() []NodeID                     // O(V), insertion order
//	NodeCount() int                      // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID) error           // O(1), idempotent
//	RemoveEdge(u, v NodeID) error        // O(1), no-op when absent
//	HasEdge(u, v NodeID) bool            // O(1)
//	Edges() []Edge                       // O(V + E·log d), ordered pairs
//	EdgeCount() int                      // O(1)
//
//	// Query
//	Neighbors(u NodeID) ([]NodeID, error)    // O(d·log d), insertion order
//	NonNeighbors(u NodeID) ([]NodeID, error) // O(V), nodes − {u} − N(u)
//	Degree(u NodeID) (int, error)            // O(1)
//	Degrees(ids []NodeID) ([]int, error)     // O(len(ids))
//
//	// Snapshot & checks
//	Clone() *Graph                       // O(V + E) deep copy
//	Validate() error                     // O(V + E) invariant check
//
// Errors:
//
//	ErrDuplicateNode – AddNode with an id already present
//	ErrNodeNotFound  – an endpoint or query node is absent
//	ErrSelfLoop      – AddEdge(u, u)
//	ErrAsymmetric    – Validate found a broken adjacency invariant
//
// The graph never shrinks its node set; the generators only add nodes and
// add or remove edges.
package core
