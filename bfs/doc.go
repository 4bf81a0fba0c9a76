// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Hooks: OnEnqueue (before a node is queued) and OnVisit (may abort).
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Network statistics: average shortest-path length, eccentricity and
//     reachability of generated networks (see package netstat).
//
// Determinism
//
//	core.Graph.Neighbors returns nodes in insertion order, and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (neighbour lists are ordered per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx), bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, ctx.Err() or a hook error
//	}
//	path, _ := res.PathTo(7)
package bfs
