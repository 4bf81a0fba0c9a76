// Package netstat summarises generated networks: degree moments, local
// clustering, shortest-path lengths and connected components.
//
// The statistics are the ones used to tell the three growth models apart:
// heavy-tailed degrees for Barabási–Albert and Klemm–Eguíluz, high clustering
// with short paths for small-world Watts–Strogatz graphs.
//
// Degree moments come from gonum/stat; components are computed by
// gonum/graph/topo over a gonum view of the graph (see ToGonum); path
// lengths by repeated breadth-first search (package bfs).
package netstat
