// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for netgen/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/core"
)

// Common node ids used across core tests.
const (
	NodeA core.NodeID = iota
	NodeB
	NodeC
	NodeD
	NodeMissing core.NodeID = 99
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NReaders = 8
	NWrites  = 200
)

// newGraphWithNodes returns a graph holding ids in the given order.
func newGraphWithNodes(t testing.TB, ids ...core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id), "AddNode(%d)", id)
	}

	return g
}

// mustEdges adds every pair in pairs to g.
func mustEdges(t testing.TB, g *core.Graph, pairs ...[2]core.NodeID) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%d,%d)", p[0], p[1])
	}
}

// square builds the 4-cycle A-B-C-D-A.
func square(t testing.TB) *core.Graph {
	t.Helper()
	g := newGraphWithNodes(t, NodeA, NodeB, NodeC, NodeD)
	mustEdges(t, g, [2]core.NodeID{NodeA, NodeB}, [2]core.NodeID{NodeB, NodeC},
		[2]core.NodeID{NodeC, NodeD}, [2]core.NodeID{NodeD, NodeA})

	return g
}
