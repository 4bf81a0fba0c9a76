// SPDX-License-Identifier: MIT
// Package builder_test contains shared fixtures for builder tests.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/observe"
)

// Seeds and sizes used across builder tests.
const (
	SeedA uint64 = 42
	SeedB uint64 = 7

	NSmall  = 5
	NMedium = 60
	NLarge  = 200
)

// choose2 returns C(n, 2).
func choose2(n int) int { return n * (n - 1) / 2 }

// growthEdges is |E| after growing n nodes with m edges each from K_m.
func growthEdges(n, m int) int { return choose2(m) + m*(n-m) }

// requireSimple asserts g is a valid simple graph of n nodes and e edges.
func requireSimple(t *testing.T, g *core.Graph, n, e int) {
	t.Helper()
	require.NotNil(t, g)
	require.NoError(t, g.Validate())
	require.Equal(t, n, g.NodeCount())
	require.Equal(t, e, g.EdgeCount())
}

// degreeOf fails the test on an unknown node.
func degreeOf(t *testing.T, g *core.Graph, id core.NodeID) int {
	t.Helper()
	d, err := g.Degree(id)
	require.NoError(t, err)

	return d
}

// stepsOf collects the steps of one generation.
func stepsOf() (*[]observe.Step, observe.Observer) {
	var steps []observe.Step
	return &steps, func(_ *core.Graph, s observe.Step) {
		steps = append(steps, s)
	}
}
