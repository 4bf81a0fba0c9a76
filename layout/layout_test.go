package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/layout"
)

func TestCircular(t *testing.T) {
	nodes := []core.NodeID{0, 1, 2, 3}
	pos := layout.Circular(nodes, 2)
	require.Len(t, pos, 4)

	want := map[core.NodeID]r2.Vec{0: {X: 2}, 1: {Y: 2}, 2: {X: -2}, 3: {Y: -2}}
	for id, w := range want {
		require.InDelta(t, w.X, pos[id].X, 1e-12, "node %d", id)
		require.InDelta(t, w.Y, pos[id].Y, 1e-12, "node %d", id)
		require.InDelta(t, 2, r2.Norm(pos[id]), 1e-12)
	}

	b := layout.Bounds(pos)
	require.InDelta(t, -2, b.Min.X, 1e-12)
	require.InDelta(t, 2, b.Max.Y, 1e-12)
	require.Equal(t, r2.Box{}, layout.Bounds(nil))
}
