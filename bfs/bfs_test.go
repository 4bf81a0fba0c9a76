package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/bfs"
	"github.com/katalvlaran/netgen/core"
)

// pathGraph builds 0–1–…–(n-1).
func pathGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i)))
		if i > 0 {
			require.NoError(t, g.AddEdge(core.NodeID(i-1), core.NodeID(i)))
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 3)
	require.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	require.NoError(t, g.AddNode(0))
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleNode covers the trivial graph.
func TestBFS_SingleNode(t *testing.T) {
	g := pathGraph(t, 1)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0}, res.Order)
	require.Equal(t, 0, res.Depth[0])
	require.Empty(t, res.Parent)
}

// TestBFS_CycleDepths checks depths and parents on C6.
func TestBFS_CycleDepths(t *testing.T) {
	g := pathGraph(t, 6)
	require.NoError(t, g.AddEdge(5, 0))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 5: 1, 2: 2, 4: 2, 3: 3}, res.Depth)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 5, 4}, path)
}

// TestBFS_Unreachable leaves other components untouched.
func TestBFS_Unreachable(t *testing.T) {
	g := pathGraph(t, 3)
	require.NoError(t, g.AddNode(7))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, 3)
	_, err = res.PathTo(7)
	require.Error(t, err)
}

// TestBFS_MaxDepth limits exploration.
func TestBFS_MaxDepth(t *testing.T) {
	g := pathGraph(t, 10)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2, 3}, res.Order)
}

// TestBFS_Hooks verifies enqueue ordering and abort on visit error.
func TestBFS_Hooks(t *testing.T) {
	g := pathGraph(t, 5)

	var enq []core.NodeID
	_, err := bfs.BFS(g, 2, bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{2, 1, 3, 0, 4}, enq)

	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(pathGraph(t, 4), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
