package observe_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/observe"
)

func pair(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0))
	require.NoError(t, g.AddNode(1))
	require.NoError(t, g.AddEdge(0, 1))

	return g
}

func TestStepKind_String(t *testing.T) {
	require.Equal(t, "edge_added", observe.EdgeAdded.String())
	require.Equal(t, "node_deactivated", observe.NodeDeactivated.String())
	require.Equal(t, "StepKind(42)", observe.StepKind(42).String())
}

func TestMultiAndFilter(t *testing.T) {
	g := pair(t)
	var all, edges []observe.Step
	o := observe.Multi(
		func(_ *core.Graph, s observe.Step) { all = append(all, s) },
		nil,
		observe.Filter(func(_ *core.Graph, s observe.Step) { edges = append(edges, s) }, observe.EdgeAdded),
	)

	o(g, observe.Step{Seq: 1, Kind: observe.NodeAdded, U: 1})
	o(g, observe.Step{Seq: 2, Kind: observe.EdgeAdded, U: 0, V: 1})

	require.Len(t, all, 2)
	require.Equal(t, []observe.Step{{Seq: 2, Kind: observe.EdgeAdded, U: 0, V: 1}}, edges)
}

func TestRecorder_SnapshotsAreIndependent(t *testing.T) {
	g := pair(t)
	var r observe.Recorder

	r.Observe(g, observe.Step{Seq: 1, Kind: observe.EdgeAdded, U: 0, V: 1})
	require.NoError(t, g.RemoveEdge(0, 1))
	r.Observe(g, observe.Step{Seq: 2, Kind: observe.EdgeRemoved, U: 0, V: 1})

	require.Len(t, r.Frames, 2)
	require.Equal(t, 1, r.Frames[0].Graph.EdgeCount())
	require.Equal(t, 0, r.Frames[1].Graph.EdgeCount())
	require.Equal(t, []int{1, 2}, []int{r.Steps()[0].Seq, r.Steps()[1].Seq})
}

func TestLogger(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	o := observe.Logger(zap.New(zc))
	g := pair(t)

	o(g, observe.Step{Seq: 3, Round: 1, Kind: observe.EdgeAdded, U: 1, V: 0})
	o(g, observe.Step{Seq: 4, Round: 1, Kind: observe.NodeDeactivated, U: 0})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "edge_added", entries[0].Message)
	require.Equal(t, int64(0), entries[0].ContextMap()["v"])
	require.Equal(t, int64(1), entries[0].ContextMap()["edges"])
	_, hasV := entries[1].ContextMap()["v"]
	require.False(t, hasV)
}

func TestLogger_DisabledLevelIsSilent(t *testing.T) {
	zc, logs := observer.New(zapcore.InfoLevel)
	observe.Logger(zap.New(zc))(pair(t), observe.Step{Kind: observe.NodeAdded})
	require.Zero(t, logs.Len())
}
