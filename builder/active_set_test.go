package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/core"
)

func TestActiveSet(t *testing.T) {
	a := builder.NewActiveSet(2, 0, 1, 0)
	require.Equal(t, 3, a.Len())
	require.Equal(t, []core.NodeID{2, 0, 1}, a.Nodes())
	require.True(t, a.Contains(0))

	require.NoError(t, a.Swap(0, 5))
	require.Equal(t, []core.NodeID{2, 1, 5}, a.Nodes())
	require.Equal(t, []core.NodeID{0, 3, 4}, a.Inactive([]core.NodeID{0, 1, 2, 3, 4, 5}))

	// Failed swaps leave the set untouched.
	require.ErrorIs(t, a.Swap(0, 6), builder.ErrConstructFailed)
	require.ErrorIs(t, a.Swap(2, 1), builder.ErrConstructFailed)
	require.Equal(t, []core.NodeID{2, 1, 5}, a.Nodes())
}
