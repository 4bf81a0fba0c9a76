package bfs_test

import (
	"testing"

	"github.com/katalvlaran/netgen/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := pathGraph(b, N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
