package netstat

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netgen/bfs"
	"github.com/katalvlaran/netgen/core"
)

// ErrEmptyGraph is returned for a graph without nodes.
var ErrEmptyGraph = errors.New("netstat: graph has no nodes")

// Stats is a one-shot summary of a graph.
type Stats struct {
	Nodes int
	Edges int

	MeanDegree     float64
	DegreeVariance float64 // population variance
	MaxDegree      int

	// Clustering is the mean local clustering coefficient; nodes with
	// degree below two contribute zero.
	Clustering float64

	// AvgPathLength is the mean shortest-path length over ordered pairs of
	// distinct nodes that reach each other; zero when no such pair exists.
	AvgPathLength float64
	// Diameter is the longest finite shortest path.
	Diameter int

	Components       int
	LargestComponent int
}

// Summarize computes Stats for g. ctx bounds the all-pairs BFS.
// Complexity: O(V·(V+E)) time, O(V) space.
func Summarize(ctx context.Context, g *core.Graph) (Stats, error) {
	if g == nil || g.NodeCount() == 0 {
		return Stats{}, ErrEmptyGraph
	}
	nodes := g.Nodes()
	degs, err := g.Degrees(nodes)
	if err != nil {
		return Stats{}, fmt.Errorf("netstat: %w", err)
	}

	s := Stats{Nodes: len(nodes), Edges: g.EdgeCount()}

	xs := make([]float64, len(degs))
	for i, d := range degs {
		xs[i] = float64(d)
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.MeanDegree, s.DegreeVariance = stat.PopMeanVariance(xs, nil)

	if s.Clustering, err = AverageClustering(g); err != nil {
		return Stats{}, err
	}
	if s.AvgPathLength, s.Diameter, err = PathLengths(ctx, g); err != nil {
		return Stats{}, err
	}

	comps := topo.ConnectedComponents(ToGonum(g))
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
	}

	return s, nil
}

// LocalClustering is the fraction of neighbour pairs of id that are linked.
// Complexity: O(d²) for degree d.
func LocalClustering(g *core.Graph, id core.NodeID) (float64, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, fmt.Errorf("netstat: %w", err)
	}
	d := len(nbrs)
	if d < 2 {
		return 0, nil
	}
	links := 0
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}

	return float64(2*links) / float64(d*(d-1)), nil
}

// AverageClustering is the mean of LocalClustering over all nodes.
func AverageClustering(g *core.Graph) (float64, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0, ErrEmptyGraph
	}
	cs := make([]float64, len(nodes))
	for i, id := range nodes {
		c, err := LocalClustering(g, id)
		if err != nil {
			return 0, err
		}
		cs[i] = c
	}

	return stat.Mean(cs, nil), nil
}

// PathLengths runs BFS from every node and returns the mean finite
// shortest-path length and the diameter.
func PathLengths(ctx context.Context, g *core.Graph) (float64, int, error) {
	var (
		sum      int
		pairs    int
		diameter int
	)
	for _, src := range g.Nodes() {
		res, err := bfs.BFS(g, src, bfs.WithContext(ctx))
		if err != nil {
			return 0, 0, fmt.Errorf("netstat: %w", err)
		}
		for _, d := range res.Depth {
			if d == 0 {
				continue
			}
			sum += d
			pairs++
			if d > diameter {
				diameter = d
			}
		}
	}
	if pairs == 0 {
		return 0, 0, nil
	}

	return float64(sum) / float64(pairs), diameter, nil
}

// DegreeHistogram returns h where h[d] is the number of nodes of degree d.
func DegreeHistogram(g *core.Graph) []int {
	nodes := g.Nodes()
	degs, _ := g.Degrees(nodes)
	top := 0
	for _, d := range degs {
		if d > top {
			top = d
		}
	}
	h := make([]int, top+1)
	for _, d := range degs {
		h[d]++
	}

	return h
}
