package netstat

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netgen/core"
)

// ToGonum copies g into a gonum undirected graph with node IDs preserved.
// Complexity: O(V + E)
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		out.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		out.SetEdge(out.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return out
}
