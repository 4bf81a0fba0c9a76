package builder_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/observe"
)

// ExampleGenerateBarabasiAlbert grows a small scale-free network. The edge
// count does not depend on the seed.
func ExampleGenerateBarabasiAlbert() {
	g, err := builder.GenerateBarabasiAlbert(5, 2, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	// Output: nodes: 5 edges: 7
}

// ExampleGenerateKlemmEguiluz counts the active-set swaps through an observer.
func ExampleGenerateKlemmEguiluz() {
	swaps := 0
	count := observe.Filter(func(*core.Graph, observe.Step) { swaps++ }, observe.NodeDeactivated)

	g, err := builder.GenerateKlemmEguiluz(10, 3, 0.5, nil, builder.WithSeed(3), builder.WithObserver(count))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("edges:", g.EdgeCount(), "swaps:", swaps)
	// Output: edges: 24 swaps: 7
}

// ExampleGenerateWattsStrogatz shows that p = 0 leaves the ring lattice as is
// and needs no random source.
func ExampleGenerateWattsStrogatz() {
	g, _ := builder.GenerateWattsStrogatz(6, 2, 0, nil)
	fmt.Println(g.Edges())
	// Output: [{0 1} {0 5} {1 2} {2 3} {3 4} {4 5}]
}

// ExampleBuildGraph composes options explicitly.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithRewirePolicy(builder.RewireDistinct)},
		builder.WattsStrogatz(20, 4, 0.25),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("edges:", g.EdgeCount())
	// Output: edges: 40
}
