package layout_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/layout"
	"github.com/katalvlaran/netgen/observe"
)

// ExampleCircular records every step of a small ring, places the nodes of the
// final frame once and reuses the same positions to draw every frame.
func ExampleCircular() {
	rec := &observe.Recorder{}
	if _, err := builder.GenerateWattsStrogatz(4, 2, 0, nil, builder.WithObserver(rec.Observe)); err != nil {
		fmt.Println(err)
		return
	}

	last := rec.Frames[len(rec.Frames)-1].Graph
	pos := layout.Circular(last.Nodes(), 1)

	drawn := 0
	for _, f := range rec.Frames {
		for _, e := range f.Graph.Edges() {
			if l := r2.Norm(r2.Sub(pos[e.U], pos[e.V])); fmt.Sprintf("%.2f", l) != "1.41" {
				fmt.Println("unexpected edge length", l)
			}
			drawn++
		}
	}
	b := layout.Bounds(pos)

	fmt.Println("frames:", len(rec.Frames), "edges drawn:", drawn)
	fmt.Printf("bounds: (%.1f, %.1f) to (%.1f, %.1f)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	// Output:
	// frames: 8 edges drawn: 10
	// bounds: (-1.0, -1.0) to (1.0, 1.0)
}
