// Package layout assigns fixed 2-D coordinates to nodes for rendering.
// Generators never consume these positions; a presentation layer computes
// them once and reuses them for every frame.
package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/netgen/core"
)

// Circular places nodes evenly on a circle of the given radius centred at
// the origin, in slice order, starting at angle 0 and turning
// counter-clockwise.
// Complexity: O(len(nodes))
func Circular(nodes []core.NodeID, radius float64) map[core.NodeID]r2.Vec {
	pos := make(map[core.NodeID]r2.Vec, len(nodes))
	n := float64(len(nodes))
	for i, id := range nodes {
		theta := 2 * math.Pi * float64(i) / n
		pos[id] = r2.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}

	return pos
}

// Bounds returns the axis-aligned box enclosing pos. It is the zero Box
// when pos is empty.
func Bounds(pos map[core.NodeID]r2.Vec) r2.Box {
	var (
		b     r2.Box
		first = true
	)
	for _, p := range pos {
		if first {
			b = r2.Box{Min: p, Max: p}
			first = false
			continue
		}
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}

	return b
}
