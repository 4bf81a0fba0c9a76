package observe

import "github.com/katalvlaran/netgen/core"

// Frame is a snapshot taken after one step.
type Frame struct {
	Step  Step
	Graph *core.Graph
}

// Recorder captures a deep copy of the graph after every observed step, for
// frame-by-frame rendering once generation has finished.
//
// Memory grows as O(steps · (V+E)); wrap Observe with Filter to keep only
// the frames you intend to draw.
type Recorder struct {
	Frames []Frame
}

// Observe implements Observer.
func (r *Recorder) Observe(g *core.Graph, s Step) {
	r.Frames = append(r.Frames, Frame{Step: s, Graph: g.Clone()})
}

// Steps returns the recorded steps without their snapshots.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Step
	}

	return out
}
