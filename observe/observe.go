// Package observe defines the step-observer boundary between the network
// generators and any presentation collaborator.
//
// A generator invokes its Observer synchronously after every discrete
// mutation. Observers must treat the graph as read-only; attaching or
// detaching an observer never changes what a generator produces.
package observe

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
)

// StepKind enumerates generator mutations.
type StepKind uint8

const (
	// NodeAdded reports AddNode(U).
	NodeAdded StepKind = iota + 1
	// EdgeAdded reports AddEdge(U, V).
	EdgeAdded
	// EdgeRemoved reports RemoveEdge(U, V).
	EdgeRemoved
	// NodeActivated reports U joining the Klemm–Eguíluz active set.
	NodeActivated
	// NodeDeactivated reports U leaving the Klemm–Eguíluz active set.
	NodeDeactivated
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case NodeAdded:
		return "node_added"
	case EdgeAdded:
		return "edge_added"
	case EdgeRemoved:
		return "edge_removed"
	case NodeActivated:
		return "node_activated"
	case NodeDeactivated:
		return "node_deactivated"
	default:
		return fmt.Sprintf("StepKind(%d)", uint8(k))
	}
}

// Step describes one mutation.
type Step struct {
	// Seq is the 1-based position of this mutation within one generation.
	Seq int
	// Round is the generator iteration: the node being grown in BA/KE, or
	// the node whose edges are being rewired in WS. Seeding mutations use -1.
	Round int
	// Kind is the mutation type.
	Kind StepKind
	// U is the node, or the first endpoint for edge events.
	U core.NodeID
	// V is the second endpoint for edge events and zero otherwise.
	V core.NodeID
}

// Observer receives the graph right after a mutation. The graph is the one
// under construction: observers read it but must not change it. Adding or
// removing nodes or edges aborts the generation with
// builder.ErrObserverMutated; to keep a copy, use Graph.Clone or a Recorder.
type Observer func(g *core.Graph, s Step)

// Multi fans one step out to several observers, in order. Nil entries are
// skipped.
func Multi(obs ...Observer) Observer {
	live := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			live = append(live, o)
		}
	}

	return func(g *core.Graph, s Step) {
		for _, o := range live {
			o(g, s)
		}
	}
}

// Filter forwards only steps whose kind is listed.
func Filter(o Observer, kinds ...StepKind) Observer {
	want := make(map[StepKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	return func(g *core.Graph, s Step) {
		if want[s.Kind] {
			o(g, s)
		}
	}
}
