// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// active_set.go - the fixed-size ordered active node set of Klemm–Eguíluz.
//
// Contract:
//   • Iteration order is insertion order; a swapped-in node goes last.
//   • Swap is atomic: the size is unchanged when it returns, success or not.

package builder

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/netgen/core"
)

// ActiveSet is an insertion-ordered set of nodes. Not safe for concurrent use.
type ActiveSet struct {
	set *linkedhashset.Set
}

// NewActiveSet returns a set holding ids in the given order; duplicates are
// kept once.
// Complexity: O(len(ids))
func NewActiveSet(ids ...core.NodeID) *ActiveSet {
	a := &ActiveSet{set: linkedhashset.New()}
	for _, id := range ids {
		a.set.Add(id)
	}

	return a
}

// Len reports the number of active nodes.
func (a *ActiveSet) Len() int { return a.set.Size() }

// Contains reports whether id is active.
func (a *ActiveSet) Contains(id core.NodeID) bool { return a.set.Contains(id) }

// Nodes returns a snapshot of the active nodes in insertion order.
// Complexity: O(Len())
func (a *ActiveSet) Nodes() []core.NodeID {
	out := make([]core.NodeID, 0, a.set.Size())
	it := a.set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(core.NodeID))
	}

	return out
}

// Swap deactivates out and activates in as one step. out must be active and
// in must not be; otherwise the set is left untouched and an error wrapping
// ErrConstructFailed is returned.
// Complexity: O(Len()) for the ordered removal.
func (a *ActiveSet) Swap(out, in core.NodeID) error {
	if !a.set.Contains(out) {
		return fmt.Errorf("ActiveSet.Swap: %d is not active: %w", out, ErrConstructFailed)
	}
	if a.set.Contains(in) {
		return fmt.Errorf("ActiveSet.Swap: %d is already active: %w", in, ErrConstructFailed)
	}
	a.set.Remove(out)
	a.set.Add(in)

	return nil
}

// Inactive returns the nodes of all that are not active, in the order of all.
// Complexity: O(len(all))
func (a *ActiveSet) Inactive(all []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, 0, len(all))
	for _, id := range all {
		if !a.set.Contains(id) {
			out = append(out, id)
		}
	}

	return out
}
