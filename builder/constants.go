// Package builder defines shared constants used by the network models,
// ensuring consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRingLattice is the canonical name for the RingLattice constructor.
	MethodRingLattice = "RingLattice"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodKlemmEguiluz is the canonical name for the KlemmEguiluz constructor.
	MethodKlemmEguiluz = "KlemmEguiluz"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest complete graph (a single isolated node).
const MinCompleteNodes = 1

// MinAttachments is the smallest number of edges a growing node brings
// (m in Barabási–Albert and Klemm–Eguíluz).
const MinAttachments = 1

// MinLatticeDegree is the smallest ring-lattice degree k (no edges).
const MinLatticeDegree = 0

//-----------------------------------------------------------------------------
// Probability Bounds and Retry Budget
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for p and pMu.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for p and pMu.
const MaxProbability = 1.0

// DefaultMaxRetries is the draw budget of a single rejection-sampling
// selection. Each draw over a pool of size K accepts with probability 1/K,
// so the default only stalls for pools far beyond practical sizes.
const DefaultMaxRetries = 1_000_000

// seedRound is the Step.Round reported for seeding mutations (initial
// complete graph, ring lattice, initial activations).
const seedRound = -1

//-----------------------------------------------------------------------------
// Watts–Strogatz rewire policies
//-----------------------------------------------------------------------------

// RewirePolicy selects how replacement targets are drawn within one node's
// rewiring batch.
type RewirePolicy uint8

const (
	// RewireDistinct draws replacement targets without replacement from the
	// node's non-neighbour snapshot, so two rewired edges never collapse onto
	// one target and the node keeps its degree. When the snapshot runs out,
	// the remaining selected edges stay in place.
	RewireDistinct RewirePolicy = iota

	// RewireIndependent draws every replacement target independently from the
	// snapshot. Two rewired edges may pick the same target and collapse into
	// one edge, lowering that node's degree.
	RewireIndependent
)

// String implements fmt.Stringer.
func (p RewirePolicy) String() string {
	switch p {
	case RewireDistinct:
		return "distinct"
	case RewireIndependent:
		return "independent"
	default:
		return "unknown"
	}
}
