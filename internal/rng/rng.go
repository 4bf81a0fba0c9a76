// Package rng centralizes deterministic random sources for netgen.
//
// Goals:
//   - Determinism: same seed ⇒ identical generated graphs.
//   - No hidden globals: every generator receives its *rand.Rand explicitly.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Use Derive to hand each concurrent
//     generation its own stream.
package rng

import "math/rand/v2"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed uint64 = 1

// streamMix is the PCG increment selector paired with every seed.
const streamMix uint64 = 0xda3e39cb94b95bdb

// FromSeed returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewPCG(seed, seed^streamMix))
}

// mix applies a SplitMix64 finalizer to a parent seed and a stream id so
// that neighbouring stream ids yield uncorrelated child seeds.
//
// Complexity: O(1).
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Derive creates an independent deterministic stream from base and a
// stream identifier. base.Uint64() is consumed once, so deriving the same
// stream id twice still yields different children. A nil base uses
// DefaultSeed as the parent.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Uint64()
	}

	return FromSeed(mix(parent, stream))
}

// Streams derives n independent generators from seed, one per trial.
//
// Complexity: O(n).
func Streams(seed uint64, n int) []*rand.Rand {
	base := FromSeed(seed)
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = Derive(base, uint64(i))
	}

	return out
}
