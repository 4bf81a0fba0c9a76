// Package sample provides the random selection primitives shared by the
// network models:
//
//   - WithoutReplacement: k distinct draws where, at every draw, each
//     remaining candidate is chosen with probability weight / Σ remaining
//     weights (sequential renormalisation). Backed by gonum's heap-based
//     sampleuv.Weighted, whose Take zeroes the drawn weight.
//   - Rejection: a single pick by "draw uniformly, accept with probability
//     w/Σw" with an explicit draw budget, mirroring the acceptance loops of
//     the Klemm–Eguíluz model.
//   - Uniform: an index in [0, n), used for Watts–Strogatz rewiring targets.
//
// Randomness is always injected: every sampler fails with ErrNilRand when
// given a nil *rand.Rand rather than reaching for a global source.
package sample
