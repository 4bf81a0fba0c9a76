package sample

import "errors"

// ErrInvalidWeight indicates a degenerate weight vector or an impossible k:
// mismatched lengths, a negative, NaN or infinite weight, an all-zero
// vector, or k larger than the number of drawable candidates.
var ErrInvalidWeight = errors.New("sample: invalid weights")

// ErrExhausted indicates Rejection spent its whole draw budget without
// accepting a candidate.
var ErrExhausted = errors.New("sample: draw budget exhausted")

// ErrNilRand indicates a sampler was called without a random source.
// Sampling is only ever driven by an injected, seedable *rand.Rand.
var ErrNilRand = errors.New("sample: nil random source")
