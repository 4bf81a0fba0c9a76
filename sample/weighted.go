package sample

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/netgen/core"
)

// WithoutReplacement draws k distinct candidates. At each of the k draws the
// probability of a remaining candidate is its weight divided by the sum of
// the remaining weights; the result is in draw order.
//
// Errors:
//   - ErrNilRand: rnd is nil.
//   - ErrInvalidWeight: len(weights) != len(candidates), k < 0,
//     k > len(candidates), a weight < 0 / NaN / ±Inf, all weights zero,
//     or fewer than k strictly positive weights.
//
// Complexity: O(n + k·log n) where n = len(candidates).
func WithoutReplacement(candidates []core.NodeID, weights []float64, k int, rnd *rand.Rand) ([]core.NodeID, error) {
	if rnd == nil {
		return nil, fmt.Errorf("WithoutReplacement: %w", ErrNilRand)
	}
	if len(weights) != len(candidates) {
		return nil, fmt.Errorf("WithoutReplacement: %d weights for %d candidates: %w",
			len(weights), len(candidates), ErrInvalidWeight)
	}
	if k < 0 || k > len(candidates) {
		return nil, fmt.Errorf("WithoutReplacement: k=%d outside [0,%d]: %w",
			k, len(candidates), ErrInvalidWeight)
	}
	positive, err := checkWeights(weights)
	if err != nil {
		return nil, fmt.Errorf("WithoutReplacement: %w", err)
	}
	if positive < k {
		return nil, fmt.Errorf("WithoutReplacement: k=%d but only %d positive weights: %w",
			k, positive, ErrInvalidWeight)
	}

	ws := sampleuv.NewWeighted(weights, rnd)
	out := make([]core.NodeID, 0, k)
	for len(out) < k {
		idx, ok := ws.Take()
		if !ok {
			// Unreachable after the positive-count check.
			return nil, fmt.Errorf("WithoutReplacement: distribution depleted after %d draws: %w",
				len(out), ErrInvalidWeight)
		}
		out = append(out, candidates[idx])
	}

	return out, nil
}

// Rejection returns an index into weights chosen by repeatedly drawing j
// uniformly and accepting it when weights[j]/Σweights exceeds a fresh
// uniform variate in [0,1). Each draw accepts with overall probability
// 1/len(weights), so the expected number of draws is len(weights).
//
// maxDraws bounds the loop; the second result reports how many draws were
// spent.
//
// Errors:
//   - ErrNilRand: rnd is nil.
//   - ErrInvalidWeight: empty, invalid or all-zero weights, or maxDraws < 1.
//   - ErrExhausted: no acceptance within maxDraws draws.
//
// Complexity: O(n) to sum plus O(1) per draw.
func Rejection(weights []float64, maxDraws int, rnd *rand.Rand) (int, int, error) {
	if rnd == nil {
		return -1, 0, fmt.Errorf("Rejection: %w", ErrNilRand)
	}
	if len(weights) == 0 || maxDraws < 1 {
		return -1, 0, fmt.Errorf("Rejection: %d weights, budget %d: %w",
			len(weights), maxDraws, ErrInvalidWeight)
	}
	if _, err := checkWeights(weights); err != nil {
		return -1, 0, fmt.Errorf("Rejection: %w", err)
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	for draw := 1; draw <= maxDraws; draw++ {
		j := rnd.IntN(len(weights))
		if weights[j]/total > rnd.Float64() {
			return j, draw, nil
		}
	}

	return -1, maxDraws, fmt.Errorf("Rejection: no acceptance in %d draws: %w", maxDraws, ErrExhausted)
}

// Uniform returns an index in [0, n) drawn uniformly.
//
// Errors: ErrNilRand when rnd is nil, ErrInvalidWeight when n < 1.
// Complexity: O(1).
func Uniform(n int, rnd *rand.Rand) (int, error) {
	if rnd == nil {
		return -1, fmt.Errorf("Uniform: %w", ErrNilRand)
	}
	if n < 1 {
		return -1, fmt.Errorf("Uniform: n=%d: %w", n, ErrInvalidWeight)
	}

	return rnd.IntN(n), nil
}

// checkWeights rejects negative or non-finite weights and all-zero vectors,
// returning the number of strictly positive entries.
func checkWeights(weights []float64) (int, error) {
	positive := 0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("weight[%d]=%v: %w", i, w, ErrInvalidWeight)
		}
		if w > 0 {
			positive++
		}
	}
	if positive == 0 {
		return 0, fmt.Errorf("all %d weights are zero: %w", len(weights), ErrInvalidWeight)
	}

	return positive, nil
}
