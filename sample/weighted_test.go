package sample_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/internal/rng"
	"github.com/katalvlaran/netgen/sample"
)

const (
	trials    = 60000
	tolerance = 0.01
)

// SamplerSuite exercises WithoutReplacement and Rejection.
type SamplerSuite struct {
	suite.Suite
	rnd *rand.Rand
}

func (s *SamplerSuite) SetupTest() {
	s.rnd = rng.FromSeed(2021)
}

func (s *SamplerSuite) TestRejectsDegenerateInput() {
	ids := []core.NodeID{0, 1, 2}
	cases := []struct {
		name    string
		ids     []core.NodeID
		weights []float64
		k       int
	}{
		{"length mismatch", ids, []float64{1, 1}, 1},
		{"all zero", ids, []float64{0, 0, 0}, 1},
		{"negative", ids, []float64{1, -1, 1}, 1},
		{"nan", ids, []float64{1, math.NaN(), 1}, 1},
		{"inf", ids, []float64{1, math.Inf(1), 1}, 1},
		{"k too large", ids, []float64{1, 1, 1}, 4},
		{"k negative", ids, []float64{1, 1, 1}, -1},
		{"k beyond positive weights", ids, []float64{1, 0, 1}, 3},
	}
	for _, tc := range cases {
		_, err := sample.WithoutReplacement(tc.ids, tc.weights, tc.k, s.rnd)
		require.ErrorIs(s.T(), err, sample.ErrInvalidWeight, tc.name)
	}
}

func (s *SamplerSuite) TestDistinctAndNeverZeroWeight() {
	ids := []core.NodeID{10, 11, 12, 13, 14}
	weights := []float64{3, 0, 1, 5, 2}
	for i := 0; i < 500; i++ {
		got, err := sample.WithoutReplacement(ids, weights, 4, s.rnd)
		require.NoError(s.T(), err)
		require.Len(s.T(), got, 4)
		seen := map[core.NodeID]bool{}
		for _, id := range got {
			require.NotEqual(s.T(), core.NodeID(11), id, "zero weight must never be drawn")
			require.False(s.T(), seen[id], "duplicate draw %d", id)
			seen[id] = true
		}
	}
}

func (s *SamplerSuite) TestZeroDrawsIsEmpty() {
	got, err := sample.WithoutReplacement([]core.NodeID{1}, []float64{1}, 0, s.rnd)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
}

// TestSequentialRenormalisation checks the joint law for weights {1,1,2}, k=2:
// P(first=2) = 1/2 and P({0,1}) = 2·(1/4)(1/3) = 1/6.
func (s *SamplerSuite) TestSequentialRenormalisation() {
	ids := []core.NodeID{0, 1, 2}
	weights := []float64{1, 1, 2}
	var firstTwo, pairLow int
	for i := 0; i < trials; i++ {
		got, err := sample.WithoutReplacement(ids, weights, 2, s.rnd)
		require.NoError(s.T(), err)
		if got[0] == 2 {
			firstTwo++
		}
		if got[0] != 2 && got[1] != 2 {
			pairLow++
		}
	}
	require.InDelta(s.T(), 0.5, float64(firstTwo)/trials, tolerance)
	require.InDelta(s.T(), 1.0/6.0, float64(pairLow)/trials, tolerance)
}

func (s *SamplerSuite) TestDeterministicForSeed() {
	ids := []core.NodeID{0, 1, 2, 3, 4, 5}
	weights := []float64{1, 2, 3, 4, 5, 6}
	a, err := sample.WithoutReplacement(ids, weights, 3, rng.FromSeed(5))
	require.NoError(s.T(), err)
	b, err := sample.WithoutReplacement(ids, weights, 3, rng.FromSeed(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

func (s *SamplerSuite) TestRejectionProportional() {
	weights := []float64{1, 3}
	hits := 0
	for i := 0; i < trials; i++ {
		j, draws, err := sample.Rejection(weights, 1000, s.rnd)
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), draws, 1)
		if j == 1 {
			hits++
		}
	}
	require.InDelta(s.T(), 0.75, float64(hits)/trials, tolerance)
}

func (s *SamplerSuite) TestRejectionSkipsZeroWeight() {
	for i := 0; i < 200; i++ {
		j, _, err := sample.Rejection([]float64{0, 2, 0}, 1000, s.rnd)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, j)
	}
}

func (s *SamplerSuite) TestRejectionBudget() {
	_, _, err := sample.Rejection([]float64{1, 1}, 0, s.rnd)
	require.ErrorIs(s.T(), err, sample.ErrInvalidWeight)

	_, _, err = sample.Rejection([]float64{0, 0}, 10, s.rnd)
	require.ErrorIs(s.T(), err, sample.ErrInvalidWeight)

	// 1000 candidates with one positive weight: a budget of one draw almost
	// always runs out.
	weights := make([]float64, 1000)
	weights[999] = 1
	exhausted := 0
	for i := 0; i < 50; i++ {
		_, draws, err := sample.Rejection(weights, 1, s.rnd)
		if err != nil {
			require.ErrorIs(s.T(), err, sample.ErrExhausted)
			require.Equal(s.T(), 1, draws)
			exhausted++
		}
	}
	require.Greater(s.T(), exhausted, 40)
}

func (s *SamplerSuite) TestUniform() {
	_, err := sample.Uniform(0, s.rnd)
	require.ErrorIs(s.T(), err, sample.ErrInvalidWeight)

	counts := make([]int, 4)
	for i := 0; i < trials; i++ {
		idx, err := sample.Uniform(len(counts), s.rnd)
		require.NoError(s.T(), err)
		counts[idx]++
	}
	for _, c := range counts {
		require.InDelta(s.T(), 0.25, float64(c)/trials, tolerance)
	}
}

func (s *SamplerSuite) TestNilSourceRejected() {
	_, err := sample.WithoutReplacement([]core.NodeID{1, 2}, []float64{1, 1}, 1, nil)
	require.ErrorIs(s.T(), err, sample.ErrNilRand)

	j, draws, err := sample.Rejection([]float64{1, 1}, 10, nil)
	require.ErrorIs(s.T(), err, sample.ErrNilRand)
	require.Equal(s.T(), -1, j)
	require.Zero(s.T(), draws)

	_, err = sample.Uniform(3, nil)
	require.ErrorIs(s.T(), err, sample.ErrNilRand)
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerSuite))
}
