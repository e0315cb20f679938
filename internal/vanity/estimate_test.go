package vanity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateStrictlyIncreasingInLength(t *testing.T) {
	prev := 0.0
	for _, prefix := range []string{"A", "AB", "ABC", "ABCD"} {
		d := Estimate(Pattern{Prefix: prefix})
		require.Greater(t, d, prev, "prefix %q", prefix)
		prev = d
	}
}

func TestEstimateSingleSide(t *testing.T) {
	require.Equal(t, 58.0, Estimate(Pattern{Prefix: "A"}))
	require.Equal(t, 58.0*58.0, Estimate(Pattern{Suffix: "99"}))
	require.NotZero(t, Estimate(Pattern{Prefix: "z"}))
}

func TestEstimateBothSidesDoubles(t *testing.T) {
	single := Estimate(Pattern{Prefix: "AB"})
	both := Estimate(Pattern{Prefix: "A", Suffix: "B"})

	// equal total length, but requiring both sides doubles the figure
	require.Equal(t, 2*single, both)
	require.Greater(t, both, single)
}

func TestEstimateExact(t *testing.T) {
	p := Pattern{Prefix: "A", Suffix: "B"}
	require.Equal(t, 58.0*58.0, EstimateExact(p))
	require.Equal(t, 2*EstimateExact(p), Estimate(p))

	// single-sided patterns agree
	q := Pattern{Prefix: "ABC"}
	require.Equal(t, EstimateExact(q), Estimate(q))
}
