package vanity

import (
	"SolTools/internal/address"
)

// Estimate calculates the expected number of random draws before a match.
// Each pattern character narrows the space by the alphabet size; requiring
// prefix and suffix at once doubles the figure, because the two sides are
// counted as two independent pattern checks. That doubling overstates the
// true cost (one combined check would already be A^(lp+ls)); it is kept
// for continuity with the progress display — EstimateExact has the
// corrected figure.
//
// Pure, no side effects; cheap enough to recompute per keystroke.
func Estimate(p Pattern) float64 {
	d := exact(p)
	if p.BothSides() {
		d *= 2
	}
	return d
}

// EstimateExact is the combined-check expectation A^(prefixLen+suffixLen).
func EstimateExact(p Pattern) float64 {
	return exact(p)
}

func exact(p Pattern) float64 {
	d := 1.0
	for i := 0; i < p.Len(); i++ {
		d *= float64(address.AlphabetSize)
	}
	return d
}
