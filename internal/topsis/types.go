// Package topsis implements the TOPSIS multi-criteria ranking method
// (Technique for Order of Preference by Similarity to Ideal Solution).
// Alternatives are scored by their relative Euclidean distance to the
// ideal best and ideal worst points in weighted-criteria space.
//
// The package is a pure computation layer: no I/O, no retained state,
// safe to call from any number of concurrent callers.
package topsis

// Impact declares the optimization direction of one criterion.
type Impact int

const (
	// Benefit marks a criterion where higher raw values are preferable.
	Benefit Impact = iota
	// Cost marks a criterion where lower raw values are preferable.
	Cost
)

// String returns the canonical lowercase name of the impact direction.
func (im Impact) String() string {
	switch im {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return "invalid"
	}
}

// valid reports whether im is one of the declared directions.
func (im Impact) valid() bool {
	return im == Benefit || im == Cost
}

// Result holds the computed outcome for a single alternative.
// Results are returned positionally aligned with the input matrix rows.
type Result struct {
	// Score is the closeness coefficient in [0, 1]; higher is better.
	Score float64

	// Rank is the 1-based position in the final ordering; 1 is best.
	// Ranks across a result set always form a permutation of 1..N.
	Rank int
}
