package topsis

import (
	"fmt"
	"math"
	"sort"
)

// Compute ranks the alternatives in matrix against the given criterion
// weights and impact directions using vector-norm TOPSIS:
//
//  1. Normalize each column by its Euclidean norm.
//  2. Multiply each column by its weight.
//  3. Derive the ideal best and ideal worst point per criterion,
//     honoring the impact direction.
//  4. Measure each alternative's Euclidean distance to both points.
//  5. Score each alternative as distWorst / (distBest + distWorst).
//  6. Assign ranks 1..N by descending score.
//
// The returned slice is positionally aligned with the matrix rows. Equal
// scores receive distinct sequential ranks, broken by original input
// order, so repeated invocations with identical input produce identical
// output.
//
// Malformed input fails with ErrShapeMismatch, ErrInvalidValue, or
// ErrInvalidImpact and no partial result. Degenerate-but-valid input
// (all-zero columns, exactly tied alternatives) never fails; see
// columnNorms and closeness for the substitution policies.
func Compute(matrix [][]float64, weights []float64, impacts []Impact) ([]Result, error) {
	if err := validate(matrix, weights, impacts); err != nil {
		return nil, err
	}

	weighted := normalize(matrix)
	applyWeights(weighted, weights)

	best, worst := idealPoints(weighted, impacts)
	distBest, distWorst := distances(weighted, best, worst)
	scores := closeness(distBest, distWorst)

	results := make([]Result, len(scores))
	for i, s := range scores {
		results[i].Score = s
	}
	assignRanks(results)
	return results, nil
}

// validate defends the engine's preconditions: a non-empty rectangular
// matrix of finite values, and weight/impact vectors matching the column
// count. Callers are expected to have validated already; the engine
// re-checks so a violation can never corrupt a ranking silently.
func validate(matrix [][]float64, weights []float64, impacts []Impact) error {
	if len(matrix) == 0 {
		return fmt.Errorf("%w: matrix has no alternatives", ErrShapeMismatch)
	}
	cols := len(matrix[0])
	if cols == 0 {
		return fmt.Errorf("%w: matrix has no criteria", ErrShapeMismatch)
	}
	for i, row := range matrix {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrShapeMismatch, i, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: matrix[%d][%d] = %v",
					ErrInvalidValue, i, j, v)
			}
		}
	}
	if len(weights) != cols {
		return fmt.Errorf("%w: %d weights for %d criteria",
			ErrShapeMismatch, len(weights), cols)
	}
	for j, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weight[%d] = %v", ErrInvalidValue, j, w)
		}
	}
	if len(impacts) != cols {
		return fmt.Errorf("%w: %d impacts for %d criteria",
			ErrShapeMismatch, len(impacts), cols)
	}
	for j, im := range impacts {
		if !im.valid() {
			return fmt.Errorf("%w: impact[%d] = %d", ErrInvalidImpact, j, int(im))
		}
	}
	return nil
}

// columnNorms computes the Euclidean norm of each criterion column.
// An all-zero column yields norm 1 so the division in normalize is a
// no-op and the column stays all-zero, contributing nothing to any
// distance.
func columnNorms(matrix [][]float64) []float64 {
	norms := make([]float64, len(matrix[0]))
	for _, row := range matrix {
		for j, v := range row {
			norms[j] += v * v
		}
	}
	for j, sq := range norms {
		norms[j] = math.Sqrt(sq)
		if norms[j] == 0 {
			norms[j] = 1
		}
	}
	return norms
}

// normalize returns a fresh matrix with every column divided by its
// Euclidean norm. The input matrix is never mutated.
func normalize(matrix [][]float64) [][]float64 {
	norms := columnNorms(matrix)
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v / norms[j]
		}
	}
	return out
}

// applyWeights scales each column of matrix in place by its weight.
func applyWeights(matrix [][]float64, weights []float64) {
	for _, row := range matrix {
		for j := range row {
			row[j] *= weights[j]
		}
	}
}

// idealPoints derives the per-criterion ideal best and ideal worst values
// from the weighted matrix. For a Benefit criterion the best is the column
// maximum; for a Cost criterion the roles invert.
func idealPoints(weighted [][]float64, impacts []Impact) (best, worst []float64) {
	cols := len(weighted[0])
	best = make([]float64, cols)
	worst = make([]float64, cols)

	for j := 0; j < cols; j++ {
		lo, hi := weighted[0][j], weighted[0][j]
		for _, row := range weighted[1:] {
			if row[j] < lo {
				lo = row[j]
			}
			if row[j] > hi {
				hi = row[j]
			}
		}
		if impacts[j] == Cost {
			best[j], worst[j] = lo, hi
		} else {
			best[j], worst[j] = hi, lo
		}
	}
	return best, worst
}

// distances computes each alternative's Euclidean distance to the ideal
// best and ideal worst points.
func distances(weighted [][]float64, best, worst []float64) (distBest, distWorst []float64) {
	distBest = make([]float64, len(weighted))
	distWorst = make([]float64, len(weighted))
	for i, row := range weighted {
		var sb, sw float64
		for j, v := range row {
			db := v - best[j]
			dw := v - worst[j]
			sb += db * db
			sw += dw * dw
		}
		distBest[i] = math.Sqrt(sb)
		distWorst[i] = math.Sqrt(sw)
	}
	return distBest, distWorst
}

// closeness converts distance pairs into closeness coefficients,
// distWorst / (distBest + distWorst). A zero denominator means the
// alternative coincides with both ideal points (every weighted value
// equal across alternatives); the coefficient is then 0 rather than an
// error.
func closeness(distBest, distWorst []float64) []float64 {
	scores := make([]float64, len(distBest))
	for i := range scores {
		denom := distBest[i] + distWorst[i]
		if denom == 0 {
			denom = 1
		}
		scores[i] = distWorst[i] / denom
	}
	return scores
}

// assignRanks fills in Rank fields by descending score. Ties are broken
// by original input index: the first-seen alternative wins the better
// rank. Every alternative receives a unique rank in 1..N.
func assignRanks(results []Result) {
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].Score > results[order[b]].Score
	})
	for pos, idx := range order {
		results[idx].Rank = pos + 1
	}
}
