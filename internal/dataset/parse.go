package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/papapumpkin/verdict/internal/topsis"
)

// ParseWeights parses a comma-separated list of non-negative numbers,
// e.g. "1,2,0.5". Blank segments, negative values, and non-finite values
// are rejected.
func ParseWeights(s string) ([]float64, error) {
	tokens, err := splitVector(s)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}

	weights := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadWeight, tok, i+1)
		}
		weights[i] = v
	}
	return weights, nil
}

// ParseImpacts parses a comma-separated list of impact directions.
// Accepted tokens, case-insensitive: "+" or "benefit" (higher is
// better), "-" or "cost" (lower is better).
func ParseImpacts(s string) ([]topsis.Impact, error) {
	tokens, err := splitVector(s)
	if err != nil {
		return nil, fmt.Errorf("impacts: %w", err)
	}

	impacts := make([]topsis.Impact, len(tokens))
	for i, tok := range tokens {
		switch strings.ToLower(tok) {
		case "+", "benefit":
			impacts[i] = topsis.Benefit
		case "-", "cost":
			impacts[i] = topsis.Cost
		default:
			return nil, fmt.Errorf("%w: %q at position %d (want +, -, benefit, or cost)",
				ErrBadImpact, tok, i+1)
		}
	}
	return impacts, nil
}

// FormatImpacts renders impacts back to the compact "+,-" encoding,
// the inverse of ParseImpacts for manifest scaffolding.
func FormatImpacts(impacts []topsis.Impact) string {
	tokens := make([]string, len(impacts))
	for i, im := range impacts {
		if im == topsis.Cost {
			tokens[i] = "-"
		} else {
			tokens[i] = "+"
		}
	}
	return strings.Join(tokens, ",")
}

// splitVector splits a comma-separated vector string, trimming
// whitespace and rejecting empty input or blank segments.
func splitVector(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyVector
	}
	parts := strings.Split(s, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tok := strings.TrimSpace(p)
		if tok == "" {
			return nil, fmt.Errorf("%w: blank segment at position %d", ErrEmptyVector, i+1)
		}
		tokens[i] = tok
	}
	return tokens, nil
}
