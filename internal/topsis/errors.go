package topsis

import "errors"

var (
	// ErrShapeMismatch indicates a ragged matrix, an empty matrix, or a
	// weight/impact vector whose length differs from the column count.
	ErrShapeMismatch = errors.New("matrix/vector shape mismatch")

	// ErrInvalidValue indicates a matrix entry or weight that is not a
	// finite real number (NaN or ±Inf), or a negative weight.
	ErrInvalidValue = errors.New("non-finite or invalid value")

	// ErrInvalidImpact indicates an impact entry that is neither Benefit
	// nor Cost.
	ErrInvalidImpact = errors.New("invalid impact direction")
)
