package dataset

import "errors"

var (
	// ErrEmptyDataset indicates a CSV with a header but no alternative rows.
	ErrEmptyDataset = errors.New("dataset has no alternatives")

	// ErrTooFewColumns indicates a CSV without at least a name column and
	// one criterion column.
	ErrTooFewColumns = errors.New("dataset needs a name column and at least one criterion")

	// ErrRaggedRow indicates a row whose field count differs from the header.
	ErrRaggedRow = errors.New("row has wrong number of fields")

	// ErrNotNumeric indicates a criterion cell that does not parse as a
	// finite number.
	ErrNotNumeric = errors.New("criterion value is not numeric")

	// ErrBadWeight indicates a weight token that is not a non-negative
	// finite number.
	ErrBadWeight = errors.New("invalid weight")

	// ErrBadImpact indicates an impact token that is none of +, -, benefit, cost.
	ErrBadImpact = errors.New("invalid impact token")

	// ErrEmptyVector indicates an empty weights or impacts string.
	ErrEmptyVector = errors.New("empty vector")

	// ErrLengthMismatch indicates a weights or impacts vector whose length
	// differs from the dataset's criterion count.
	ErrLengthMismatch = errors.New("vector length does not match criterion count")
)
