package matrix

import "errors"

// Sentinel error set. Algorithms return these via
// fmt.Errorf("Op: %w", Err...) rather than bespoke error types;
// callers match with errors.Is.
var (
	// ErrBadShape is returned when requested rows or cols are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadSign indicates a triplet value other than +1 or -1.
	ErrBadSign = errors.New("matrix: entry must be +1 or -1")

	// ErrDuplicateEntry indicates two triplets target the same (row, col).
	ErrDuplicateEntry = errors.New("matrix: duplicate entry for same row and column")

	// ErrEdgeNotFound indicates build_copFE referenced an edge absent from copEV.
	ErrEdgeNotFound = errors.New("matrix: edge not found in copEV")

	// ErrDimensionMismatch indicates two operators have incompatible shapes for an operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
