package core

import "errors"

// Vertex array V, the list-of-lists cell representation, and the tagged
// Face variant consumed by the cycle extractor (package cycle).
//
// Nothing here is geometric (see package geom) or sparse-matrix shaped
// (see package matrix); core only carries plain coordinate and index data
// plus the small amount of validation that every consumer needs.

// Sentinel errors for core data-model validation.
var (
	// ErrEmptyVertices indicates a Vertices slice with no rows.
	ErrEmptyVertices = errors.New("core: vertex set is empty")

	// ErrBadDimension indicates a coordinate row whose length is neither 2 nor 3.
	ErrBadDimension = errors.New("core: vertex coordinates must have 2 or 3 components")

	// ErrIndexOutOfRange indicates a cell referenced a vertex index outside [0, len(V)).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEmptyCell indicates a cell with fewer than 2 vertex indices.
	ErrEmptyCell = errors.New("core: cell must reference at least two vertices")
)

// Vertices is an ordered array of n points in 2D or 3D. Rows are addressed
// 0-based, matching idiomatic Go slice indexing; callers translating from
// the 1-based convention used in the rest of the specification (and in the
// Wavefront-style mesh format of package meshio) subtract one at the
// boundary, not internally.
type Vertices [][]float64

// Dim returns the coordinate dimension (2 or 3), or 0 for an empty set.
func (v Vertices) Dim() int {
	if len(v) == 0 {
		return 0
	}
	return len(v[0])
}

// Validate checks that every row has the same, legal dimension.
func (v Vertices) Validate() error {
	if len(v) == 0 {
		return ErrEmptyVertices
	}
	dim := len(v[0])
	if dim != 2 && dim != 3 {
		return ErrBadDimension
	}
	for _, row := range v {
		if len(row) != dim {
			return ErrBadDimension
		}
	}
	return nil
}

// CellList is an ordered sequence of cells, each cell an ordered sequence
// of 0-based vertex indices. For edges the two endpoints; for faces the
// ordered boundary traversal (orientation carried by order).
type CellList [][]int

// Validate checks that every cell has at least two vertices and that all
// referenced indices are within [0, nv).
func (c CellList) Validate(nv int) error {
	for _, cell := range c {
		if len(cell) < 2 {
			return ErrEmptyCell
		}
		for _, idx := range cell {
			if idx < 0 || idx >= nv {
				return ErrIndexOutOfRange
			}
		}
	}
	return nil
}

// FaceKind tags which shape a Face value carries, so the three cycle.Walk*
// variants (package cycle) can dispatch on a single argument type instead
// of three distinct ones. This is the "heterogeneous cell containers"
// tagged variant called for by the design notes.
type FaceKind int

const (
	// FaceFromCycle carries an already-ordered vertex cycle (variant 2 input).
	FaceFromCycle FaceKind = iota
	// FaceFromChain carries a signed edge chain, one entry per edge of copEV (variant 1 input).
	FaceFromChain
	// FaceFromSparse carries a sparse edge vector: edge index -> sign (variant 3 input).
	FaceFromSparse
)

// Face is a tagged union over the three face representations consumed by
// package cycle's extractor variants.
type Face struct {
	Kind FaceKind

	// Cycle holds an ordered vertex-index cycle; valid when Kind == FaceFromCycle.
	Cycle []int

	// Chain holds one entry per edge, i.e. per row of copEV (+1/-1/0); valid when Kind == FaceFromChain.
	Chain []int

	// Sparse holds edge-index -> sign for only the nonzero entries; valid when Kind == FaceFromSparse.
	Sparse map[int]int
}

// NewFaceFromCycle wraps an ordered vertex cycle as a Face.
func NewFaceFromCycle(cycle []int) Face {
	return Face{Kind: FaceFromCycle, Cycle: cycle}
}

// NewFaceFromChain wraps a dense signed edge chain as a Face.
func NewFaceFromChain(chain []int) Face {
	return Face{Kind: FaceFromChain, Chain: chain}
}

// NewFaceFromSparse wraps a sparse signed edge vector as a Face.
func NewFaceFromSparse(sparse map[int]int) Face {
	return Face{Kind: FaceFromSparse, Sparse: sparse}
}
