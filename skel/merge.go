package skel

import (
	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
)

// MergeOps block-diagonally merges two incidence operators of the same
// kind: op2's rows/cols are shifted by op1's row/col counts before its
// triplets are appended to op1's. It is the operator-only half of Merge,
// usable on its own when the two operators don't share a vertex dimension
// (e.g. two copFE, whose columns are edges, not vertices).
func MergeOps(op1, op2 *matrix.ChainOp) (*matrix.ChainOp, error) {
	rowShift := op1.Rows()
	colShift := op1.Cols()

	triplets := make([]matrix.Triplet, 0, op1.NNZ()+op2.NNZ())
	triplets = append(triplets, op1.Triplets()...)
	for _, t := range op2.Triplets() {
		triplets = append(triplets, matrix.Triplet{
			Row: t.Row + rowShift,
			Col: t.Col + colShift,
			Val: t.Val,
		})
	}
	return matrix.NewChainOp(op1.Rows()+op2.Rows(), op1.Cols()+op2.Cols(), triplets)
}

// Merge block-diagonally merges two skeletons (vertices plus their shared
// incidence operator, e.g. two copEV) into one: vertex rows are stacked
// and the operator is merged via MergeOps. No vertex deduplication is
// performed; callers needing that run an external merge-vertices pass
// afterward (package arrange).
func Merge(v1, v2 core.Vertices, op1, op2 *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, error) {
	mergedV := make(core.Vertices, 0, len(v1)+len(v2))
	mergedV = append(mergedV, v1...)
	mergedV = append(mergedV, v2...)

	merged, err := MergeOps(op1, op2)
	if err != nil {
		return nil, nil, err
	}
	return mergedV, merged, nil
}
