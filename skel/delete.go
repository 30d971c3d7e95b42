package skel

import (
	"fmt"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
)

// dropSet turns a slice of indices into a lookup set, validating bounds.
func dropSet(todel []int, bound int) (map[int]bool, error) {
	set := make(map[int]bool, len(todel))
	for _, i := range todel {
		if i < 0 || i >= bound {
			return nil, fmt.Errorf("skel: index %d: %w", i, ErrIndexOutOfRange)
		}
		set[i] = true
	}
	return set, nil
}

// remapIndex builds old->new index maps for the kept (non-dropped) indices
// of a dimension of size n, preserving ascending order.
func remapIndex(drop map[int]bool, n int) map[int]int {
	remap := make(map[int]int, n-len(drop))
	next := 0
	for i := 0; i < n; i++ {
		if drop[i] {
			continue
		}
		remap[i] = next
		next++
	}
	return remap
}

// DeleteEdges drops the edge rows at todel from copEV, then finds any
// vertex columns that became empty as a result and drops both those
// columns and the corresponding rows of v, returning the reindexed
// skeleton.
func DeleteEdges(todel []int, v core.Vertices, copEV *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, error) {
	rowDrop, err := dropSet(todel, copEV.Rows())
	if err != nil {
		return nil, nil, fmt.Errorf("skel.DeleteEdges: %w", err)
	}

	kept := make([]matrix.Triplet, 0, copEV.NNZ())
	touchedCol := make(map[int]bool, copEV.Cols())
	for _, t := range copEV.Triplets() {
		if rowDrop[t.Row] {
			continue
		}
		kept = append(kept, t)
		touchedCol[t.Col] = true
	}

	colDrop := make(map[int]bool)
	for c := 0; c < copEV.Cols(); c++ {
		if !touchedCol[c] {
			colDrop[c] = true
		}
	}

	rowRemap := remapIndex(rowDrop, copEV.Rows())
	colRemap := remapIndex(colDrop, copEV.Cols())

	reindexed := make([]matrix.Triplet, 0, len(kept))
	for _, t := range kept {
		reindexed = append(reindexed, matrix.Triplet{
			Row: rowRemap[t.Row],
			Col: colRemap[t.Col],
			Val: t.Val,
		})
	}

	newV := dropVertexRows(v, colDrop)
	rows := copEV.Rows() - len(rowDrop)
	cols := copEV.Cols() - len(colDrop)
	if rows == 0 || cols == 0 {
		return newV, nil, fmt.Errorf("skel.DeleteEdges: %w", core.ErrEmptyVertices)
	}

	op, err := matrix.NewChainOp(rows, cols, reindexed)
	if err != nil {
		return nil, nil, fmt.Errorf("skel.DeleteEdges: %w", err)
	}
	return newV, op, nil
}

// DeleteVertices drops the vertex columns at todel from copEV and cascades
// the deletion to every edge row that referenced one of them, since an
// edge cannot survive with a missing endpoint; v is filtered to match.
func DeleteVertices(todel []int, v core.Vertices, copEV *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, error) {
	colDrop, err := dropSet(todel, copEV.Cols())
	if err != nil {
		return nil, nil, fmt.Errorf("skel.DeleteVertices: %w", err)
	}

	rowDrop := make(map[int]bool)
	for _, t := range copEV.Triplets() {
		if colDrop[t.Col] {
			rowDrop[t.Row] = true
		}
	}

	kept := make([]matrix.Triplet, 0, copEV.NNZ())
	for _, t := range copEV.Triplets() {
		if rowDrop[t.Row] || colDrop[t.Col] {
			continue
		}
		kept = append(kept, t)
	}

	rowRemap := remapIndex(rowDrop, copEV.Rows())
	colRemap := remapIndex(colDrop, copEV.Cols())

	reindexed := make([]matrix.Triplet, 0, len(kept))
	for _, t := range kept {
		reindexed = append(reindexed, matrix.Triplet{
			Row: rowRemap[t.Row],
			Col: colRemap[t.Col],
			Val: t.Val,
		})
	}

	newV := dropVertexRows(v, colDrop)
	rows := copEV.Rows() - len(rowDrop)
	cols := copEV.Cols() - len(colDrop)
	if rows == 0 || cols == 0 {
		return newV, nil, fmt.Errorf("skel.DeleteVertices: %w", core.ErrEmptyVertices)
	}

	op, err := matrix.NewChainOp(rows, cols, reindexed)
	if err != nil {
		return nil, nil, fmt.Errorf("skel.DeleteVertices: %w", err)
	}
	return newV, op, nil
}

// dropVertexRows filters out the vertex rows named in drop, preserving the
// order of the rest.
func dropVertexRows(v core.Vertices, drop map[int]bool) core.Vertices {
	idx := make([]int, 0, len(v))
	for i := range v {
		if !drop[i] {
			idx = append(idx, i)
		}
	}
	out := make(core.Vertices, len(idx))
	for i, orig := range idx {
		out[i] = v[orig]
	}
	return out
}
