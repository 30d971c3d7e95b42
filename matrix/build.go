package matrix

import (
	"fmt"
	"sort"

	"github.com/go-lar/larcx/core"
)

// edgeKey canonicalizes an undirected edge as its sorted endpoint pair, the
// lookup key shared by BuildCopEV and BuildCopFE.
type edgeKey struct{ lo, hi int }

func keyOf(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// BuildCopEV builds the vertex->edge incidence operator from an edge cell
// list. For edge (a,b) the endpoints are sorted; if signed, column min(a,b)
// holds -1 and column max(a,b) holds +1; if unsigned, both hold +1.
// Row count is len(ev); column count is the number of vertices nv.
func BuildCopEV(ev core.CellList, nv int, signed bool) (*ChainOp, map[edgeKey]int, error) {
	triplets := make([]Triplet, 0, 2*len(ev))
	index := make(map[edgeKey]int, len(ev))
	for row, e := range ev {
		if len(e) != 2 {
			return nil, nil, fmt.Errorf("BuildCopEV: edge %d: %w", row, core.ErrEmptyCell)
		}
		a, b := e[0], e[1]
		if a == b {
			return nil, nil, fmt.Errorf("BuildCopEV: edge %d: degenerate self-loop", row)
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		index[edgeKey{lo, hi}] = row
		if signed {
			triplets = append(triplets, Triplet{Row: row, Col: lo, Val: -1}, Triplet{Row: row, Col: hi, Val: 1})
		} else {
			triplets = append(triplets, Triplet{Row: row, Col: lo, Val: 1}, Triplet{Row: row, Col: hi, Val: 1})
		}
	}
	op, err := NewChainOp(len(ev), nv, triplets)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildCopEV: %w", err)
	}
	return op, index, nil
}

// BuildCopFE builds the edge->face incidence operator. For each face, it
// walks the given vertex order, and for every consecutive pair (wrapping
// last to first) looks up the edge row via edgeIndex; the sign of that
// entry is sign(next - current). Fails with ErrEdgeNotFound if any required
// edge is absent from edgeIndex.
func BuildCopFE(fv core.CellList, numEdges int, edgeIndex map[edgeKey]int) (*ChainOp, error) {
	triplets := make([]Triplet, 0, 4*len(fv))
	for row, face := range fv {
		n := len(face)
		if n < 3 {
			return nil, fmt.Errorf("BuildCopFE: face %d: %w", row, core.ErrEmptyCell)
		}
		for i := 0; i < n; i++ {
			cur, next := face[i], face[(i+1)%n]
			eIdx, ok := edgeIndex[keyOf(cur, next)]
			if !ok {
				return nil, fmt.Errorf("BuildCopFE: face %d: %w", row, ErrEdgeNotFound)
			}
			sign := int8(1)
			if next < cur {
				sign = -1
			}
			triplets = append(triplets, Triplet{Row: row, Col: eIdx, Val: sign})
		}
	}
	op, err := NewChainOp(len(fv), numEdges, triplets)
	if err != nil {
		return nil, fmt.Errorf("BuildCopFE: %w", err)
	}
	return op, nil
}

// BuildCopCF builds the face->3-cell incidence operator for a list of
// 3-cells, each given as an ordered list of face indices together with
// their outward orientation sign. It mirrors BuildCopEV/BuildCopFE for the
// next dimension up and is used by the mesh reader (package meshio) and by
// tests; production 3D arrangement normally receives copCF directly from
// the external minimal-3-cycles collaborator (package arrange).
func BuildCopCF(cf []CellFaceSigns, numFaces int) (*ChainOp, error) {
	triplets := make([]Triplet, 0, 4*len(cf))
	for row, cell := range cf {
		for _, fs := range cell {
			if fs.Sign != 1 && fs.Sign != -1 {
				return nil, fmt.Errorf("BuildCopCF: cell %d: %w", row, ErrBadSign)
			}
			triplets = append(triplets, Triplet{Row: row, Col: fs.Face, Val: int8(fs.Sign)})
		}
	}
	op, err := NewChainOp(len(cf), numFaces, triplets)
	if err != nil {
		return nil, fmt.Errorf("BuildCopCF: %w", err)
	}
	return op, nil
}

// CellFaceSigns is one 3-cell's boundary: a face index with its outward
// orientation sign, as consumed by BuildCopCF.
type CellFaceSigns []struct {
	Face int
	Sign int
}

// orderedCycle is the minimal interface BuildCops needs from package
// cycle, satisfied without an import cycle by passing a plain function.
type orderedCycle = func(ev *ChainOp, face []int) ([]int, error)

// BuildCops builds copEV, then recovers an ordered vertex cycle for every
// face of fv (via walkUnsigned, the unsigned-walk primitive from 4.D
// variant 2), and finally calls BuildCopFE. Returns (copEV, copFE).
//
// walkUnsigned is injected rather than imported directly to keep package
// matrix free of a dependency on package cycle; callers pass
// cycle.WalkUnsigned.
func BuildCops(ev core.CellList, fv core.CellList, nv int, walkUnsigned orderedCycle) (*ChainOp, *ChainOp, error) {
	copEV, index, err := BuildCopEV(ev, nv, true)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildCops: %w", err)
	}
	orderedFV := make(core.CellList, len(fv))
	for i, face := range fv {
		cyc, err := walkUnsigned(copEV, face)
		if err != nil {
			return nil, nil, fmt.Errorf("BuildCops: face %d: %w", i, err)
		}
		orderedFV[i] = cyc
	}
	copFE, err := BuildCopFE(orderedFV, copEV.Rows(), index)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildCops: %w", err)
	}
	return copEV, copFE, nil
}

// Lar2Cop converts a CellList into an unsigned {0,1}-valued ChainOp where
// every referenced cell-to-vertex (or higher) incidence is marked +1.
func Lar2Cop(cells core.CellList, ncols int) (*ChainOp, error) {
	triplets := make([]Triplet, 0)
	for row, cell := range cells {
		seen := make(map[int]bool, len(cell))
		for _, col := range cell {
			if seen[col] {
				continue
			}
			seen[col] = true
			triplets = append(triplets, Triplet{Row: row, Col: col, Val: 1})
		}
	}
	return NewChainOp(len(cells), ncols, triplets)
}

// Cop2Lar converts an unsigned ChainOp back into a CellList: for each row,
// the ascending list of nonzero column indices. Sign is ignored, matching
// Lar2Cop's all-+1 output, so the two are mutual inverses up to row/column
// ordering of their inputs.
func Cop2Lar(op *ChainOp) core.CellList {
	out := make(core.CellList, op.Rows())
	for r := 0; r < op.Rows(); r++ {
		cols, _, _ := op.RowNonzeros(r)
		sorted := append([]int(nil), cols...)
		sort.Ints(sorted)
		out[r] = sorted
	}
	return out
}
