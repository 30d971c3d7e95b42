package matrix

import (
	"fmt"
	"sort"
)

// Triplet is one nonzero entry (Row, Col, Val) of a ChainOp, Val in {-1, +1}.
type Triplet struct {
	Row, Col int
	Val      int8
}

// ChainOp is a compressed-sparse-row signed integer matrix: a
// boundary/coboundary operator between cells of successive dimensions.
// Nonzero entries are always ±1. The zero value is not usable; construct
// with NewChainOp.
type ChainOp struct {
	rows, cols int
	rowStart   []int // len rows+1
	colIdx     []int // len nnz, columns sorted ascending within each row
	val        []int8
}

// NewChainOp builds a ChainOp of the given shape from an unordered list of
// triplets. Triplets may arrive in any order; NewChainOp sorts them by
// (row, col) and rejects duplicates or non-unit signs.
func NewChainOp(rows, cols int, triplets []Triplet) (*ChainOp, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewChainOp: %w", ErrBadShape)
	}
	for _, t := range triplets {
		if t.Val != 1 && t.Val != -1 {
			return nil, fmt.Errorf("NewChainOp: row=%d col=%d val=%d: %w", t.Row, t.Col, t.Val, ErrBadSign)
		}
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("NewChainOp: row=%d col=%d: %w", t.Row, t.Col, ErrOutOfRange)
		}
	}

	sorted := append([]Triplet(nil), triplets...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Row == sorted[i-1].Row && sorted[i].Col == sorted[i-1].Col {
			return nil, fmt.Errorf("NewChainOp: row=%d col=%d: %w", sorted[i].Row, sorted[i].Col, ErrDuplicateEntry)
		}
	}

	rowStart := make([]int, rows+1)
	colIdx := make([]int, len(sorted))
	val := make([]int8, len(sorted))
	for i, t := range sorted {
		rowStart[t.Row+1]++
		colIdx[i] = t.Col
		val[i] = t.Val
	}
	for r := 0; r < rows; r++ {
		rowStart[r+1] += rowStart[r]
	}

	return &ChainOp{rows: rows, cols: cols, rowStart: rowStart, colIdx: colIdx, val: val}, nil
}

// Rows returns the number of rows (cells of dimension k).
func (m *ChainOp) Rows() int { return m.rows }

// Cols returns the number of columns (cells of dimension k-1).
func (m *ChainOp) Cols() int { return m.cols }

// NNZ returns the number of nonzero entries.
func (m *ChainOp) NNZ() int { return len(m.val) }

// At returns the signed entry at (row, col), or 0 if absent.
func (m *ChainOp) At(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("ChainOp.At: row=%d col=%d: %w", row, col, ErrOutOfRange)
	}
	lo, hi := m.rowStart[row], m.rowStart[row+1]
	for i := lo; i < hi; i++ {
		if m.colIdx[i] == col {
			return int(m.val[i]), nil
		}
	}
	return 0, nil
}

// RowNonzeros returns the (column, sign) pairs for row, sorted by column.
func (m *ChainOp) RowNonzeros(row int) ([]int, []int, error) {
	if row < 0 || row >= m.rows {
		return nil, nil, fmt.Errorf("ChainOp.RowNonzeros: row=%d: %w", row, ErrOutOfRange)
	}
	lo, hi := m.rowStart[row], m.rowStart[row+1]
	cols := make([]int, hi-lo)
	signs := make([]int, hi-lo)
	for i := lo; i < hi; i++ {
		cols[i-lo] = m.colIdx[i]
		signs[i-lo] = int(m.val[i])
	}
	return cols, signs, nil
}

// EmptyRows returns the indices of rows with no nonzero entries.
func (m *ChainOp) EmptyRows() []int {
	var out []int
	for r := 0; r < m.rows; r++ {
		if m.rowStart[r] == m.rowStart[r+1] {
			out = append(out, r)
		}
	}
	return out
}

// EmptyCols returns the indices of columns touched by no nonzero entry.
func (m *ChainOp) EmptyCols() []int {
	seen := make([]bool, m.cols)
	for _, c := range m.colIdx {
		seen[c] = true
	}
	var out []int
	for c, ok := range seen {
		if !ok {
			out = append(out, c)
		}
	}
	return out
}

// Triplets returns every nonzero entry as a flat, row-major ordered slice.
// Used by package skel to rebuild a ChainOp under row/column deletion or
// block-diagonal merge without touching the CSR internals directly.
func (m *ChainOp) Triplets() []Triplet {
	out := make([]Triplet, 0, len(m.val))
	for r := 0; r < m.rows; r++ {
		for i := m.rowStart[r]; i < m.rowStart[r+1]; i++ {
			out = append(out, Triplet{Row: r, Col: m.colIdx[i], Val: m.val[i]})
		}
	}
	return out
}

// MulClosed multiplies two ChainOps (a.Cols() must equal b.Rows()) over the
// integers and reports whether the product is the zero matrix — the
// closedness check a.∂∘∂=0 from the data-model invariants (∂=b then a).
// It does not materialize the product; it accumulates it densely per row,
// which is acceptable here because MulClosed is a test/validation helper,
// not a hot path.
func MulClosed(a, b *ChainOp) (bool, error) {
	if a.Cols() != b.Rows() {
		return false, fmt.Errorf("MulClosed: %w", ErrDimensionMismatch)
	}
	acc := make([]int, b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for k := range acc {
			acc[k] = 0
		}
		aCols, aSigns, _ := a.RowNonzeros(i)
		for idx, j := range aCols {
			bCols, bSigns, _ := b.RowNonzeros(j)
			for idx2, k := range bCols {
				acc[k] += aSigns[idx] * bSigns[idx2]
			}
		}
		for _, v := range acc {
			if v != 0 {
				return false, nil
			}
		}
	}
	return true, nil
}
