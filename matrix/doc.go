// Package matrix implements ChainOp, the sparse signed-integer incidence
// (boundary/coboundary) operator at the center of larcx, plus the builders
// that construct one from a core.CellList and the converters between the
// sparse and list-of-lists cell representations.
//
// ChainOp is stored compressed-sparse-row: nonzero entries are always ±1,
// rows are cells of dimension k, columns are cells of dimension k-1. Block-
// diagonal merges (package skel) rebuild the merged operator from the
// row-major triplet form, shifting the second operator's row and column
// indices.
//
// Shape conventions:
//
//	copEV: rows = edges,  cols = vertices
//	copFE: rows = faces,  cols = edges
//	copCF: rows = 3-cells, cols = faces
package matrix
