package arrange

import (
	"fmt"
	"math"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
)

// GridSpatialIndex is a default SpatialIndex: it buckets every vertex of
// each face into a uniform grid of the given cell size and reports, for
// each face, every other face with a vertex in at least one shared bucket
// as a candidate neighbor. Only the grid cells that hold a face's vertices
// are used, not every cell its bounding box covers, so two faces whose
// vertices fall in disjoint cells are not reported even when the faces
// overlap. It is a coarse filter, not a planar-arrangement primitive —
// production use can inject another index (an R-tree, a BVH) behind the
// same SpatialIndex signature.
func GridSpatialIndex(cellSize float64) SpatialIndex {
	return func(v core.Vertices, ev, fe *matrix.ChainOp) ([][]int, error) {
		if cellSize <= 0 {
			return nil, fmt.Errorf("arrange.GridSpatialIndex: cell size must be positive")
		}
		type bucket struct{ x, y, z int }
		faceBuckets := make([]map[bucket]bool, fe.Rows())
		inBucket := make(map[bucket][]int)

		for f := 0; f < fe.Rows(); f++ {
			verts, err := faceVertices(v, ev, fe, f)
			if err != nil {
				return nil, err
			}
			buckets := make(map[bucket]bool)
			for _, p := range verts {
				b := bucket{
					x: int(math.Floor(p[0] / cellSize)),
					y: int(math.Floor(p[1] / cellSize)),
					z: int(math.Floor(p[2] / cellSize)),
				}
				if !buckets[b] {
					buckets[b] = true
					inBucket[b] = append(inBucket[b], f)
				}
			}
			faceBuckets[f] = buckets
		}

		idx := make([][]int, fe.Rows())
		for f := 0; f < fe.Rows(); f++ {
			seen := make(map[int]bool)
			for b := range faceBuckets[f] {
				for _, other := range inBucket[b] {
					if other != f && !seen[other] {
						seen[other] = true
						idx[f] = append(idx[f], other)
					}
				}
			}
		}
		return idx, nil
	}
}

// faceVertices returns the 3D coordinates of face f's incident vertices in
// copEV's column order (unordered — callers needing a cycle use package
// cycle directly).
func faceVertices(v core.Vertices, ev, fe *matrix.ChainOp, f int) ([][3]float64, error) {
	edgeCols, _, err := fe.RowNonzeros(f)
	if err != nil {
		return nil, fmt.Errorf("arrange.faceVertices: %w", err)
	}
	seen := make(map[int]bool)
	var out [][3]float64
	for _, e := range edgeCols {
		cols, _, err := ev.RowNonzeros(e)
		if err != nil {
			return nil, fmt.Errorf("arrange.faceVertices: %w", err)
		}
		for _, c := range cols {
			if seen[c] {
				continue
			}
			seen[c] = true
			row := v[c]
			if len(row) == 3 {
				out = append(out, [3]float64{row[0], row[1], row[2]})
			} else {
				out = append(out, [3]float64{row[0], row[1], 0})
			}
		}
	}
	return out, nil
}

// ToleranceMergeVertices is a default MergeVertices: it unions vertices
// within eps of each other (O(n^2) pairwise, acceptable for the
// fragment-accumulation sizes arrange targets; a caller merging very large
// complexes should inject a spatially-indexed alternative), then remaps
// every copEV column and drops edges that collapsed into self-loops or
// exact duplicates, folding duplicate/cancelling copFE entries along the
// way.
func ToleranceMergeVertices(eps float64) MergeVertices {
	return func(v core.Vertices, ev, fe *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, error) {
		n := len(v)
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			for parent[x] != x {
				parent[x] = parent[parent[x]]
				x = parent[x]
			}
			return x
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if vertexClose(v[i], v[j], eps) {
					ri, rj := find(i), find(j)
					if ri != rj {
						parent[ri] = rj
					}
				}
			}
		}

		// Representative -> new compact index, smallest original member wins
		// as the kept coordinates.
		repOf := make([]int, n)
		newIdx := make(map[int]int)
		newV := core.Vertices{}
		for i := 0; i < n; i++ {
			r := find(i)
			repOf[i] = r
			if _, ok := newIdx[r]; !ok {
				newIdx[r] = len(newV)
				newV = append(newV, v[i])
			}
		}
		vertexRemap := make([]int, n)
		for i := range vertexRemap {
			vertexRemap[i] = newIdx[repOf[i]]
		}

		newEV, edgeRemap, err := remapEdges(ev, vertexRemap, len(newV))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("arrange.ToleranceMergeVertices: %w", err)
		}
		newFE, err := remapFaces(fe, edgeRemap, newEV.Rows())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("arrange.ToleranceMergeVertices: %w", err)
		}
		return newV, newEV, newFE, nil
	}
}

func vertexClose(a, b []float64, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// remapEdges rewrites copEV's columns through vertexRemap, drops rows that
// became self-loops, deduplicates rows referring to the same unordered
// vertex pair (first occurrence wins), and returns the old-row -> new-row
// map (-1 for dropped rows). numVerts fixes the result's column count so it
// matches the merged vertex set even when some vertex has no incident edge.
func remapEdges(ev *matrix.ChainOp, vertexRemap []int, numVerts int) (*matrix.ChainOp, []int, error) {
	type key struct{ lo, hi int }
	seen := make(map[key]int) // key -> new row
	edgeRemap := make([]int, ev.Rows())
	var triplets []matrix.Triplet
	newRow := 0

	for r := 0; r < ev.Rows(); r++ {
		cols, signs, err := ev.RowNonzeros(r)
		if err != nil {
			return nil, nil, err
		}
		if len(cols) != 2 {
			edgeRemap[r] = -1
			continue
		}
		a, b := vertexRemap[cols[0]], vertexRemap[cols[1]]
		if a == b {
			edgeRemap[r] = -1
			continue
		}
		lo, hi, sa, sb := a, b, signs[0], signs[1]
		if lo > hi {
			lo, hi, sa, sb = hi, lo, signs[1], signs[0]
		}
		k := key{lo, hi}
		if existing, ok := seen[k]; ok {
			edgeRemap[r] = existing
			continue
		}
		seen[k] = newRow
		edgeRemap[r] = newRow
		triplets = append(triplets, matrix.Triplet{Row: newRow, Col: lo, Val: int8(sa)}, matrix.Triplet{Row: newRow, Col: hi, Val: int8(sb)})
		newRow++
	}

	if newRow == 0 || numVerts == 0 {
		return nil, nil, fmt.Errorf("arrange.remapEdges: %w", core.ErrEmptyVertices)
	}
	op, err := matrix.NewChainOp(newRow, numVerts, triplets)
	if err != nil {
		return nil, nil, err
	}
	return op, edgeRemap, nil
}

// remapFaces rewrites copFE's columns through edgeRemap (dropping entries
// whose edge was removed as a self-loop), folding any now-duplicate
// columns within a face by summing their signs algebraically and omitting
// zero-sum cancellations.
func remapFaces(fe *matrix.ChainOp, edgeRemap []int, numEdges int) (*matrix.ChainOp, error) {
	var triplets []matrix.Triplet
	for r := 0; r < fe.Rows(); r++ {
		cols, signs, err := fe.RowNonzeros(r)
		if err != nil {
			return nil, err
		}
		acc := make(map[int]int)
		for i, c := range cols {
			nc := edgeRemap[c]
			if nc == -1 {
				continue
			}
			acc[nc] += signs[i]
		}
		for c, s := range acc {
			if s == 0 {
				continue
			}
			// Collapsed duplicate entries are normalized back to a unit
			// sign rather than preserving magnitude, since ChainOp only
			// stores +/-1.
			sign := int8(1)
			if s < 0 {
				sign = -1
			}
			triplets = append(triplets, matrix.Triplet{Row: r, Col: c, Val: sign})
		}
	}
	return matrix.NewChainOp(fe.Rows(), numEdges, triplets)
}
