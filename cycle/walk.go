package cycle

import (
	"fmt"
	"sort"

	"github.com/go-lar/larcx/matrix"
)

// endpoints returns the low (min) and high (max) vertex index of edge row e
// in a signed copEV, identified by their -1/+1 markers.
func endpoints(ev *matrix.ChainOp, e int) (lo, hi int, err error) {
	cols, signs, err := ev.RowNonzeros(e)
	if err != nil {
		return 0, 0, fmt.Errorf("cycle.endpoints: %w", err)
	}
	if len(cols) != 2 {
		return 0, 0, fmt.Errorf("cycle.endpoints: edge %d: %w", e, ErrMalformedComplex)
	}
	for i, c := range cols {
		if signs[i] == -1 {
			lo = c
		} else {
			hi = c
		}
	}
	return lo, hi, nil
}

// WalkSigned is variant 1: the signed-chain walk. Given copEV and a dense
// signed face vector f (one entry per column/edge of copFE, 0 for absent
// edges), it builds the tail->head permutation implied by f's signs and
// follows every orbit to completion. A simple face yields exactly one
// cycle; a face with holes yields one cycle per boundary component, in the
// order their seed edges were first encountered.
func WalkSigned(ev *matrix.ChainOp, f []int) ([][]int, error) {
	edges := make(map[int]int)
	for e, sign := range f {
		if sign != 0 {
			edges[e] = sign
		}
	}
	return walkOrbits(ev, edges)
}

// WalkSparse is variant 3: the edge-structural walk. It is computed
// identically to WalkSigned, but the input is already a sparse edge index
// -> sign map (e.g. a copFE row addressed by nonzero column) rather than a
// dense per-edge array.
func WalkSparse(ev *matrix.ChainOp, sparse map[int]int) ([][]int, error) {
	return walkOrbits(ev, sparse)
}

// walkOrbits is the shared orbit-following core of variants 1 and 3.
func walkOrbits(ev *matrix.ChainOp, edges map[int]int) ([][]int, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyFace
	}

	tailToHead := make(map[int]int, len(edges))
	tailEdge := make(map[int]int, len(edges)) // tail vertex -> originating edge row
	edgeOrder := make([]int, 0, len(edges))
	for e := range edges {
		edgeOrder = append(edgeOrder, e)
	}
	sort.Ints(edgeOrder)

	for _, e := range edgeOrder {
		sign := edges[e]
		lo, hi, err := endpoints(ev, e)
		if err != nil {
			return nil, err
		}
		var tail, head int
		if sign > 0 {
			tail, head = lo, hi
		} else {
			tail, head = hi, lo
		}
		if _, dup := tailToHead[tail]; dup {
			return nil, fmt.Errorf("cycle.WalkSigned: vertex %d has two outgoing edges: %w", tail, ErrMalformedComplex)
		}
		tailToHead[tail] = head
		tailEdge[tail] = e
	}

	visitedEdge := make(map[int]bool, len(edges))
	var cycles [][]int
	for _, seed := range edgeOrder {
		start := -1
		for v, e := range tailEdge {
			if e == seed && !visitedEdge[e] {
				start = v
				break
			}
		}
		if start == -1 {
			continue
		}
		cur := start
		var cyc []int
		for {
			e, ok := tailEdge[cur]
			if !ok || visitedEdge[e] {
				return nil, fmt.Errorf("cycle.WalkSigned: orbit from %d does not close: %w", start, ErrMalformedComplex)
			}
			cyc = append(cyc, cur)
			visitedEdge[e] = true
			cur = tailToHead[cur]
			if cur == start {
				break
			}
		}
		cycles = append(cycles, cyc)
	}

	for _, used := range visitedEdge {
		if !used {
			return nil, ErrMalformedComplex
		}
	}
	if len(visitedEdge) != len(edges) {
		return nil, ErrMalformedComplex
	}
	return cycles, nil
}

// WalkUnsigned is variant 2: given copEV and a face as an unordered list of
// vertex indices, starts at face[0] and greedily follows edges whose other
// endpoint lies in the face, has not yet been visited (unless it is the
// start, closing the cycle), and whose edge has not already been used. Ties
// (a non-manifold vertex with more than one valid candidate) are broken by
// first-encountered edge row. Returns ErrAmbiguousTraversal if no valid
// next edge exists before the start vertex recurs.
func WalkUnsigned(ev *matrix.ChainOp, face []int) ([]int, error) {
	if len(face) == 0 {
		return nil, ErrEmptyFace
	}
	inFace := make(map[int]bool, len(face))
	for _, v := range face {
		inFace[v] = true
	}

	adj := make(map[int][]int) // vertex -> incident edge rows, ascending
	for e := 0; e < ev.Rows(); e++ {
		lo, hi, err := endpoints(ev, e)
		if err != nil {
			return nil, err
		}
		if inFace[lo] && inFace[hi] {
			adj[lo] = append(adj[lo], e)
			adj[hi] = append(adj[hi], e)
		}
	}

	start := face[0]
	visited := map[int]bool{start: true}
	usedEdge := make(map[int]bool)
	cyc := []int{start}
	cur := start

	for len(cyc) <= len(face) {
		var nextVert, nextEdge = -1, -1
		for _, e := range adj[cur] {
			if usedEdge[e] {
				continue
			}
			lo, hi, _ := endpoints(ev, e)
			other := lo
			if other == cur {
				other = hi
			}
			if other == start && len(cyc) >= len(face) {
				nextVert, nextEdge = other, e
				break
			}
			if other != start && inFace[other] && !visited[other] {
				nextVert, nextEdge = other, e
				break
			}
		}
		if nextEdge == -1 {
			return nil, fmt.Errorf("cycle.WalkUnsigned: stuck at vertex %d: %w", cur, ErrAmbiguousTraversal)
		}
		usedEdge[nextEdge] = true
		if nextVert == start {
			return cyc, nil
		}
		visited[nextVert] = true
		cyc = append(cyc, nextVert)
		cur = nextVert
	}
	return nil, fmt.Errorf("cycle.WalkUnsigned: %w", ErrAmbiguousTraversal)
}
