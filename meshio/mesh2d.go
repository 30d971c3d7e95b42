package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
	"github.com/go-lar/larcx/triangulate"
)

// Read2D parses the minimal Wavefront subset into a 2-skeleton: vertices,
// the vertex->edge operator copEV, and the edge->face operator copFE. Edges
// are derived from each face's consecutive vertex pairs (wrapping last to
// first) and deduplicated in first-seen order; "g" lines are ignored.
func Read2D(r io.Reader) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, error) {
	var verts core.Vertices
	var faces core.CellList

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			coords, err := parseVertexLine(fields)
			if err != nil {
				return nil, nil, nil, err
			}
			verts = append(verts, coords)
		case "f":
			idx, err := parseFaceLine(fields)
			if err != nil {
				return nil, nil, nil, err
			}
			faces = append(faces, idx)
		case "g":
			// groups only matter for the 3D variant.
		default:
			return nil, nil, nil, fmt.Errorf("meshio: line %q: %w", sc.Text(), ErrIOFormat)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, err
	}

	ev := collectEdges(faces)
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, len(verts), true)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("meshio.Read2D: %w", err)
	}
	copFE, err := matrix.BuildCopFE(faces, copEV.Rows(), edgeIdx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("meshio.Read2D: %w", err)
	}
	return verts, copEV, copFE, nil
}

// collectEdges extracts the unique undirected edges implied by each face's
// boundary, in first-seen order.
func collectEdges(faces core.CellList) core.CellList {
	seen := make(map[[2]int]bool)
	var ev core.CellList
	for _, face := range faces {
		n := len(face)
		for i := 0; i < n; i++ {
			a, b := face[i], face[(i+1)%n]
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if seen[key] {
				continue
			}
			seen[key] = true
			ev = append(ev, []int{a, b})
		}
	}
	return ev
}

// Write2D writes v, then triangulates each row of copFE via
// triangulate.Face and writes one f line per resulting triangle, matching
// the format's "writer always emits triangles" convention.
func Write2D(w io.Writer, v core.Vertices, copEV, copFE *matrix.ChainOp) error {
	bw := bufio.NewWriter(w)
	for _, row := range v {
		if _, err := fmt.Fprintln(bw, formatVertex(row)); err != nil {
			return err
		}
	}
	for f := 0; f < copFE.Rows(); f++ {
		tris, err := triangulate.Face(v, copEV, copFE, f, triangulate.NaiveTriangulator{})
		if err != nil {
			return fmt.Errorf("meshio.Write2D: face %d: %w", f, err)
		}
		for _, tri := range tris {
			if _, err := fmt.Fprintln(bw, formatFace(tri[:])); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
