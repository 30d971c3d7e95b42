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

// Read3D parses the minimal Wavefront subset into a full 3-skeleton. "f"
// lines are parsed as in Read2D (any polygon of three or more indices;
// Write3D only emits triangles). Unlike Read2D, "g name" starts a new
// 3-cell group; every face must follow some "g" line so it has a cell to
// belong to.
func Read3D(r io.Reader) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, *matrix.ChainOp, error) {
	var verts core.Vertices
	var faces core.CellList
	var cellFaceIdx [][]int
	haveGroup := false

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
				return nil, nil, nil, nil, err
			}
			verts = append(verts, coords)
		case "g":
			if _, err := parseGroupLine(fields); err != nil {
				return nil, nil, nil, nil, err
			}
			cellFaceIdx = append(cellFaceIdx, nil)
			haveGroup = true
		case "f":
			if !haveGroup {
				return nil, nil, nil, nil, fmt.Errorf("meshio.Read3D: face before any group: %w", ErrIOFormat)
			}
			idx, err := parseFaceLine(fields)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			faceRow := len(faces)
			faces = append(faces, idx)
			last := len(cellFaceIdx) - 1
			cellFaceIdx[last] = append(cellFaceIdx[last], faceRow)
		default:
			return nil, nil, nil, nil, fmt.Errorf("meshio.Read3D: line %q: %w", sc.Text(), ErrIOFormat)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, nil, err
	}
	if len(faces) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("meshio.Read3D: %w", ErrNoFaces)
	}

	ev := collectEdges(faces)
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, len(verts), true)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("meshio.Read3D: %w", err)
	}
	copFE, err := matrix.BuildCopFE(faces, copEV.Rows(), edgeIdx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("meshio.Read3D: %w", err)
	}

	cf := make([]matrix.CellFaceSigns, len(cellFaceIdx))
	for c, rows := range cellFaceIdx {
		sign := make(matrix.CellFaceSigns, len(rows))
		for i, row := range rows {
			sign[i] = struct {
				Face int
				Sign int
			}{Face: row, Sign: 1}
		}
		cf[c] = sign
	}
	copCF, err := matrix.BuildCopCF(cf, copFE.Rows())
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("meshio.Read3D: %w", err)
	}
	return verts, copEV, copFE, copCF, nil
}

// Write3D writes vertices, then for every 3-cell row of copCF a "g" line
// followed by its faces' triangle lines. Each face is triangulated via
// triangulate.Face and its triangles' winding reversed when copCF[c,f] is
// -1, so the emitted triangles carry the cell's outward orientation.
func Write3D(w io.Writer, v core.Vertices, copEV, copFE, copCF *matrix.ChainOp) error {
	if copCF.Rows() == 0 {
		return fmt.Errorf("meshio.Write3D: %w", ErrNoFaces)
	}
	bw := bufio.NewWriter(w)
	for _, row := range v {
		if _, err := fmt.Fprintln(bw, formatVertex(row)); err != nil {
			return err
		}
	}

	for c := 0; c < copCF.Rows(); c++ {
		faceIdx, faceSigns, err := copCF.RowNonzeros(c)
		if err != nil {
			return fmt.Errorf("meshio.Write3D: %w", err)
		}
		if _, err := fmt.Fprintf(bw, "g cell%d\n", c); err != nil {
			return err
		}
		for i, f := range faceIdx {
			tris, err := triangulate.Face(v, copEV, copFE, f, triangulate.NaiveTriangulator{})
			if err != nil {
				return fmt.Errorf("meshio.Write3D: face %d: %w", f, err)
			}
			if faceSigns[i] < 0 {
				for j, tri := range tris {
					tris[j] = [3]int{tri[0], tri[2], tri[1]}
				}
			}
			for _, tri := range tris {
				if _, err := fmt.Fprintln(bw, formatFace(tri[:])); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
