package triangulate

import (
	"fmt"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/cycle"
	"github.com/go-lar/larcx/geom"
	"github.com/go-lar/larcx/matrix"
)

// basis is the orthonormal frame (v1, v2, v3) built on a face's plane:
// v1, v2 span the plane, v3 is its normal.
type basis struct {
	v1, v2, v3 [3]float64
	origin     [3]float64
}

// buildBasis implements step 3 of the triangulator: v1 = normalize(vs[1]-vs[0]);
// scan further vertices until v2 = normalize(vs[i]-vs[0]) gives a
// non-degenerate cross product v3 = v1 x v2 (norm above geom.Eps).
func buildBasis(vs [][3]float64) (basis, error) {
	if len(vs) < 3 {
		return basis{}, ErrTooFewVertices
	}
	origin := vs[0]
	v1 := geom.Normalize(geom.Sub(vs[1], origin))
	for i := 2; i < len(vs); i++ {
		v2 := geom.Normalize(geom.Sub(vs[i], origin))
		v3 := geom.Cross(v1, v2)
		if geom.Norm(v3) > geom.Eps {
			v3 = geom.Normalize(v3)
			v2 = geom.Normalize(geom.Cross(v3, v1))
			return basis{v1: v1, v2: v2, v3: v3, origin: origin}, nil
		}
	}
	return basis{}, fmt.Errorf("triangulate.buildBasis: %w", ErrDegenerateGeometry)
}

// project applies step 4: rotate p into the face's local frame and drop the
// (now near-zero) third coordinate.
func (b basis) project(p [3]float64) [2]float64 {
	rel := geom.Sub(p, b.origin)
	return [2]float64{geom.Dot(rel, b.v1), geom.Dot(rel, b.v2)}
}

// to3 widens a 2 or 3-component row to [3]float64.
func to3(row []float64) [3]float64 {
	if len(row) == 3 {
		return [3]float64{row[0], row[1], row[2]}
	}
	return [3]float64{row[0], row[1], 0}
}

// FaceArea reconstructs the face's cycle from a signed chain and copEV,
// projects it to its own plane, and sums the signed triangle areas of the
// fan (v0, vi, vi+1). The sign of the result reveals orientation.
func FaceArea(v core.Vertices, copEV *matrix.ChainOp, faceChain []int) (float64, error) {
	cycles, err := cycle.WalkSigned(copEV, faceChain)
	if err != nil {
		return 0, fmt.Errorf("triangulate.FaceArea: %w", err)
	}
	fv := cycles[0]
	vs3 := make([][3]float64, len(fv))
	for i, idx := range fv {
		vs3[i] = to3(v[idx])
	}
	b, err := buildBasis(vs3)
	if err != nil {
		return 0, fmt.Errorf("triangulate.FaceArea: %w", err)
	}
	pts := make([][2]float64, len(fv))
	for i, p := range vs3 {
		pts[i] = b.project(p)
	}
	return fanArea(pts), nil
}

// fanArea sums signed triangle areas of the fan (p0, pi, pi+1), equal to
// the shoelace signed area of the polygon regardless of the apex chosen.
func fanArea(pts [][2]float64) float64 {
	if len(pts) < 3 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(pts)-1; i++ {
		total += geom.TriangleArea(pts[0], pts[i], pts[i+1])
	}
	return total
}

// Face runs the full 7-step triangulation of face faceIdx of copFE against
// V and copEV, using t as the constrained-triangulation collaborator. It
// returns triangles as triples of *original* vertex indices, reversed as
// needed so their summed signed planar area is non-negative.
func Face(v core.Vertices, copEV, copFE *matrix.ChainOp, faceIdx int, t Triangulator) ([][3]int, error) {
	// Step 1: recover the ordered cycle via variant 1.
	chainCols, chainSigns, err := copFE.RowNonzeros(faceIdx)
	if err != nil {
		return nil, fmt.Errorf("triangulate.Face: face %d: %w", faceIdx, err)
	}
	sparse := make(map[int]int, len(chainCols))
	for i, c := range chainCols {
		sparse[c] = chainSigns[i]
	}
	cycles, err := cycle.WalkSparse(copEV, sparse)
	if err != nil {
		return nil, fmt.Errorf("triangulate.Face: face %d: %w", faceIdx, err)
	}
	fv := cycles[0]
	if len(fv) < 3 {
		return nil, fmt.Errorf("triangulate.Face: face %d: %w", faceIdx, ErrTooFewVertices)
	}

	// Step 2: gather coordinates.
	vs3 := make([][3]float64, len(fv))
	for i, idx := range fv {
		vs3[i] = to3(v[idx])
	}

	// Step 3+4: orthonormal basis and rotation to 2D.
	b, err := buildBasis(vs3)
	if err != nil {
		return nil, fmt.Errorf("triangulate.Face: face %d: %w", faceIdx, err)
	}
	pts2D := make([][2]float64, len(fv))
	for i, p := range vs3 {
		pts2D[i] = b.project(p)
	}

	// Step 5: constraint edges, consecutive fv pairs wrapping last to first.
	n := len(fv)
	constraints := make([][2]int, n)
	for i := 0; i < n; i++ {
		constraints[i] = [2]int{i, (i + 1) % n}
	}

	// Step 6: external constrained triangulation, labeled by original index.
	tris, err := t.Triangulate(pts2D, fv, constraints)
	if err != nil {
		return nil, fmt.Errorf("triangulate.Face: face %d: %w", faceIdx, err)
	}

	// Step 7: orientation fix-up from the signed planar area of the face.
	if fanArea(pts2D) < 0 {
		for i, tri := range tris {
			tris[i] = [3]int{tri[0], tri[2], tri[1]}
		}
	}
	return tris, nil
}
