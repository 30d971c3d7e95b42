package triangulate

import "fmt"

// Triangulator is the narrow interface onto the external constrained
// triangulation primitive: given 2D points with integer labels and a set
// of constraint edges (indices into points), it returns triangles as
// triples of labels. larcx never implements the real algorithm; callers
// inject one (e.g. a Delaunay refiner) and get NaiveTriangulator for tests.
type Triangulator interface {
	Triangulate(points [][2]float64, labels []int, constraints [][2]int) ([][3]int, error)
}

// NaiveTriangulator triangulates a simple polygon (its boundary given in
// order, no interior Steiner points) by ear clipping. It ignores
// constraints beyond the implicit polygon boundary and is meant only as a
// standalone-testable stand-in for a real constrained triangulator.
type NaiveTriangulator struct{}

// Triangulate implements Triangulator via ear clipping on points, assumed
// to already be in simple-polygon boundary order (as triangulate.Face
// produces). constraints are not consulted; only the lengths of points and
// labels are checked against each other.
func (NaiveTriangulator) Triangulate(points [][2]float64, labels []int, _ [][2]int) ([][3]int, error) {
	n := len(points)
	if n != len(labels) {
		return nil, fmt.Errorf("NaiveTriangulator.Triangulate: points/labels length mismatch")
	}
	if n < 3 {
		return nil, ErrTooFewVertices
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris [][3]int
	guard := 0
	for len(idx) > 2 && guard < n*n+8 {
		guard++
		clipped := false
		m := len(idx)
		for i := 0; i < m; i++ {
			a, b, c := idx[(i+m-1)%m], idx[i], idx[(i+1)%m]
			if isEar(points, idx, a, b, c) {
				tris = append(tris, [3]int{labels[a], labels[b], labels[c]})
				idx = append(append([]int{}, idx[:i]...), idx[i+1:]...)
				clipped = true
				break
			}
		}
		if !clipped {
			break
		}
	}
	if len(idx) > 2 {
		return nil, ErrDegenerateGeometry
	}
	return tris, nil
}

func isEar(points [][2]float64, idx []int, a, b, c int) bool {
	area := signedArea(points[a], points[b], points[c])
	if area <= 0 {
		return false
	}
	for _, p := range idx {
		if p == a || p == b || p == c {
			continue
		}
		if pointInTriangle(points[p], points[a], points[b], points[c]) {
			return false
		}
	}
	return true
}

func signedArea(p1, p2, p3 [2]float64) float64 {
	return 0.5 * ((p2[0]-p1[0])*(p3[1]-p1[1]) - (p3[0]-p1[0])*(p2[1]-p1[1]))
}

func pointInTriangle(p, a, b, c [2]float64) bool {
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(p1, p2, p3 [2]float64) float64 {
	return (p1[0]-p3[0])*(p2[1]-p3[1]) - (p2[0]-p3[0])*(p1[1]-p3[1])
}
