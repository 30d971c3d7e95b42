package classify

// Classification is the 3-valued result of classifying a point against a
// planar face.
type Classification int

const (
	Outside Classification = iota
	Inside
	OnBoundary
)

func (c Classification) String() string {
	switch c {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on-boundary"
	default:
		return "outside"
	}
}

// tileCode assigns a point q a 4-bit region code relative to p: bit0 if
// q.y>p.y, bit1 if q.y<p.y, bit2 if q.x>p.x, bit3 if q.x<p.x. Code 0 means q
// coincides with p in both coordinates.
func tileCode(p, q [2]float64) int {
	code := 0
	if q[1] > p[1] {
		code |= 1
	}
	if q[1] < p[1] {
		code |= 2
	}
	if q[0] > p[0] {
		code |= 4
	}
	if q[0] < p[0] {
		code |= 8
	}
	return code
}

// crossingTest implements the horizontal-grazing status machine for edges
// that touch the query point's row: the first touch records newStatus and
// adds a half vote, a later touch with the same status adds another half
// vote, and a touch with a different status resets the status to 0 and
// takes a half vote back. oldStatus is not consulted.
func crossingTest(newStatus, oldStatus int, status *int, count *float64) {
	if *status == 0 {
		*status = newStatus
		*count += 0.5
		return
	}
	if *status == newStatus {
		*count += 0.5
		return
	}
	*status = 0
	*count -= 0.5
	_ = oldStatus
}

// Classify tests point p against the closed polygon face (vertices in
// boundary order, edges implied by consecutive pairs wrapping last to
// first), per the tile-code crossing-number decision table.
func Classify(p [2]float64, face [][2]float64) Classification {
	n := len(face)
	if n < 3 {
		return Outside
	}

	count := 0.0
	status := 0

	for i := 0; i < n; i++ {
		v1 := face[i]
		v2 := face[(i+1)%n]
		c1 := tileCode(p, v1)
		c2 := tileCode(p, v2)
		cEdge := c1 ^ c2
		cUn := c1 | c2
		cInt := c1 & c2

		switch {
		case cEdge == 0 && cUn == 0:
			return OnBoundary
		case cEdge == 12 && cUn == cEdge:
			return OnBoundary
		case cEdge == 3:
			if cInt == 0 {
				return OnBoundary
			}
			if cInt == 4 {
				count += 1
			}
		case cEdge == 15:
			xInt := v2[0] + (p[1]-v2[1])*(v1[0]-v2[0])/(v1[1]-v2[1])
			if xInt > p[0] {
				count += 1
			} else if xInt == p[0] {
				return OnBoundary
			}
		case (cEdge == 13 || cEdge == 14) && (c1 == 4 || c2 == 4):
			if cEdge == 13 {
				crossingTest(1, 2, &status, &count)
			} else {
				crossingTest(2, 1, &status, &count)
			}
		case cEdge == 7:
			count += 1
		case cEdge == 11:
			// count unchanged
		case (cEdge == 1 || cEdge == 2) && cInt == 0:
			return OnBoundary
		case (cEdge == 1 || cEdge == 2) && cInt == 4:
			if cEdge == 1 {
				crossingTest(1, 2, &status, &count)
			} else {
				crossingTest(2, 1, &status, &count)
			}
		case (cEdge == 4 || cEdge == 8) && cUn == cEdge:
			return OnBoundary
		case cEdge == 5 || cEdge == 6:
			if c1 == 0 || c2 == 0 {
				return OnBoundary
			}
			if cEdge == 5 {
				crossingTest(1, 2, &status, &count)
			} else {
				crossingTest(2, 1, &status, &count)
			}
		case (cEdge == 9 || cEdge == 10) && (c1 == 0 || c2 == 0):
			return OnBoundary
		}
	}

	if isOdd(count) {
		return Inside
	}
	return Outside
}

func isOdd(count float64) bool {
	r := int(count + 0.5)
	if count < 0 {
		r = int(count - 0.5)
	}
	return r%2 != 0
}

// ClassifyTranslated classifies p against face after shifting every face
// vertex by (dx, 0); used to probe ray independence away from grid-aligned
// degeneracies without mutating the caller's face.
func ClassifyTranslated(p [2]float64, face [][2]float64, dx float64) Classification {
	shifted := make([][2]float64, len(face))
	for i, v := range face {
		shifted[i] = [2]float64{v[0] + dx, v[1]}
	}
	return Classify(p, shifted)
}
