package triangulate

import "errors"

var (
	// ErrDegenerateGeometry indicates every candidate planar-basis vector
	// was parallel (a collinear face) or the face has zero area.
	ErrDegenerateGeometry = errors.New("triangulate: degenerate or collinear face")

	// ErrTooFewVertices indicates a face cycle with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("triangulate: face needs at least 3 vertices")
)
