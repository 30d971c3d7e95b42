package cycle

import "errors"

var (
	// ErrMalformedComplex indicates a face cycle could not close: the
	// orbit of tail->head arcs is not a permutation on the face's edges,
	// or an edge referenced by the face is absent from copEV.
	ErrMalformedComplex = errors.New("cycle: malformed complex, cycle does not close")

	// ErrAmbiguousTraversal indicates the unsigned walk (variant 2) found
	// no valid next edge before the start vertex recurred.
	ErrAmbiguousTraversal = errors.New("cycle: no valid next edge in unsigned walk")

	// ErrEmptyFace indicates an empty face was given to a walker.
	ErrEmptyFace = errors.New("cycle: face has no vertices or edges")
)
