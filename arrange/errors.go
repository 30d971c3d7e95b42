package arrange

import "errors"

var (
	// ErrNoFaces indicates an arrangement was requested over a complex with
	// no faces to fragment.
	ErrNoFaces = errors.New("arrange: complex has no faces")

	// ErrCollaboratorNil indicates one of the required external collaborator
	// functions (index, fragmenter, vertex-merge, 3-cycle extractor) was nil.
	ErrCollaboratorNil = errors.New("arrange: required collaborator is nil")

	// ErrMalformedEdge indicates a copEV row did not have exactly two
	// nonzero columns.
	ErrMalformedEdge = errors.New("arrange: edge row does not have two endpoints")
)
