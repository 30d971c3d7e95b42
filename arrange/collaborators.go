package arrange

import (
	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
)

// SpatialIndex maps each face of fe to the indices of candidate neighbor
// faces it might intersect, e.g. a grid-bucket or bounding-volume index.
type SpatialIndex func(v core.Vertices, ev, fe *matrix.ChainOp) ([][]int, error)

// FragFace fragments face σ against the neighbor faces named by idx[σ],
// returning the vertices and incidence rows the fragmentation contributed.
type FragFace func(v core.Vertices, ev, fe *matrix.ChainOp, idx [][]int, face int) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, error)

// MergeVertices deduplicates near-coincident vertices (within tolerance)
// across the accumulated fragments and remaps every incidence accordingly.
type MergeVertices func(v core.Vertices, ev, fe *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, error)

// Minimal3Cycles computes the face->3-cell incidence operator copCF from a
// cleaned 2-skeleton.
type Minimal3Cycles func(v core.Vertices, ev, fe *matrix.ChainOp) (*matrix.ChainOp, error)

// PlanarArrangement computes the planar arrangement of a wire-frame edge
// set, left as an external collaborator per the package's non-goals: no
// native implementation is supplied.
type PlanarArrangement func(v core.Vertices, ew *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, error)
