// Package geom provides the small set of coordinate-arithmetic primitives
// shared by the rest of larcx: bounding boxes, tolerant vertex equality,
// signed triangle area, and the 3-vector helpers used to build the planar
// basis in package triangulate.
//
// Every comparison in this package uses the fixed absolute tolerance Eps.
// That tolerance is not transitive: a pairwise union over tolerant
// equality groups vertices by the transitive closure of the relation, so
// one group can join points much farther apart than Eps.
// arrange.ToleranceMergeVertices, the default arrange.MergeVertices, is
// such a pairwise union; it does not do a single-pass sweep.
package geom
