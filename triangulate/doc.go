// Package triangulate projects a planar cellular face into 2D, drives a
// constrained triangulation of its boundary, and repairs orientation from
// signed planar area.
//
// The constrained-triangulation primitive itself is an external
// collaborator (interface Triangulator); this package only owns the
// projection, constraint-edge bookkeeping, and the orientation fix-up of
// step 7. NaiveTriangulator is a simple-polygon ear-clipping fallback kept
// for standalone testing; production callers inject a real constrained
// triangulator.
package triangulate
