// Package cycle recovers the ordered vertex cycle of a face from its
// incidences with the vertex->edge operator (package matrix). Three
// variants share one output contract — a single closed boundary traversal,
// consistent orientation, no repeated start vertex — and differ only in
// what input shape they accept:
//
//	WalkSigned  — a signed edge chain (copFE row), the primary variant used
//	              by package triangulate.
//	WalkUnsigned — an unordered list of face vertices, used when only raw
//	              incidences (no signs) are known.
//	WalkSparse  — a sparse signed edge vector, structurally identical to
//	              WalkSigned but addressed by edge index rather than a
//	              dense per-edge array.
//
// A face with holes decomposes into more than one orbit under WalkSigned;
// callers that need every boundary component (not just the outer one) must
// use the full []​[]int result rather than assume a single cycle.
package cycle
