// Package classify decides whether a point lies inside, outside, or on the
// boundary of a planar cellular face, by a tile-coded (Cohen-Sutherland
// style) crossing-number test run edge by edge against the face boundary.
//
// The horizontal-grazing state machine that the crossing count needs for
// edges ending exactly on the query point's row is kept as an explicit
// status/count pair threaded through the edge loop, mirroring how the
// algorithm is described as a closure over mutable state: here that state
// is just local variables in Classify instead of captured upvalues.
package classify
