// Package arrange drives the top-level 3D spatial arrangement: fragmenting
// every face of a complex against its geometric neighbors, merging
// duplicate vertices that result, and handing the cleaned 2-skeleton to an
// external 3-cycle extractor to recover copCF.
//
// The planar-arrangement algorithm, the fragmenter, the spatial index, the
// vertex-merge routine, and the 3-cycle extractor are collaborators,
// consumed through the narrow function-typed interfaces declared in
// collaborators.go; arrange owns the orchestration, the worker pool that
// fans fragmentation out across goroutines, and the native
// ConnectedComponentCount sanity check run around the vertex-merge step.
// It also supplies GridSpatialIndex and ToleranceMergeVertices as default
// spatial-index and vertex-merge collaborators, and BiconnectedComponents
// as a standalone 1-skeleton routine.
package arrange
