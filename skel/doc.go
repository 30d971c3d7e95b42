// Package skel operates directly on vertex/incidence skeletons: merging two
// skeletons block-diagonally, and cascading deletion of edges or vertices
// so no incidence operator is left referencing a cell that no longer
// exists.
//
// Deletion here mirrors a graph's RemoveVertex/RemoveEdge being symmetric,
// cascading operations rather than one being derived from the other:
// DeleteEdges starts from the edge side and cascades down to orphaned
// vertices, DeleteVertices starts from the vertex side and cascades up to
// incident edges.
package skel
