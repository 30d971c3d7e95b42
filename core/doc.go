// Package core is the data-model foundation of larcx, a library for
// building and manipulating cellular complexes through sparse signed
// incidence (boundary/coboundary) operators.
//
//	  • Vertices   — the ordered 2D/3D point array, 0-based in Go, 1-based
//	                 at the Wavefront mesh boundary (package meshio).
//	  • CellList   — ordered lists of vertex indices: edges as pairs,
//	                 faces as boundary traversals.
//	  • Face       — a tagged union over the three shapes the face-cycle
//	                 extractor (package cycle) knows how to walk.
//
// Everything downstream builds on these three types:
//
//	geom/        — bounding boxes, tolerant vertex equality, triangle area
//	matrix/      — sparse ChainOp incidence operators (copEV, copFE, copCF)
//	cycle/       — ordered face-boundary recovery from incidences
//	triangulate/ — planar projection + constrained triangulation
//	classify/    — point-in-face tile-code classification
//	skel/        — 1-/2-skeleton merge and edge/vertex deletion
//	meshio/      — minimal indexed-face text format
//	arrange/     — 3D spatial arrangement orchestration
//
// Operators are immutable per logical stage: a stage takes operators plus
// Vertices and produces new operators plus Vertices. There is no in-place
// mutation exposed through any public contract in this module.
package core
