// Package larcx is a small cellular-complex geometry core: chain-complex
// algebra over sparse signed incidence operators, face-boundary cycle
// recovery, constrained-triangulation projection, point-in-face
// classification, and the skeleton/mesh-IO/arrangement plumbing around
// them.
//
// The library is organized as one package per concern, each with its own
// doc.go and testify-based tests, and sentinel errors where the package
// has failure modes (core keeps its sentinels in types.go; geom and
// classify have none):
//
//	core/        — vertex set, cell lists, the tagged Face variant
//	geom/        — coordinate primitives (bbox, triangle area, vector ops)
//	matrix/      — ChainOp, the sparse signed incidence operator, and its builders
//	cycle/       — the three face-boundary cycle extraction variants
//	triangulate/ — planar projection and constrained-triangulation driver
//	classify/    — tile-code crossing-number point classification
//	skel/        — skeleton merge and cascading edge/vertex deletion
//	meshio/      — minimal Wavefront-subset mesh reader/writer
//	arrange/     — the 3D spatial arrangement orchestrator
//
// External geometry engines (planar arrangement, face fragmentation, the
// constrained-triangulation primitive itself, the minimal-3-cycles
// extractor) are consumed through narrow interfaces rather than
// implemented here; larcx owns the chain-complex bookkeeping around them.
package larcx
