// Package meshio reads and writes the minimal Wavefront mesh subset used to
// exchange cellular complexes: "v x y z" vertex lines, "f i j k [...]"
// 1-based face lines, and "g name" group lines that the 3D writer uses to
// tag triangles by their owning 3-cell (the reader ignores groups).
//
// Read2D/Write2D round-trip a 2-skeleton (V, copEV, copFE); Read3D/Write3D
// additionally round-trip copCF. Both pairs share a private line tokenizer,
// the same two-way adapter shape the rest of the corpus uses for paired
// ToX/FromX conversions.
package meshio
