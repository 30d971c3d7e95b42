package meshio

import "errors"

var (
	// ErrIOFormat indicates a line did not match any recognized record type,
	// or a recognized record was malformed (wrong field count, bad number).
	ErrIOFormat = errors.New("meshio: malformed mesh record")

	// ErrNoFaces indicates a 3D mesh with no faces: Read3D found no "f"
	// lines, or Write3D was given a copCF with no 3-cell rows.
	ErrNoFaces = errors.New("meshio: no faces to write")
)
