package skel

import "errors"

var (
	// ErrIndexOutOfRange indicates a requested row/vertex index is not
	// present in the skeleton being operated on.
	ErrIndexOutOfRange = errors.New("skel: index out of range")
)
