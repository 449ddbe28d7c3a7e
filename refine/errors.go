package refine

import "errors"

// ErrVertexNotFound indicates a "vertex to refine" could not be located in
// the tessellation being mirrored.
var ErrVertexNotFound = errors.New("refine: vertex to refine not found in source tessellation")

// ErrNoOrig indicates a MirrorExisting policy was constructed with a nil
// source tessellation.
var ErrNoOrig = errors.New("refine: mirror policy has no source tessellation")
