package merge

import (
	"errors"
	"fmt"
)

// ErrNoInputs indicates Primary was called with no input tessellations.
var ErrNoInputs = errors.New("merge: no input tessellations")

// ErrVertexNotFound is the sentinel every VertexNotFoundError wraps.
var ErrVertexNotFound = errors.New("merge: vertex not found in primary tessellation")

// VertexNotFoundError reports that a specific input vertex had no
// colocated match in the primary tessellation — a bug in the merge
// predicate or a malformed input.
type VertexNotFoundError struct {
	InputIndex  int
	VertexIndex int
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("merge: input %d vertex %d has no match in primary", e.InputIndex, e.VertexIndex)
}

func (e *VertexNotFoundError) Unwrap() error { return ErrVertexNotFound }
