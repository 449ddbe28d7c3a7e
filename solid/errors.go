package solid

import "errors"

var (
	// ErrUnknownName indicates a seed-solid name outside the fixed Platonic
	// catalog (TETRAHEDRON, CUBE, OCTAHEDRON, ICOSAHEDRON, DODECAHEDRON).
	ErrUnknownName = errors.New("solid: unknown seed solid name")
	// ErrEmptyVertices indicates a reconstruction was attempted from an
	// empty vertex table.
	ErrEmptyVertices = errors.New("solid: vertex table is empty")
	// ErrEmptyFaces indicates a reconstruction was attempted from an empty
	// face table.
	ErrEmptyFaces = errors.New("solid: face table is empty")
	// ErrFaceVertexIndex indicates a face references a vertex index outside
	// the bounds of the vertex table.
	ErrFaceVertexIndex = errors.New("solid: face references out-of-range vertex index")
	// ErrNonPositiveEdgeLength indicates GetTessLevel was asked to operate
	// on a non-positive edge length in degrees.
	ErrNonPositiveEdgeLength = errors.New("solid: edge length must be positive")
)
