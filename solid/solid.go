package solid

import (
	"fmt"
	"math"

	"github.com/geotess-go/geotess/vecmath"
)

// Name identifies one of the fixed Platonic seed solids.
type Name int

const (
	Tetrahedron Name = iota
	Cube
	Octahedron
	Icosahedron
	Dodecahedron
)

// String renders the solid name the way a tessellation directive spells it.
func (n Name) String() string {
	switch n {
	case Tetrahedron:
		return "TETRAHEDRON"
	case Cube:
		return "CUBE"
	case Octahedron:
		return "OCTAHEDRON"
	case Icosahedron:
		return "ICOSAHEDRON"
	case Dodecahedron:
		return "DODECAHEDRON"
	default:
		return fmt.Sprintf("Name(%d)", int(n))
	}
}

// Solid holds a seed polyhedron's unit-vector vertices and its
// already-triangulated, clockwise-from-outside faces. Faces are always
// triangles: non-triangular Platonic faces are fanned from their first
// corner at construction time.
type Solid struct {
	Vertices []vecmath.Vec
	Faces    [][3]int
}

// New builds the named seed solid fresh from the fixed catalog.
func New(name Name) (*Solid, error) {
	switch name {
	case Tetrahedron:
		return tetrahedron(), nil
	case Cube:
		return cube(), nil
	case Octahedron:
		return octahedron(), nil
	case Icosahedron:
		return icosahedron(), nil
	case Dodecahedron:
		return dodecahedron(), nil
	default:
		return nil, fmt.Errorf("solid.New(%d): %w", int(name), ErrUnknownName)
	}
}

// ParseName maps a directive's solid name string to its Name constant
// against the fixed five-solid catalog.
func ParseName(s string) (Name, error) {
	switch s {
	case "TETRAHEDRON":
		return Tetrahedron, nil
	case "CUBE":
		return Cube, nil
	case "OCTAHEDRON":
		return Octahedron, nil
	case "ICOSAHEDRON":
		return Icosahedron, nil
	case "DODECAHEDRON":
		return Dodecahedron, nil
	default:
		return 0, fmt.Errorf("solid.ParseName(%q): %w", s, ErrUnknownName)
	}
}

// FromLevelZero reconstructs a Solid from an existing grid's level-0 vertex
// and triangle tables, copied verbatim.
func FromLevelZero(vertices []vecmath.Vec, faces [][3]int) (*Solid, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyVertices
	}
	if len(faces) == 0 {
		return nil, ErrEmptyFaces
	}
	v := make([]vecmath.Vec, len(vertices))
	copy(v, vertices)
	f := make([][3]int, len(faces))
	for i, face := range faces {
		for k := 0; k < 3; k++ {
			if face[k] < 0 || face[k] >= len(vertices) {
				return nil, fmt.Errorf("solid.FromLevelZero: face %d corner %d: %w", i, k, ErrFaceVertexIndex)
			}
		}
		f[i] = face
	}
	return &Solid{Vertices: v, Faces: f}, nil
}

// Clone returns a deep copy, so callers can rotate one instance without
// disturbing another tessellation's seed.
func (s *Solid) Clone() *Solid {
	v := make([]vecmath.Vec, len(s.Vertices))
	copy(v, s.Vertices)
	f := make([][3]int, len(s.Faces))
	copy(f, s.Faces)
	return &Solid{Vertices: v, Faces: f}
}

// RotateLatLon rotates the solid so that Vertices[0] moves to (latDeg,
// lonDeg), via the axis-angle shortcut (vecmath.RotationToPlaceAt).
func (s *Solid) RotateLatLon(latDeg, lonDeg float64) {
	rot := vecmath.RotationToPlaceAt(s.Vertices[0], latDeg, lonDeg)
	s.applyMatrix(rot)
}

// RotateEuler rotates the solid by explicit Z-Y-Z Euler angles, in degrees.
func (s *Solid) RotateEuler(e vecmath.EulerAngles) {
	s.applyMatrix(e.Rotate)
}

// RotateMatrix rotates the solid by an already-built rotation function.
func (s *Solid) RotateMatrix(m vecmath.EulerMatrix) {
	s.applyMatrix(m)
}

func (s *Solid) applyMatrix(m vecmath.EulerMatrix) {
	for i, v := range s.Vertices {
		s.Vertices[i] = vecmath.Unit(m(v))
	}
}

// EdgeLength returns the great-circle length, in radians, of the seed's
// first edge after nSubdivisions uniform quad splits: acos(v0·v1) / 2^n.
func (s *Solid) EdgeLength(nSubdivisions int) float64 {
	f := s.Faces[0]
	base := vecmath.Angle(s.Vertices[f[0]], s.Vertices[f[1]])
	return base / math.Pow(2, float64(nSubdivisions))
}

// GetTessLevel converts a target edge length, in degrees, to the
// corresponding base tessellation level: round(log2(64/lenDeg)).
func GetTessLevel(lenDeg float64) (int, error) {
	if lenDeg <= 0 {
		return 0, ErrNonPositiveEdgeLength
	}
	return int(math.Round(math.Log2(64 / lenDeg))), nil
}

func tetrahedron() *Solid {
	verts := []vecmath.Vec{
		vecmath.Unit(vecmath.Vec{X: 1, Y: 1, Z: 1}),
		vecmath.Unit(vecmath.Vec{X: 1, Y: -1, Z: -1}),
		vecmath.Unit(vecmath.Vec{X: -1, Y: 1, Z: -1}),
		vecmath.Unit(vecmath.Vec{X: -1, Y: -1, Z: 1}),
	}
	faces := [][3]int{
		{0, 2, 1},
		{0, 1, 3},
		{0, 3, 2},
		{1, 2, 3},
	}
	return &Solid{Vertices: verts, Faces: faces}
}

func octahedron() *Solid {
	verts := []vecmath.Vec{
		{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
	}
	faces := [][3]int{
		{0, 4, 2}, {2, 4, 1}, {1, 4, 3}, {3, 4, 0},
		{2, 5, 0}, {1, 5, 2}, {3, 5, 1}, {0, 5, 3},
	}
	return &Solid{Vertices: verts, Faces: faces}
}

func cube() *Solid {
	s := 1 / math.Sqrt(3)
	verts := []vecmath.Vec{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // bottom (z=-s), viewed from outside (below)
		{4, 5, 6, 7}, // top (z=+s)
		{0, 1, 5, 4}, // y=-s face
		{1, 2, 6, 5}, // x=+s face
		{2, 3, 7, 6}, // y=+s face
		{3, 0, 4, 7}, // x=-s face
	}
	// The quads above are listed counter-clockwise from outside; the fan
	// reverses them so every emitted triangle is clockwise from outside.
	var faces [][3]int
	for _, q := range quads {
		faces = append(faces, [3]int{q[0], q[2], q[1]}, [3]int{q[0], q[3], q[2]})
	}
	return &Solid{Vertices: verts, Faces: faces}
}

// icosahedron returns the 12-vertex, 20-face icosahedron using the standard
// golden-ratio coordinates.
func icosahedron() *Solid {
	const (
		x = 0.525731112119133606
		z = 0.850650808352039932
	)
	verts := []vecmath.Vec{
		{X: -x, Y: 0, Z: z}, {X: x, Y: 0, Z: z}, {X: -x, Y: 0, Z: -z}, {X: x, Y: 0, Z: -z},
		{X: 0, Y: z, Z: x}, {X: 0, Y: z, Z: -x}, {X: 0, Y: -z, Z: x}, {X: 0, Y: -z, Z: -x},
		{X: z, Y: x, Z: 0}, {X: -z, Y: x, Z: 0}, {X: z, Y: -x, Z: 0}, {X: -z, Y: -x, Z: 0},
	}
	faces := [][3]int{
		{0, 4, 1}, {0, 9, 4}, {9, 5, 4}, {4, 5, 8}, {4, 8, 1},
		{8, 10, 1}, {8, 3, 10}, {5, 3, 8}, {5, 2, 3}, {2, 7, 3},
		{7, 10, 3}, {7, 6, 10}, {7, 11, 6}, {11, 0, 6}, {0, 1, 6},
		{6, 1, 10}, {9, 0, 11}, {9, 11, 2}, {9, 2, 5}, {7, 2, 11},
	}
	return &Solid{Vertices: verts, Faces: faces}
}

// dodecahedron builds the dodecahedron as the exact combinatorial dual of
// the icosahedron: each dual vertex is the (normalized) centroid of one
// icosahedron face, and each dual face is the cyclic fan, around one
// icosahedron vertex, of the faces incident to it.
func dodecahedron() *Solid {
	ico := icosahedron()

	dualVerts := make([]vecmath.Vec, len(ico.Faces))
	for i, f := range ico.Faces {
		centroid := vecmath.Add(vecmath.Add(ico.Vertices[f[0]], ico.Vertices[f[1]]), ico.Vertices[f[2]])
		dualVerts[i] = vecmath.Unit(centroid)
	}

	// directedEdgeFace[a][b] = index of the icosahedron face whose cyclic
	// corner order contains the directed edge a->b.
	directedEdgeFace := make(map[[2]int]int, 3*len(ico.Faces))
	for fi, f := range ico.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			directedEdgeFace[[2]int{a, b}] = fi
		}
	}
	cornerAfter := func(face [3]int, v int) int {
		for k := 0; k < 3; k++ {
			if face[k] == v {
				return face[(k+1)%3]
			}
		}
		panic("solid: vertex not found in face")
	}

	var dualFaces [][3]int
	for v := 0; v < len(ico.Vertices); v++ {
		var incident []int
		for fi, f := range ico.Faces {
			if f[0] == v || f[1] == v || f[2] == v {
				incident = append(incident, fi)
			}
		}
		// Walk the fan of faces around v in cyclic order using the
		// directed-edge map: the face across edge (x,v) continues the fan.
		ring := make([]int, 0, len(incident))
		cur := incident[0]
		x := cornerAfter(ico.Faces[cur], v)
		for i := 0; i < len(incident); i++ {
			ring = append(ring, cur)
			next, ok := directedEdgeFace[[2]int{x, v}]
			if !ok {
				panic("solid: non-manifold icosahedron seed")
			}
			cur = next
			x = cornerAfter(ico.Faces[cur], v)
		}
		// Fan-triangulate the pentagon ring[0..4] from ring[0]. The ring runs
		// counter-clockwise from outside, so each fan triangle reverses it.
		for k := 1; k+1 < len(ring); k++ {
			dualFaces = append(dualFaces, [3]int{ring[0], ring[k+1], ring[k]})
		}
	}

	return &Solid{Vertices: dualVerts, Faces: dualFaces}
}
