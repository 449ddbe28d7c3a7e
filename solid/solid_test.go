package solid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
)

func TestIcosahedronShape(t *testing.T) {
	s, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	require.Len(t, s.Vertices, 12)
	require.Len(t, s.Faces, 20)
	for _, v := range s.Vertices {
		require.InDelta(t, 1, vecmath.Dot(v, v), 1e-9)
	}
}

func TestDodecahedronIsIcosahedronDual(t *testing.T) {
	s, err := solid.New(solid.Dodecahedron)
	require.NoError(t, err)
	require.Len(t, s.Vertices, 20)
	require.Len(t, s.Faces, 36) // 12 pentagons fanned into 3 triangles each
	for _, v := range s.Vertices {
		require.InDelta(t, 1, vecmath.Dot(v, v), 1e-9)
	}
}

func TestCubeTriangulated(t *testing.T) {
	s, err := solid.New(solid.Cube)
	require.NoError(t, err)
	require.Len(t, s.Vertices, 8)
	require.Len(t, s.Faces, 12)
}

func TestTetrahedronAndOctahedron(t *testing.T) {
	tet, err := solid.New(solid.Tetrahedron)
	require.NoError(t, err)
	require.Len(t, tet.Faces, 4)

	oct, err := solid.New(solid.Octahedron)
	require.NoError(t, err)
	require.Len(t, oct.Faces, 8)
}

func TestParseNameRoundTrip(t *testing.T) {
	for _, n := range []solid.Name{solid.Tetrahedron, solid.Cube, solid.Octahedron, solid.Icosahedron, solid.Dodecahedron} {
		parsed, err := solid.ParseName(n.String())
		require.NoError(t, err)
		require.Equal(t, n, parsed)
	}
	_, err := solid.ParseName("SPHERE")
	require.ErrorIs(t, err, solid.ErrUnknownName)
}

func TestGetTessLevel(t *testing.T) {
	level, err := solid.GetTessLevel(64)
	require.NoError(t, err)
	require.Equal(t, 0, level)

	level, err = solid.GetTessLevel(16)
	require.NoError(t, err)
	require.Equal(t, 2, level)

	_, err = solid.GetTessLevel(0)
	require.ErrorIs(t, err, solid.ErrNonPositiveEdgeLength)
}

func TestFromLevelZeroRejectsBadIndex(t *testing.T) {
	_, err := solid.FromLevelZero([]vecmath.Vec{{X: 1}}, [][3]int{{0, 1, 0}})
	require.ErrorIs(t, err, solid.ErrFaceVertexIndex)
}

func TestRotateLatLonMovesVertexZero(t *testing.T) {
	s, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	s.RotateLatLon(10, 20)
	want := vecmath.LatLonToUnit(10, 20)
	require.InDelta(t, 1, vecmath.Dot(s.Vertices[0], want), 1e-9)
}
