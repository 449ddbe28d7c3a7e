package mesh_test

import (
	"testing"

	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/solid"
	"github.com/stretchr/testify/require"
)

// uniformPolicy subdivides every triangle up to a fixed level and marks no
// vertices; it is the simplest possible mesh.Policy, used here to exercise
// Build without depending on package refine.
type uniformPolicy struct{ levels int }

func (p uniformPolicy) IsDivisible(ts *mesh.Tessellation, t mesh.TriangleID) bool {
	return ts.TessLevel(t) < p.levels
}

func (p uniformPolicy) PopulateNodes(ts *mesh.Tessellation, level int) {}

func buildIcosahedron(t *testing.T, levels int) *mesh.Tessellation {
	t.Helper()
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	ts := mesh.New(seed, uniformPolicy{levels: levels})
	require.NoError(t, ts.Build())
	return ts
}

func TestBuildIcosahedronLevel0(t *testing.T) {
	ts := buildIcosahedron(t, 0)
	require.Equal(t, 1, ts.NumLevels())
	require.Equal(t, 12, ts.NumVertices())
	require.Len(t, ts.LevelTriangles(0), 20)
}

func TestBuildIcosahedronLevel1(t *testing.T) {
	ts := buildIcosahedron(t, 1)
	require.Equal(t, 2, ts.NumLevels())
	require.Len(t, ts.LevelTriangles(1), 80)
	// 12 original + 30 edge midpoints.
	require.Equal(t, 42, ts.NumVertices())
}

func TestBuildValidatesClean(t *testing.T) {
	ts := buildIcosahedron(t, 2)
	require.NoError(t, ts.Validate())
}

func TestBuildLevel0NeighborsResolved(t *testing.T) {
	ts := buildIcosahedron(t, 0)
	for _, tID := range ts.LevelTriangles(0) {
		for i := 0; i < 3; i++ {
			require.NotEqual(t, mesh.NoTriangle, ts.Neighbor(tID, i))
			require.NotEqual(t, mesh.NoEdge, ts.TriangleEdge(tID, i))
		}
	}
}

func TestFindTriangleLocatesCenter(t *testing.T) {
	ts := buildIcosahedron(t, 1)
	top := ts.LevelTriangles(1)[0]
	center := ts.Center(top)
	found, err := ts.FindTriangle(top, center)
	require.NoError(t, err)
	require.Equal(t, top, found)
}

func TestFindVertexLocatesCorner(t *testing.T) {
	ts := buildIcosahedron(t, 0)
	tID := ts.LevelTriangles(0)[0]
	corner := ts.Corners(tID)[0]
	pos := ts.VertexPos(corner)
	v, ok, err := ts.FindVertex(tID, pos)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, corner, v)
}

func TestBuildNoSeedFails(t *testing.T) {
	ts := mesh.New(nil, uniformPolicy{levels: 0})
	require.ErrorIs(t, ts.Build(), mesh.ErrNoSeed)
}

func TestBuildNoPolicyFails(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	ts := mesh.New(seed, nil)
	require.ErrorIs(t, ts.Build(), mesh.ErrNoPolicy)
}
