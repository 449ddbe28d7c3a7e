package region_test

import (
	"testing"

	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/region"
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
	"github.com/stretchr/testify/require"
)

func TestSphericalCapContains(t *testing.T) {
	cap, err := region.NewSphericalCap(vecmath.Vec{Z: 1}, 0.2)
	require.NoError(t, err)
	require.True(t, cap.Contains(vecmath.Vec{Z: 1}))
	require.False(t, cap.Contains(vecmath.Vec{X: 1}))
	require.Equal(t, []vecmath.Vec{vecmath.Unit(vecmath.Vec{Z: 1})}, cap.Points())
}

func TestSphericalCapInvalidRadius(t *testing.T) {
	_, err := region.NewSphericalCap(vecmath.Vec{Z: 1}, 0)
	require.ErrorIs(t, err, region.ErrInvalidRadius)
}

func TestSphericalPolygonTooFewVertices(t *testing.T) {
	_, err := region.NewSphericalPolygon([]vecmath.Vec{{X: 1}, {Y: 1}})
	require.ErrorIs(t, err, region.ErrEmptyPolygon)
}

func TestSphericalPolygonContainsSeedFace(t *testing.T) {
	seed, err := solid.New(solid.Octahedron)
	require.NoError(t, err)
	face := seed.Faces[0]
	poly, err := region.NewSphericalPolygon([]vecmath.Vec{
		seed.Vertices[face[0]], seed.Vertices[face[1]], seed.Vertices[face[2]],
	})
	require.NoError(t, err)

	center := vecmath.Unit(vecmath.Add(vecmath.Add(seed.Vertices[face[0]], seed.Vertices[face[1]]), seed.Vertices[face[2]]))
	require.True(t, poly.Contains(center))

	opposite := vecmath.Scale(-1, center)
	require.False(t, poly.Contains(opposite))
}

type fixedPolicy struct{}

func (fixedPolicy) IsDivisible(ts *mesh.Tessellation, t mesh.TriangleID) bool {
	return ts.TessLevel(t) < 1
}
func (fixedPolicy) PopulateNodes(ts *mesh.Tessellation, level int) {}

func TestMarkVerticesSequential(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	ts := mesh.New(seed, fixedPolicy{})
	require.NoError(t, ts.Build())

	cap, err := region.NewSphericalCap(ts.VertexPos(0), 0.3)
	require.NoError(t, err)

	region.MarkVertices(ts, 0, cap, 1)
	require.True(t, ts.IsMarked(0))
}
