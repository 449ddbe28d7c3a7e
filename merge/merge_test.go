package merge_test

import (
	"testing"

	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/merge"
	"github.com/geotess-go/geotess/refine"
	"github.com/geotess-go/geotess/solid"
	"github.com/stretchr/testify/require"
)

func TestPrimaryNoInputs(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	_, err = merge.Primary(seed, nil)
	require.ErrorIs(t, err, merge.ErrNoInputs)
}

func TestPrimaryAtLeastAsFineAsInputs(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)

	a := mesh.New(seed, refine.NewUniformPolygon(0))
	require.NoError(t, a.Build())
	b := mesh.New(seed, refine.NewUniformPolygon(1))
	require.NoError(t, b.Build())

	primary, err := merge.Primary(seed, []*mesh.Tessellation{a, b})
	require.NoError(t, err)
	require.NoError(t, primary.Validate())
	require.GreaterOrEqual(t, primary.NumLevels(), b.NumLevels())
}

func TestMergeNodesRewritesReferences(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)

	a := mesh.New(seed, refine.NewUniformPolygon(0))
	require.NoError(t, a.Build())
	b := mesh.New(seed, refine.NewUniformPolygon(1))
	require.NoError(t, b.Build())

	inputs := []*mesh.Tessellation{a, b}
	primary, err := merge.Primary(seed, inputs)
	require.NoError(t, err)

	require.NoError(t, merge.MergeNodes(primary, inputs))

	for _, t0 := range a.LevelTriangles(0) {
		for _, v := range a.Corners(t0) {
			require.Equal(t, primary.VertexPos(v), a.VertexPos(v))
		}
	}
}
