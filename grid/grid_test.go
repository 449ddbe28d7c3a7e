package grid_test

import (
	"testing"

	"github.com/geotess-go/geotess/grid"
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/refine"
	"github.com/geotess-go/geotess/solid"
	"github.com/stretchr/testify/require"
)

func TestAssembleSingleTessellation(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	ts := mesh.New(seed, refine.NewUniformPolygon(1))
	require.NoError(t, ts.Build())

	g, err := grid.Assemble(seed, []*mesh.Tessellation{ts})
	require.NoError(t, err)
	require.Equal(t, 42, g.NumVertices())
	require.NotEmpty(t, g.ContentHash)
	require.Len(t, g.ContentHash, 32)
	require.NoError(t, g.Validate())
}

func TestAssembleDeterministicHash(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)

	build := func() *grid.Grid {
		ts := mesh.New(seed, refine.NewUniformPolygon(1))
		require.NoError(t, ts.Build())
		g, err := grid.Assemble(seed, []*mesh.Tessellation{ts})
		require.NoError(t, err)
		return g
	}

	g1, g2 := build(), build()
	require.Equal(t, g1.ContentHash, g2.ContentHash)
}

func TestAssembleNoTessellations(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	_, err = grid.Assemble(seed, nil)
	require.ErrorIs(t, err, grid.ErrNoTessellations)
}

func TestAssembleMultipleTessellations(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)

	a := mesh.New(seed, refine.NewUniformPolygon(0))
	require.NoError(t, a.Build())
	b := mesh.New(seed, refine.NewUniformPolygon(1))
	require.NoError(t, b.Build())

	g, err := grid.Assemble(seed, []*mesh.Tessellation{a, b})
	require.NoError(t, err)
	require.Equal(t, 2, g.NumTessellations())
	require.NoError(t, g.Validate())
}

func TestGridSourceReconstructsTessellation(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	ts := mesh.New(seed, refine.NewUniformPolygon(1))
	require.NoError(t, ts.Build())

	g, err := grid.Assemble(seed, []*mesh.Tessellation{ts})
	require.NoError(t, err)

	src, err := g.Source(0)
	require.NoError(t, err)

	rebuilt, err := mesh.NewFromGrid(src, refine.NewUniformPolygon(1))
	require.NoError(t, err)
	require.Equal(t, ts.NumVertices(), rebuilt.NumVertices())
	require.Equal(t, ts.NumLevels(), rebuilt.NumLevels())
}

func TestGridSourceIndexOutOfRange(t *testing.T) {
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	ts := mesh.New(seed, refine.NewUniformPolygon(0))
	require.NoError(t, ts.Build())
	g, err := grid.Assemble(seed, []*mesh.Tessellation{ts})
	require.NoError(t, err)

	_, err = g.Source(5)
	require.ErrorIs(t, err, grid.ErrTessellationIndexOutOfRange)
}
