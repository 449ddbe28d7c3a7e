package geotess_test

import (
	"testing"

	geotess "github.com/geotess-go/geotess"
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestBuildRefineMergeAssemblePipeline(t *testing.T) {
	logger := zerolog.Nop()

	seed, err := geotess.BuildSeed(geotess.SeedSpec{Name: solid.Icosahedron})
	require.NoError(t, err)

	base, err := geotess.Build(seed, geotess.TessellationSpec{BaseEdgeLengthDeg: 32}, logger)
	require.NoError(t, err)
	require.NoError(t, base.Validate())

	refined, err := geotess.Refine(seed, base, geotess.RefineSpec{
		VerticesToRefine: []vecmath.Vec{base.VertexPos(0)},
		MaxEdgeLevel:     base.Stats().MaxEdgeLevel + 1,
		MarkThreshold:    1,
	}, logger)
	require.NoError(t, err)
	require.NoError(t, refined.Validate())

	primary, err := geotess.Merge(seed, []*mesh.Tessellation{base, refined}, logger)
	require.NoError(t, err)
	require.NoError(t, primary.Validate())

	g, err := geotess.Assemble(seed, []*mesh.Tessellation{base, refined}, logger)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	require.Len(t, g.ContentHash, 32)
}

func TestBuildSeedRotatesLatLon(t *testing.T) {
	seed, err := geotess.BuildSeed(geotess.SeedSpec{
		Name:   solid.Icosahedron,
		LatLon: &geotess.LatLon{LatDeg: 30, LonDeg: 60},
	})
	require.NoError(t, err)
	require.NotNil(t, seed)
	require.InDelta(t, 1, vecmath.Dot(seed.Vertices[0], vecmath.LatLonToUnit(30, 60)), 1e-9)
}
