package refine_test

import (
	"testing"

	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/refine"
	"github.com/geotess-go/geotess/region"
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
	"github.com/stretchr/testify/require"
)

func buildSeed(t *testing.T) *solid.Solid {
	t.Helper()
	seed, err := solid.New(solid.Icosahedron)
	require.NoError(t, err)
	return seed
}

func TestUniformPolygonBaseLevelOnly(t *testing.T) {
	seed := buildSeed(t)
	policy := refine.NewUniformPolygon(1)
	ts := mesh.New(seed, policy)
	require.NoError(t, ts.Build())
	require.Equal(t, 2, ts.NumLevels())
	require.NoError(t, ts.Validate())
}

func TestUniformPolygonRefinesCap(t *testing.T) {
	seed := buildSeed(t)
	cap, err := region.NewSphericalCap(seed.Vertices[0], 0.3)
	require.NoError(t, err)

	policy := refine.NewUniformPolygon(0, refine.WithPolygonTargets(refine.PolygonTarget{Region: cap, Level: 2}))
	ts := mesh.New(seed, policy)
	require.NoError(t, ts.Build())
	require.GreaterOrEqual(t, ts.NumLevels(), 2)
	require.NoError(t, ts.Validate())
}

func TestMirrorExistingNoOrig(t *testing.T) {
	_, err := refine.NewMirrorExisting(nil, nil, 1, 1)
	require.ErrorIs(t, err, refine.ErrNoOrig)
}

func TestMirrorExistingMirrorsThenRefinesMark(t *testing.T) {
	seed := buildSeed(t)
	baseTs := mesh.New(seed, refine.NewUniformPolygon(1))
	require.NoError(t, baseTs.Build())

	target := baseTs.VertexPos(0)
	policy, err := refine.NewMirrorExisting(baseTs, []vecmath.Vec{target}, 2, 1)
	require.NoError(t, err)

	mirrored := mesh.New(seed, policy)
	require.NoError(t, mirrored.Build())
	require.NoError(t, mirrored.Validate())
	require.GreaterOrEqual(t, mirrored.NumLevels(), baseTs.NumLevels())
}
