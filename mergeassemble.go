package geotess

import (
	"github.com/rs/zerolog"

	"github.com/geotess-go/geotess/grid"
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/merge"
	"github.com/geotess-go/geotess/solid"
)

// Merge builds the primary tessellation spanning inputs and rewrites their
// vertex references onto its shared vertex table.
func Merge(seed *solid.Solid, inputs []*mesh.Tessellation, logger zerolog.Logger) (*mesh.Tessellation, error) {
	logger.Info().Int("inputs", len(inputs)).Msg("geotess: merge starting")

	primary, err := merge.Primary(seed, inputs)
	if err != nil {
		logger.Error().Err(err).Msg("geotess: merge build failed")
		return nil, err
	}
	if err := merge.MergeNodes(primary, inputs); err != nil {
		logger.Error().Err(err).Msg("geotess: merge node rewrite failed")
		return nil, err
	}

	logger.Info().
		Int("levels", primary.NumLevels()).
		Int("vertices", primary.NumVertices()).
		Msg("geotess: merge complete")
	return primary, nil
}

// Assemble flattens tessellations into a content-hashed Grid.
func Assemble(seed *solid.Solid, tessellations []*mesh.Tessellation, logger zerolog.Logger, opts ...grid.AssembleOption) (*grid.Grid, error) {
	logger.Info().Int("tessellations", len(tessellations)).Msg("geotess: assemble starting")

	g, err := grid.Assemble(seed, tessellations, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("geotess: assemble failed")
		return nil, err
	}

	logger.Info().
		Int("vertices", g.NumVertices()).
		Int("triangles", g.NumTriangles()).
		Str("hash", g.ContentHash).
		Str("version", Version).
		Str("generated", GenerationDate()).
		Msg("geotess: assemble complete")
	return g, nil
}
