package geotess

import (
	"github.com/rs/zerolog"

	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/refine"
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
)

// RefineSpec is one refine-existing directive.
type RefineSpec struct {
	VerticesToRefine []vecmath.Vec
	MaxEdgeLevel     int
	MarkThreshold    int
	MaxProcessors    int
}

// Refine mirrors orig onto a fresh Tessellation, subdividing one level
// further wherever orig was fully subdivided or marked near a vertex in
// spec.VerticesToRefine.
func Refine(seed *solid.Solid, orig *mesh.Tessellation, spec RefineSpec, logger zerolog.Logger) (*mesh.Tessellation, error) {
	policy, err := refine.NewMirrorExisting(orig, spec.VerticesToRefine, spec.MaxEdgeLevel, spec.MarkThreshold)
	if err != nil {
		return nil, err
	}

	var meshOpts []mesh.Option
	if spec.MaxProcessors > 0 {
		meshOpts = append(meshOpts, mesh.WithMaxProcessors(spec.MaxProcessors))
	}

	ts := mesh.New(seed, policy, meshOpts...)
	logger.Info().
		Int("maxEdgeLevel", spec.MaxEdgeLevel).
		Int("markThreshold", spec.MarkThreshold).
		Int("verticesToRefine", len(spec.VerticesToRefine)).
		Msg("geotess: refine starting")

	if err := ts.Build(); err != nil {
		logger.Error().Err(err).Msg("geotess: refine failed")
		return nil, err
	}
	logger.Info().Int("levels", ts.NumLevels()).Msg("geotess: refine complete")
	return ts, nil
}
