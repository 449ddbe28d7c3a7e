package geotess

import (
	"github.com/rs/zerolog"

	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/refine"
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
)

// LatLon places a seed's first vertex at a target latitude/longitude, in
// degrees, via the axis-angle rotation shortcut.
type LatLon struct {
	LatDeg, LonDeg float64
}

// SeedSpec selects and optionally rotates the Platonic solid every
// tessellation in a build group shares.
type SeedSpec struct {
	Name   solid.Name
	LatLon *LatLon
	Euler  *vecmath.EulerAngles
}

// BuildSeed instantiates and rotates a seed solid.
func BuildSeed(spec SeedSpec) (*solid.Solid, error) {
	s, err := solid.New(spec.Name)
	if err != nil {
		return nil, err
	}
	switch {
	case spec.LatLon != nil:
		s.RotateLatLon(spec.LatLon.LatDeg, spec.LatLon.LonDeg)
	case spec.Euler != nil:
		s.RotateEuler(*spec.Euler)
	}
	return s, nil
}

// TessellationSpec is one fresh-build directive: a base edge length
// (converted to baseTessLevel) plus any polygon/point refinement targets.
type TessellationSpec struct {
	BaseEdgeLengthDeg float64
	Polygons          []refine.PolygonTarget
	Points            []refine.PointTarget
	MaxProcessors     int
}

// Build runs one fresh-build directive against seed, logging progress via
// logger.
func Build(seed *solid.Solid, spec TessellationSpec, logger zerolog.Logger) (*mesh.Tessellation, error) {
	baseLevel, err := solid.GetTessLevel(spec.BaseEdgeLengthDeg)
	if err != nil {
		return nil, err
	}

	policyOpts := []refine.UniformPolygonOption{
		refine.WithPolygonTargets(spec.Polygons...),
		refine.WithPointTargets(spec.Points...),
	}
	if spec.MaxProcessors > 0 {
		policyOpts = append(policyOpts, refine.WithPolicyMaxProcessors(spec.MaxProcessors))
	}
	policy := refine.NewUniformPolygon(baseLevel, policyOpts...)

	var meshOpts []mesh.Option
	meshOpts = append(meshOpts, mesh.WithBaseTessLevel(baseLevel))
	if spec.MaxProcessors > 0 {
		meshOpts = append(meshOpts, mesh.WithMaxProcessors(spec.MaxProcessors))
	}

	ts := mesh.New(seed, policy, meshOpts...)
	logger.Info().
		Int("baseTessLevel", baseLevel).
		Int("polygons", len(spec.Polygons)).
		Int("points", len(spec.Points)).
		Msg("geotess: build starting")

	if err := ts.Build(); err != nil {
		logger.Error().Err(err).Msg("geotess: build failed")
		return nil, err
	}
	logger.Info().
		Int("levels", ts.NumLevels()).
		Int("vertices", ts.NumVertices()).
		Msg("geotess: build complete")
	return ts, nil
}

// BuildAll runs one directive per entry in specs, all against the same
// seed (required: merge and assembly need a shared initialSolid).
func BuildAll(seed *solid.Solid, specs []TessellationSpec, logger zerolog.Logger) ([]*mesh.Tessellation, error) {
	out := make([]*mesh.Tessellation, 0, len(specs))
	for _, spec := range specs {
		ts, err := Build(seed, spec, logger)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}
