package grid

import (
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/merge"
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
)

// AssembleOption configures an Assemble call.
type AssembleOption func(*assembleConfig)

type assembleConfig struct {
	skipFlip bool
}

// WithoutDelaunayFlip disables the post-flatten Delaunay flip pass. The pass is a no-op on a correctly built mesh; disabling it only
// saves the scan.
func WithoutDelaunayFlip() AssembleOption {
	return func(c *assembleConfig) { c.skipFlip = true }
}

// Assemble flattens tessellations into a Grid. With exactly one
// input its vertices are used directly; with more than one, seed drives a
// merge.Primary construction first so every input shares one vertex table.
func Assemble(seed *solid.Solid, tessellations []*mesh.Tessellation, opts ...AssembleOption) (*Grid, error) {
	if len(tessellations) == 0 {
		return nil, ErrNoTessellations
	}
	cfg := &assembleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	shared := tessellations[0]
	if len(tessellations) > 1 {
		primary, err := merge.Primary(seed, tessellations)
		if err != nil {
			return nil, err
		}
		if err := merge.MergeNodes(primary, tessellations); err != nil {
			return nil, err
		}
		shared = primary
	}

	g := flatten(shared, tessellations)

	if !cfg.skipFlip {
		for lvl := range g.Levels {
			flipLevel(g, lvl)
		}
	}
	g.ContentHash = contentHash(g)

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// flatten builds V, T, Levels and Tessellations: V is shared's vertex
// table re-indexed by setConnectivity; T visits tessellations, then
// levels, then triangles, emitting each corner's VertexIndex.
func flatten(shared *mesh.Tessellation, tessellations []*mesh.Tessellation) *Grid {
	g := &Grid{
		V: make([]vecmath.Vec, shared.NumVertices()),
	}
	for v := 0; v < shared.NumVertices(); v++ {
		g.V[shared.VertexIndex(mesh.VertexID(v))] = shared.VertexPos(mesh.VertexID(v))
	}

	for _, ts := range tessellations {
		tessStart := len(g.Levels)
		for level := 0; level < ts.NumLevels(); level++ {
			levelStart := len(g.T)
			for _, t := range ts.LevelTriangles(level) {
				corners := ts.Corners(t)
				g.T = append(g.T, [3]int{
					ts.VertexIndex(corners[0]),
					ts.VertexIndex(corners[1]),
					ts.VertexIndex(corners[2]),
				})
			}
			g.Levels = append(g.Levels, LevelRange{Start: levelStart, End: len(g.T)})
		}
		g.Tessellations = append(g.Tessellations, TessellationRange{Start: tessStart, End: len(g.Levels)})
	}
	return g
}
