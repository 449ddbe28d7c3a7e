package refine

import (
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/region"
	"github.com/geotess-go/geotess/vecmath"
)

// PolygonTarget pairs a region with the tessellation level it must be
// resolved to.
type PolygonTarget struct {
	Region region.Region
	Level  int
}

// PointTarget pairs an explicit point with the level it must be resolved
// to.
type PointTarget struct {
	Pos   vecmath.Vec
	Level int
}

// UniformPolygon is the fresh-build policy: every triangle
// divides uniformly through baseLevel, then only triangles touching a
// polygon or point target (whose target level still exceeds the
// triangle's) continue dividing.
type UniformPolygon struct {
	baseLevel     int
	polygons      []PolygonTarget
	points        []PointTarget
	maxProcessors int
}

// UniformPolygonOption configures a UniformPolygon at construction.
type UniformPolygonOption func(*UniformPolygon)

// WithPolygonTargets adds polygon coverage targets.
func WithPolygonTargets(targets ...PolygonTarget) UniformPolygonOption {
	return func(p *UniformPolygon) { p.polygons = append(p.polygons, targets...) }
}

// WithPointTargets adds explicit point coverage targets.
func WithPointTargets(targets ...PointTarget) UniformPolygonOption {
	return func(p *UniformPolygon) { p.points = append(p.points, targets...) }
}

// WithPolicyMaxProcessors bounds the worker-pool width used when marking
// polygon coverage. Default is 1 (sequential).
func WithPolicyMaxProcessors(n int) UniformPolygonOption {
	return func(p *UniformPolygon) {
		if n > 0 {
			p.maxProcessors = n
		}
	}
}

// NewUniformPolygon builds a fresh-build policy with the given base
// (uniform) tessellation level.
func NewUniformPolygon(baseLevel int, opts ...UniformPolygonOption) *UniformPolygon {
	p := &UniformPolygon{baseLevel: baseLevel, maxProcessors: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsDivisible implements mesh.Policy.
func (p *UniformPolygon) IsDivisible(ts *mesh.Tessellation, t mesh.TriangleID) bool {
	if ts.TessLevel(t) < p.baseLevel {
		return true
	}
	for _, v := range ts.Corners(t) {
		if ts.IsMarked(v) {
			return true
		}
	}
	for _, pt := range p.polygons {
		if pt.Level <= ts.TessLevel(t) {
			continue
		}
		for _, defPoint := range pt.Region.Points() {
			if ts.Contains(t, defPoint) {
				return true
			}
		}
	}
	for _, pt := range p.points {
		if pt.Level <= ts.TessLevel(t) {
			continue
		}
		if ts.Contains(t, pt.Pos) {
			return true
		}
	}
	return false
}

// PopulateNodes implements mesh.Policy: for every polygon target whose
// level still exceeds level, mark level's vertices that lie inside it.
func (p *UniformPolygon) PopulateNodes(ts *mesh.Tessellation, level int) {
	if level < p.baseLevel {
		return
	}
	for _, pt := range p.polygons {
		if pt.Level <= level {
			continue
		}
		region.MarkVertices(ts, level, pt.Region, p.maxProcessors)
	}
}
