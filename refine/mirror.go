package refine

import (
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/vecmath"
)

// MirrorExisting is the refine-existing policy: it reproduces
// orig's subdivision exactly, plus one additional level wherever orig was
// either fully subdivided or marked at least markThreshold times near a
// vertex the caller asked to refine.
type MirrorExisting struct {
	orig          *mesh.Tessellation
	maxEdgeLevel  int
	markThreshold int
}

// NewMirrorExisting marks, in orig, every triangle at every level that has
// one of verticesToRefine as a corner (located via walking search from
// orig's first level-0 triangle), then returns a policy that mirrors orig
// up to maxEdgeLevel, subdividing one level further near those marks.
func NewMirrorExisting(orig *mesh.Tessellation, verticesToRefine []vecmath.Vec, maxEdgeLevel, markThreshold int) (*MirrorExisting, error) {
	if orig == nil {
		return nil, ErrNoOrig
	}
	if orig.NumLevels() == 0 {
		return nil, mesh.ErrEmptyLevel
	}
	start := orig.LevelTriangles(0)[0]

	for _, pos := range verticesToRefine {
		v, ok, err := orig.FindVertex(start, pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrVertexNotFound
		}
		for level := 0; level < orig.NumLevels(); level++ {
			for _, t := range orig.VertexTriangles(v, level) {
				orig.MarkTriangle(t)
			}
		}
	}

	return &MirrorExisting{orig: orig, maxEdgeLevel: maxEdgeLevel, markThreshold: markThreshold}, nil
}

// IsDivisible implements mesh.Policy.
func (p *MirrorExisting) IsDivisible(ts *mesh.Tessellation, t mesh.TriangleID) bool {
	if ts.EdgeLevel(t) >= p.maxEdgeLevel {
		return false
	}
	level := ts.TessLevel(t)
	if level >= p.orig.NumLevels() {
		return false
	}
	start := p.orig.LevelTriangles(0)[0]
	origT, err := p.orig.FindTriangleAtLevel(start, level, ts.Center(t))
	if err != nil {
		return false
	}
	if p.orig.NDescendants(origT) == 4 {
		return true
	}
	return p.orig.TriangleMarkCount(origT) >= p.markThreshold && geometricallyEqual(ts, t, p.orig, origT)
}

// PopulateNodes implements mesh.Policy. MirrorExisting marks no new
// vertices of its own; all marking happened on orig at construction time.
func (p *MirrorExisting) PopulateNodes(ts *mesh.Tessellation, level int) {}

// geometricallyEqual reports whether t1 (in ts1) and t2 (in ts2) have the
// same corner positions in the same order, within vertex-equality
// tolerance. Both tessellations follow the same seed and divide order, so
// mirrored triangles' corners line up position-for-position.
func geometricallyEqual(ts1 *mesh.Tessellation, t1 mesh.TriangleID, ts2 *mesh.Tessellation, t2 mesh.TriangleID) bool {
	for i := 0; i < 3; i++ {
		if !vecmath.Equal(ts1.CornerPos(t1, i), ts2.CornerPos(t2, i)) {
			return false
		}
	}
	return true
}
