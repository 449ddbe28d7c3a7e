package mesh

import "github.com/geotess-go/geotess/vecmath"

// Build runs the full construction pipeline: seed the
// level-0 mesh from the configured solid, subdivide level by level, dividing
// every triangle the policy's IsDivisible accepts (the policy alone decides
// each level, uniform base levels included) until a pass divides nothing, repair
// hanging nodes with a conformalization pass repeated until stable, fill in
// whatever triangles still lack a descendant, and finalize indices and
// descendant bookkeeping. Build may only be called once per Tessellation.
func (ts *Tessellation) Build() error {
	if ts.seed == nil {
		return ErrNoSeed
	}
	if ts.policy == nil {
		return ErrNoPolicy
	}
	if len(ts.seed.Faces) == 0 {
		return ErrEmptyLevel
	}

	ts.seedLevelZero()

	for {
		level := ts.TopLevel()
		ts.policy.PopulateNodes(ts, level)

		var next []TriangleID
		for _, t := range ts.levels[level] {
			if ts.policy.IsDivisible(ts, t) {
				ts.Divide(t, &next)
			}
		}
		if len(next) == 0 {
			break
		}
		ts.levels = append(ts.levels, next)
		ts.establishLevelNeighbors(level + 1)
		ts.unmarkLevelVertices(level)
	}

	if err := ts.conformalize(); err != nil {
		return err
	}
	ts.fillRemaining()
	ts.setConnectivity()
	return nil
}

// seedLevelZero instantiates one vertex per seed corner and one triangle per
// seed face, then resolves their mutual neighbors.
func (ts *Tessellation) seedLevelZero() {
	vid := make([]VertexID, len(ts.seed.Vertices))
	for i, p := range ts.seed.Vertices {
		vid[i] = ts.newVertex(p)
	}

	level0 := make([]TriangleID, 0, len(ts.seed.Faces))
	for _, f := range ts.seed.Faces {
		t := ts.newTriangle([3]VertexID{vid[f[0]], vid[f[1]], vid[f[2]]}, 0, 0, NoTriangle)
		level0 = append(level0, t)
	}
	ts.levels = [][]TriangleID{level0}
	ts.establishLevelNeighbors(0)
}

// unmarkLevelVertices clears every mark left on level's corners by the
// policy's PopulateNodes pass, readying them for the next level.
func (ts *Tessellation) unmarkLevelVertices(level int) {
	for _, t := range ts.levels[level] {
		ts.unmarkTriangleVertices(t)
	}
}

// conformalize repeatedly scans every level for triangles that have
// accumulated enough edge splits to need a transition subdivision, stopping
// once a full sweep makes no further change.
func (ts *Tessellation) conformalize() error {
	const maxSweeps = 1 << 16
	for sweep := 0; ; sweep++ {
		if sweep > maxSweeps {
			return &IntegrityError{Invariant: "tiling", Triangle: NoTriangle, Detail: "conformalization pass did not converge"}
		}
		changed := false
		for level := 0; level < ts.TopLevel(); level++ {
			var born []TriangleID
			for _, t := range ts.levels[level] {
				if ts.needsDivision(t) {
					ts.TransitionDivide(t, &born)
				}
			}
			if len(born) == 0 {
				continue
			}
			changed = true
			ts.levels[level+1] = append(ts.levels[level+1], born...)
			ts.establishLevelNeighbors(level + 1)
		}
		if !changed {
			return nil
		}
	}
}

// fillRemaining gives every triangle below the top level that still lacks a
// descendant exactly one transition subdivision, using however many of its
// edges already happen to carry a midpoint.
func (ts *Tessellation) fillRemaining() {
	for level := 0; level < ts.TopLevel(); level++ {
		var born []TriangleID
		for _, t := range ts.levels[level] {
			if ts.triangles[t].Descendant == NoTriangle {
				ts.TransitionDivide(t, &born)
			}
		}
		if len(born) == 0 {
			continue
		}
		ts.levels[level+1] = append(ts.levels[level+1], born...)
		ts.establishLevelNeighbors(level + 1)
	}
}

// setConnectivity reassigns dense output indices to every vertex and
// triangle, confirms (or corrects) each non-top-level triangle's tentative
// Descendant by walking from its center, recomputes the authoritative
// NDescendants by counting how many of the descendant's level-mates are
// contained in the parent, and finally clears every vertex and triangle mark
// without checking whether any was left set.
func (ts *Tessellation) setConnectivity() {
	for i := range ts.vertices {
		ts.vertices[i].Index = i
	}
	for i := range ts.triangles {
		ts.triangles[i].Index = i
	}

	top := ts.TopLevel()
	for level := 0; level < top; level++ {
		for _, t := range ts.levels[level] {
			ts.confirmDescendant(t, level)
		}
	}

	for i := range ts.vertices {
		ts.vertices[i].mark = 0
	}
	for i := range ts.triangles {
		ts.triangles[i].mark = 0
	}
}

// confirmDescendant walks from t's tentative descendant (or, when t has
// none, from the first triangle on level+1) to find the child on level+1 that actually contains t's
// center, then counts how many level+1 triangles sharing a corner with that
// child also lie inside t.
func (ts *Tessellation) confirmDescendant(t TriangleID, level int) {
	tri := &ts.triangles[t]
	center := ts.Center(t)

	start := tri.Descendant
	if start == NoTriangle && len(ts.levels[level+1]) > 0 {
		start = ts.levels[level+1][0]
	}
	if start == NoTriangle {
		return
	}

	found, err := ts.findWithinLevel(start, level+1, center)
	if err != nil {
		found = start
	}
	tri.Descendant = found

	count := 0
	seen := map[TriangleID]bool{found: true}
	count++
	for _, corner := range ts.triangles[found].V {
		for _, cand := range ts.VertexTriangles(corner, level+1) {
			if seen[cand] {
				continue
			}
			seen[cand] = true
			if ts.Contains(t, ts.Center(cand)) {
				count++
			}
		}
	}
	if count > 4 {
		count = 4
	}
	tri.NDescendants = count
}

// findWithinLevel is FindTriangle restricted to never descend below level;
// start and every candidate it visits must already be on that level.
func (ts *Tessellation) findWithinLevel(start TriangleID, level int, u vecmath.Vec) (TriangleID, error) {
	return ts.FindTriangleAtLevel(start, level, u)
}

// NewFromGrid reconstructs a Tessellation from an already-assembled grid's
// flat vertex table and per-level triangle index triples, rebuilding the
// Edge/Neighbor topology at each level exactly as Build would have left it,
// but skipping seeding, subdivision and conformalization entirely.
func NewFromGrid(src GridSource, policy Policy, opts ...Option) (*Tessellation, error) {
	verts := src.Vertices()
	levels := src.Levels()
	if len(verts) == 0 || len(levels) == 0 {
		return nil, ErrEmptyLevel
	}

	ts := &Tessellation{
		policy:              policy,
		maxProcessors:       1,
		pendingEdgeAncestor: make(map[TriangleID][3]EdgeID),
	}
	for _, opt := range opts {
		opt(ts)
	}

	vid := make([]VertexID, len(verts))
	for i, p := range verts {
		vid[i] = ts.newVertex(p)
	}

	ts.levels = make([][]TriangleID, len(levels))
	for level, faces := range levels {
		lvl := make([]TriangleID, 0, len(faces))
		for _, f := range faces {
			for _, idx := range f {
				if idx < 0 || idx >= len(vid) {
					return nil, ErrVertexOutOfRange
				}
			}
			t := ts.newTriangle([3]VertexID{vid[f[0]], vid[f[1]], vid[f[2]]}, level, level, NoTriangle)
			lvl = append(lvl, t)
		}
		ts.levels[level] = lvl
		ts.establishLevelNeighbors(level)
	}

	ts.setConnectivity()
	return ts, nil
}
