package mesh

import "math"

// tilingTolerance bounds how far a level's total solid angle may drift from
// 4*pi (floating point accumulation over thousands of triangles) before
// tiling is considered violated.
const tilingTolerance = 1e-6

// Validate checks every invariant a finished Tessellation must hold:
// neighbor symmetry, edge sharing, descendant consistency, full sphere
// coverage per level, and a clean (all-zero) mark state. It returns the
// first violation found, wrapped so errors.Is(err, ErrIntegrityViolation)
// matches.
func (ts *Tessellation) Validate() error {
	for level, tris := range ts.levels {
		for _, t := range tris {
			if err := ts.validateNeighborSymmetry(level, t); err != nil {
				return err
			}
			if err := ts.validateEdgeSharing(level, t); err != nil {
				return err
			}
		}
		if err := ts.validateTiling(level, tris); err != nil {
			return err
		}
	}
	for level := 0; level < ts.TopLevel(); level++ {
		for _, t := range ts.levels[level] {
			if err := ts.validateDescendant(level, t); err != nil {
				return err
			}
		}
	}
	if err := ts.validateUnmarked(); err != nil {
		return err
	}
	return nil
}

// validateNeighborSymmetry checks neighbor-symmetry: if t considers n its
// neighbor across side i, n must consider t its neighbor back.
func (ts *Tessellation) validateNeighborSymmetry(level int, t TriangleID) error {
	tri := &ts.triangles[t]
	for i := 0; i < 3; i++ {
		n := tri.Neighbors[i]
		if n == NoTriangle {
			return &IntegrityError{Invariant: "neighbor-symmetry", Level: level, Triangle: t,
				Detail: "unresolved neighbor slot after build"}
		}
		back := &ts.triangles[n]
		found := false
		for j := 0; j < 3; j++ {
			if back.Neighbors[j] == t {
				found = true
				break
			}
		}
		if !found {
			return &IntegrityError{Invariant: "neighbor-symmetry", Level: level, Triangle: t,
				Detail: "neighbor does not reciprocate"}
		}
	}
	return nil
}

// validateEdgeSharing checks edge-sharing: the Edge object at t's side i
// must list t as one of its two sides, and its other side must be t's
// recorded neighbor there.
func (ts *Tessellation) validateEdgeSharing(level int, t TriangleID) error {
	tri := &ts.triangles[t]
	for i := 0; i < 3; i++ {
		e := tri.Edges[i]
		if e == NoEdge {
			return &IntegrityError{Invariant: "edge-sharing", Level: level, Triangle: t,
				Detail: "unresolved edge slot after build"}
		}
		other := ts.edgeNeighbor(e, t)
		if other != tri.Neighbors[i] {
			return &IntegrityError{Invariant: "edge-sharing", Level: level, Triangle: t,
				Detail: "edge's other side disagrees with recorded neighbor"}
		}
	}
	return nil
}

// validateTiling checks tiling: a level's triangles must together cover
// the sphere exactly once, i.e. their solid angles sum to 4*pi.
func (ts *Tessellation) validateTiling(level int, tris []TriangleID) error {
	sum := 0.0
	for _, t := range tris {
		sum += ts.SolidAngle(t)
	}
	if math.Abs(sum-4*math.Pi) > tilingTolerance {
		return &IntegrityError{Invariant: "tiling", Level: level,
			Detail: "level solid angle does not sum to 4*pi"}
	}
	return nil
}

// validateDescendant checks descendant: a non-top-level triangle's
// Descendant must be set, must lie on the next level, and must itself be
// contained in the parent.
func (ts *Tessellation) validateDescendant(level int, t TriangleID) error {
	tri := &ts.triangles[t]
	if tri.Descendant == NoTriangle {
		return &IntegrityError{Invariant: "descendant", Level: level, Triangle: t,
			Detail: "non-top-level triangle has no descendant"}
	}
	if tri.NDescendants < 1 || tri.NDescendants > 4 {
		return &IntegrityError{Invariant: "descendant", Level: level, Triangle: t,
			Detail: "NDescendants out of [1,4]"}
	}
	if ts.triangles[tri.Descendant].TessLevel != level+1 {
		return &IntegrityError{Invariant: "descendant", Level: level, Triangle: t,
			Detail: "descendant is not on the next level"}
	}
	if !ts.Contains(t, ts.Center(tri.Descendant)) {
		return &IntegrityError{Invariant: "descendant", Level: level, Triangle: t,
			Detail: "descendant center not contained in parent"}
	}
	return nil
}

// validateUnmarked checks that setConnectivity left no vertex or triangle
// mark set.
func (ts *Tessellation) validateUnmarked() error {
	for i := range ts.vertices {
		if ts.vertices[i].mark != 0 {
			return &IntegrityError{Invariant: "unmarked-on-finish",
				Detail: "vertex mark left set after build"}
		}
	}
	for i := range ts.triangles {
		if ts.triangles[i].mark != 0 {
			return &IntegrityError{Invariant: "unmarked-on-finish",
				Detail: "triangle mark left set after build"}
		}
	}
	return nil
}
