package mesh

// oppositeLocalIndex returns the corner index of t that is neither a nor b,
// i.e. the local position whose opposite edge is (a, b).
func (ts *Tessellation) oppositeLocalIndex(t TriangleID, a, b VertexID) int {
	v := ts.triangles[t].V
	for k := 0; k < 3; k++ {
		if v[k] != a && v[k] != b {
			return k
		}
	}
	panic("mesh: triangle does not have the expected edge")
}

// findSharedEdgeTriangle searches level for a triangle, other than exclude,
// that has both a and b as corners, using a's per-level triangle membership
// set so the search touches only the small handful of triangles around a.
func (ts *Tessellation) findSharedEdgeTriangle(level int, exclude TriangleID, a, b VertexID) TriangleID {
	for _, c := range ts.VertexTriangles(a, level) {
		if c == exclude {
			continue
		}
		v := ts.triangles[c].V
		if v[0] == b || v[1] == b || v[2] == b {
			return c
		}
	}
	return NoTriangle
}

// establishLevelNeighbors resolves every still-unset Edges/Neighbors slot on
// level by matching each triangle's opposite-edge vertex pair against its
// per-level vertex-triangle membership sets, creating a fresh Edge where
// none exists yet and reusing one where the other side already created it.
func (ts *Tessellation) establishLevelNeighbors(level int) {
	for _, t := range ts.levels[level] {
		tri := &ts.triangles[t]
		for i := 0; i < 3; i++ {
			if tri.Edges[i] != NoEdge {
				continue
			}
			a, b := tri.V[(i+1)%3], tri.V[(i+2)%3]
			n := ts.findSharedEdgeTriangle(level, t, a, b)
			if n == NoTriangle {
				continue // boundary of what's built so far; resolved later.
			}
			j := ts.oppositeLocalIndex(n, a, b)
			if ts.triangles[n].Edges[j] != NoEdge {
				e := ts.triangles[n].Edges[j]
				ts.setEdgeSides(e, n, t)
				tri.Edges[i] = e
				tri.Neighbors[i] = n
				ts.triangles[n].Neighbors[j] = t
				continue
			}
			ancestor := NoEdge
			if anc, ok := ts.pendingEdgeAncestor[t]; ok {
				ancestor = anc[i]
			}
			ts.linkNewEdge(t, i, n, j, ancestor)
		}
		if tri.Edges[0] != NoEdge && tri.Edges[1] != NoEdge && tri.Edges[2] != NoEdge {
			delete(ts.pendingEdgeAncestor, t)
		}
	}
}

// needsDivision reports whether t (not yet subdivided) has accumulated
// enough transitive splits on one of its edges that it must itself divide
// to keep the mesh conforming.
func (ts *Tessellation) needsDivision(t TriangleID) bool {
	tri := &ts.triangles[t]
	if tri.Descendant != NoTriangle {
		return false
	}
	for i := 0; i < 3; i++ {
		// A slot still unresolved on this level has no Edge, hence no splits.
		if tri.Edges[i] != NoEdge && ts.EdgeNDivisions(tri.Edges[i]) > 1 {
			return true
		}
	}
	return false
}

// splitCount reports how many of t's three edges currently carry a
// midpoint vertex (the "n" of getTransitionTriangles).
func (ts *Tessellation) splitCount(t TriangleID) int {
	tri := &ts.triangles[t]
	n := 0
	for i := 0; i < 3; i++ {
		if ts.EdgeMidVertex(tri.Edges[i]) != NoVertex {
			n++
		}
	}
	return n
}
