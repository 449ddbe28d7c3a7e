package mesh

// newEdge allocates a fresh, side-less edge and returns its ID.
func (ts *Tessellation) newEdge() EdgeID {
	ts.edges = append(ts.edges, Edge{Side1: NoTriangle, Side2: NoTriangle, MidVertex: NoVertex, Ancestor: NoEdge})
	return EdgeID(len(ts.edges) - 1)
}

// setEdgeSides records t1 and t2 as the two triangles sharing e. It is a
// bookkeeping call only; it does not check which, if any, slot was already
// occupied — see (*Tessellation).establishLevelNeighbors for the reuse policy.
func (ts *Tessellation) setEdgeSides(e EdgeID, t1, t2 TriangleID) {
	ts.edges[e].Side1 = t1
	ts.edges[e].Side2 = t2
}

// edgeNeighbor returns the triangle on the other side of e from t, or
// NoTriangle if t is neither side.
func (ts *Tessellation) edgeNeighbor(e EdgeID, t TriangleID) TriangleID {
	edge := &ts.edges[e]
	switch t {
	case edge.Side1:
		return edge.Side2
	case edge.Side2:
		return edge.Side1
	default:
		return NoTriangle
	}
}

// EdgeMidVertex returns e's split midpoint vertex, or NoVertex if e has not
// been split.
func (ts *Tessellation) EdgeMidVertex(e EdgeID) VertexID { return ts.edges[e].MidVertex }

// setEdgeMidVertex records the midpoint produced by splitting e.
func (ts *Tessellation) setEdgeMidVertex(e EdgeID, v VertexID) { ts.edges[e].MidVertex = v }

// EdgeNDivisions returns how many times e or any descendant of e has been
// split.
func (ts *Tessellation) EdgeNDivisions(e EdgeID) int { return ts.edges[e].NDivisions }

// incEdgeNDivisions increments e's split count and recurses to e's ancestor,
// so a coarse edge's count always equals the total splits across its
// descendant subtree.
func (ts *Tessellation) incEdgeNDivisions(e EdgeID) {
	for e != NoEdge {
		ts.edges[e].NDivisions++
		e = ts.edges[e].Ancestor
	}
}

// setEdgeAncestor records that e was produced by subdividing ancestor.
func (ts *Tessellation) setEdgeAncestor(e, ancestor EdgeID) { ts.edges[e].Ancestor = ancestor }
