package mesh

import "github.com/geotess-go/geotess/vecmath"

// newVertex allocates a vertex at pos and returns its ID.
func (ts *Tessellation) newVertex(pos vecmath.Vec) VertexID {
	ts.vertices = append(ts.vertices, Vertex{Pos: pos})
	return VertexID(len(ts.vertices) - 1)
}

// VertexPos returns the unit-vector position of v.
func (ts *Tessellation) VertexPos(v VertexID) vecmath.Vec {
	return ts.vertices[v].Pos
}

// VertexIndex returns the dense output index assigned by the most recent
// setConnectivity pass.
func (ts *Tessellation) VertexIndex(v VertexID) int {
	return ts.vertices[v].Index
}

// Mark increments v's mark counter. The counter pattern lets a vertex be
// marked from multiple independent sources and unmarked exactly once per
// source.
func (ts *Tessellation) Mark(v VertexID) { ts.vertices[v].mark++ }

// Unmark decrements v's mark counter, floored at zero.
func (ts *Tessellation) Unmark(v VertexID) {
	if ts.vertices[v].mark > 0 {
		ts.vertices[v].mark--
	}
}

// IsMarked reports whether v's mark counter is non-zero.
func (ts *Tessellation) IsMarked(v VertexID) bool { return ts.vertices[v].mark > 0 }

// unmarkTriangleVertices clears the mark on every corner of t. Used after a
// level is built so the next pass starts from a clean slate.
func (ts *Tessellation) unmarkTriangleVertices(t TriangleID) {
	for _, v := range ts.triangles[t].V {
		ts.vertices[v].mark = 0
	}
}

// addVertexTriangle records that triangle t, on level, has vertex v as a
// corner, growing v's per-level membership slice as needed.
func (ts *Tessellation) addVertexTriangle(v VertexID, level int, t TriangleID) {
	vert := &ts.vertices[v]
	for len(vert.triByLevel) <= level {
		vert.triByLevel = append(vert.triByLevel, nil)
	}
	vert.triByLevel[level] = append(vert.triByLevel[level], t)
}

// clearVertexTriangles discards v's recorded triangle membership for level.
func (ts *Tessellation) clearVertexTriangles(v VertexID, level int) {
	vert := &ts.vertices[v]
	if level < len(vert.triByLevel) {
		vert.triByLevel[level] = nil
	}
}

// VertexTriangles returns the triangles at level that have v as a corner.
func (ts *Tessellation) VertexTriangles(v VertexID, level int) []TriangleID {
	vert := &ts.vertices[v]
	if level < 0 || level >= len(vert.triByLevel) {
		return nil
	}
	return vert.triByLevel[level]
}

// VerticesEqual reports whether a and b are the same location under the
// fixed vertex-equality tolerance.
func (ts *Tessellation) VerticesEqual(a, b VertexID) bool {
	return vecmath.Equal(ts.vertices[a].Pos, ts.vertices[b].Pos)
}
