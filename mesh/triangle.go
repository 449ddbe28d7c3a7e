package mesh

import (
	"math"

	"github.com/geotess-go/geotess/vecmath"
)

// Corners returns t's three corner VertexIDs in clockwise-from-outside
// order.
func (ts *Tessellation) Corners(t TriangleID) [3]VertexID { return ts.triangles[t].V }

// CornerPos returns the unit-vector position of t's i-th corner.
func (ts *Tessellation) CornerPos(t TriangleID, i int) vecmath.Vec {
	return ts.vertices[ts.triangles[t].V[i]].Pos
}

// TessLevel reports the level t was created on.
func (ts *Tessellation) TessLevel(t TriangleID) int { return ts.triangles[t].TessLevel }

// EdgeLevel reports how many full quad splits lie in t's ancestor chain.
func (ts *Tessellation) EdgeLevel(t TriangleID) int { return ts.triangles[t].EdgeLevel }

// Descendant returns the child on the next level that contains t's center,
// or NoTriangle if t is on the top level.
func (ts *Tessellation) Descendant(t TriangleID) TriangleID { return ts.triangles[t].Descendant }

// TriangleAncestor returns the triangle that contained t at construction
// time, or NoTriangle for a level-0 triangle.
func (ts *Tessellation) TriangleAncestor(t TriangleID) TriangleID { return ts.triangles[t].Ancestor }

// NDescendants reports how many children t's subdivision produced (0..4).
func (ts *Tessellation) NDescendants(t TriangleID) int { return ts.triangles[t].NDescendants }

// Neighbor returns the triangle sharing t's i-th edge, or NoTriangle.
func (ts *Tessellation) Neighbor(t TriangleID, i int) TriangleID { return ts.triangles[t].Neighbors[i] }

// TriangleEdge returns the EdgeID of t's i-th side.
func (ts *Tessellation) TriangleEdge(t TriangleID, i int) EdgeID { return ts.triangles[t].Edges[i] }

// TriangleIndex returns the dense output index assigned by setConnectivity.
func (ts *Tessellation) TriangleIndex(t TriangleID) int { return ts.triangles[t].Index }

// scalarTripleProduct evaluates vecmath.ScalarTripleProduct(V[i], V[j], u)
// for t — the primitive used by both Contains and the walking search.
func (ts *Tessellation) scalarTripleProduct(t TriangleID, i, j int, u vecmath.Vec) float64 {
	tri := &ts.triangles[t]
	return vecmath.ScalarTripleProduct(ts.vertices[tri.V[i]].Pos, ts.vertices[tri.V[j]].Pos, u)
}

// Contains reports whether p lies inside or on the boundary of t: all three
// scalar triple products (v[(i+2)%3], v[(i+1)%3], p) must be at least the
// fixed inside-tolerance.
func (ts *Tessellation) Contains(t TriangleID, p vecmath.Vec) bool {
	for i := 0; i < 3; i++ {
		if ts.scalarTripleProduct(t, (i+2)%3, (i+1)%3, p) < vecmath.TriangleInsideTolerance {
			return false
		}
	}
	return true
}

// Inside classifies p against t: +1 strictly interior, 0 on the boundary,
// -1 outside, using the same three scalar triple products as Contains.
func (ts *Tessellation) Inside(t TriangleID, p vecmath.Vec) int {
	const boundaryBand = 1e-9
	minStp := math.Inf(1)
	for i := 0; i < 3; i++ {
		stp := ts.scalarTripleProduct(t, (i+2)%3, (i+1)%3, p)
		if stp < minStp {
			minStp = stp
		}
	}
	switch {
	case minStp < vecmath.TriangleInsideTolerance:
		return -1
	case minStp <= boundaryBand:
		return 0
	default:
		return 1
	}
}

// Center returns the normalized arithmetic mean of t's three corners.
func (ts *Tessellation) Center(t TriangleID) vecmath.Vec {
	tri := &ts.triangles[t]
	sum := vecmath.Add(vecmath.Add(ts.vertices[tri.V[0]].Pos, ts.vertices[tri.V[1]].Pos), ts.vertices[tri.V[2]].Pos)
	return vecmath.Unit(sum)
}

// CircumCenter returns, lazily computing and caching, the unit vector
// equidistant from t's three corners.
func (ts *Tessellation) CircumCenter(t TriangleID) vecmath.Vec {
	tri := &ts.triangles[t]
	if !tri.circumCenterSet {
		tri.circumCenter = vecmath.CircumCenter(
			ts.vertices[tri.V[0]].Pos, ts.vertices[tri.V[1]].Pos, ts.vertices[tri.V[2]].Pos)
		tri.circumCenterSet = true
	}
	return tri.circumCenter
}

// SolidAngle returns t's spherical excess: 2*pi minus the sum of the three
// exterior angles between consecutive edge-normal vectors.
func (ts *Tessellation) SolidAngle(t TriangleID) float64 {
	tri := &ts.triangles[t]
	v := [3]vecmath.Vec{ts.vertices[tri.V[0]].Pos, ts.vertices[tri.V[1]].Pos, ts.vertices[tri.V[2]].Pos}
	cross := [3]vecmath.Vec{}
	for k := 0; k < 3; k++ {
		cross[k] = vecmath.Unit(vecmath.Cross(v[(k+1)%3], v[k]))
	}
	sum := 0.0
	for k := 0; k < 3; k++ {
		sum += vecmath.Angle(cross[(k+1)%3], cross[(k+2)%3])
	}
	return 2*math.Pi - sum
}

// MarkTriangle increments t's mark counter.
func (ts *Tessellation) MarkTriangle(t TriangleID) { ts.triangles[t].mark++ }

// UnmarkTriangle decrements t's mark counter, floored at zero.
func (ts *Tessellation) UnmarkTriangle(t TriangleID) {
	if ts.triangles[t].mark > 0 {
		ts.triangles[t].mark--
	}
}

// TriangleMarked reports whether t's mark counter is non-zero.
func (ts *Tessellation) TriangleMarked(t TriangleID) bool { return ts.triangles[t].mark > 0 }

// TriangleMarkCount returns t's raw mark counter, for policies that compare
// against a threshold rather than mere presence.
func (ts *Tessellation) TriangleMarkCount(t TriangleID) int { return ts.triangles[t].mark }

// newTriangle allocates a triangle record, registers its corners' per-level
// membership, and returns its ID. Edges and Neighbors start unset; they are
// resolved by establishLevelNeighbors once every triangle for the level
// exists.
func (ts *Tessellation) newTriangle(v [3]VertexID, tessLevel, edgeLevel int, ancestor TriangleID) TriangleID {
	ts.triangles = append(ts.triangles, Triangle{
		V:          v,
		Edges:      [3]EdgeID{NoEdge, NoEdge, NoEdge},
		Neighbors:  [3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
		Ancestor:   ancestor,
		Descendant: NoTriangle,
		TessLevel:  tessLevel,
		EdgeLevel:  edgeLevel,
	})
	id := TriangleID(len(ts.triangles) - 1)
	for i, vid := range v {
		ts.addVertexTriangle(vid, tessLevel, id)
		_ = i
	}
	return id
}

// edgeAncestorOf reports the ancestor edge that position i of a child of
// parent should chain to, given which of the parent's three edges position
// i coincides with. A negative parentEdgeIndex marks a position with no
// ancestor (a freshly-created interior edge such as the center child's
// sides in a quad split) and yields NoEdge.
func (ts *Tessellation) edgeAncestorOf(parent TriangleID, parentEdgeIndex int) EdgeID {
	if parentEdgeIndex < 0 {
		return NoEdge
	}
	return ts.triangles[parent].Edges[parentEdgeIndex]
}

// midpoint returns parent's edge-i midpoint vertex, creating it (and
// propagating the split count to the edge's ancestor chain) if this is the
// first side to split that edge.
func (ts *Tessellation) midpoint(parent TriangleID, edgeIndex int) VertexID {
	tri := &ts.triangles[parent]
	e := tri.Edges[edgeIndex]
	if mv := ts.EdgeMidVertex(e); mv != NoVertex {
		return mv
	}
	a, b := (edgeIndex+1)%3, (edgeIndex+2)%3
	pos := vecmath.Unit(vecmath.Add(ts.vertices[tri.V[a]].Pos, ts.vertices[tri.V[b]].Pos))
	mv := ts.newVertex(pos)
	ts.setEdgeMidVertex(e, mv)
	ts.incEdgeNDivisions(e)
	return mv
}

// pendingChild records one child produced by Divide or TransitionDivide,
// before establishLevelNeighbors has resolved its Edges/Neighbors.
type pendingChild struct {
	id          TriangleID
	edgeParent  [3]int // parent edge index each position coincides with, or -1
	tentDescend bool   // true: this child is the parent's tentative descendant
}

// Divide performs a full quad split of t: every edge gets (or reuses) a
// midpoint, and four children are emitted at tessLevel+1, edgeLevel+1. The new TriangleIDs are appended to out, in creation
// order (center, corner0, corner1, corner2).
func (ts *Tessellation) Divide(t TriangleID, out *[]TriangleID) {
	tri := &ts.triangles[t]
	v := tri.V
	var mid [3]VertexID
	for i := 0; i < 3; i++ {
		mid[i] = ts.midpoint(t, i)
	}

	center := ts.newTriangle([3]VertexID{mid[0], mid[1], mid[2]}, tri.TessLevel+1, tri.EdgeLevel+1, t)
	children := make([]TriangleID, 0, 4)
	children = append(children, center)

	for i := 0; i < 3; i++ {
		c := ts.newTriangle([3]VertexID{v[i], mid[(i+2)%3], mid[(i+1)%3]}, tri.TessLevel+1, tri.EdgeLevel+1, t)
		children = append(children, c)
	}

	// Wire the four children to each other immediately: corner child i's
	// position 0 is shared with center's position i.
	for i := 0; i < 3; i++ {
		ts.linkNewEdge(center, i, children[i+1], 0, NoEdge)
	}
	// Corner child i's positions 1 and 2 lie along parent edges (i+1)%3 and
	// (i+2)%3 respectively; those get resolved by establishLevelNeighbors,
	// but we record their ancestor chain now via pendingEdgeAncestor.
	for i := 0; i < 3; i++ {
		ts.pendingEdgeAncestor[children[i+1]] = [3]EdgeID{
			NoEdge,
			ts.edgeAncestorOf(t, (i+1)%3),
			ts.edgeAncestorOf(t, (i+2)%3),
		}
	}
	ts.pendingEdgeAncestor[center] = [3]EdgeID{NoEdge, NoEdge, NoEdge}

	// newTriangle may have reallocated the arena; re-take the pointer.
	tri = &ts.triangles[t]
	tri.Descendant = center
	tri.NDescendants = 4
	*out = append(*out, children...)
}

// linkNewEdge ties triangle a's local side ia to triangle b's local side ib
// with a single fresh Edge, inheriting ancestor (or NoEdge).
func (ts *Tessellation) linkNewEdge(a TriangleID, ia int, b TriangleID, ib int, ancestor EdgeID) {
	e := ts.newEdge()
	ts.setEdgeSides(e, a, b)
	if ancestor != NoEdge {
		ts.setEdgeAncestor(e, ancestor)
	}
	ts.triangles[a].Edges[ia] = e
	ts.triangles[a].Neighbors[ia] = b
	ts.triangles[b].Edges[ib] = e
	ts.triangles[b].Neighbors[ib] = a
}

// TransitionDivide performs a conforming ("transition") subdivision of t
// when fewer than all three edges carry a midpoint, keeping the mesh free
// of hanging nodes. New TriangleIDs
// are appended to out.
func (ts *Tessellation) TransitionDivide(t TriangleID, out *[]TriangleID) {
	tri := &ts.triangles[t]
	v := tri.V
	var hasMid [3]bool
	var mid [3]VertexID
	n := 0
	for i := 0; i < 3; i++ {
		mid[i] = ts.EdgeMidVertex(tri.Edges[i])
		hasMid[i] = mid[i] != NoVertex
		if hasMid[i] {
			n++
		}
	}

	switch n {
	case 0:
		c := ts.newTriangle(v, tri.TessLevel+1, tri.EdgeLevel, t)
		ts.pendingEdgeAncestor[c] = [3]EdgeID{
			ts.edgeAncestorOf(t, 0), ts.edgeAncestorOf(t, 1), ts.edgeAncestorOf(t, 2),
		}
		tri = &ts.triangles[t]
		tri.Descendant = c
		tri.NDescendants = 1
		*out = append(*out, c)

	case 1:
		i := -1
		for k := 0; k < 3; k++ {
			if hasMid[k] {
				i = k
			}
		}
		// Edge i (opposite v[i]) splits into m[i]. Two children:
		//   A = (v[i], v[(i+1)%3], m[i])
		//   B = (v[i], m[i], v[(i+2)%3])
		a := ts.newTriangle([3]VertexID{v[i], v[(i+1)%3], mid[i]}, tri.TessLevel+1, tri.EdgeLevel, t)
		b := ts.newTriangle([3]VertexID{v[i], mid[i], v[(i+2)%3]}, tri.TessLevel+1, tri.EdgeLevel, t)
		ts.linkNewEdge(a, 1, b, 2, NoEdge)
		ts.pendingEdgeAncestor[a] = [3]EdgeID{ts.edgeAncestorOf(t, i), NoEdge, ts.edgeAncestorOf(t, (i+2)%3)}
		ts.pendingEdgeAncestor[b] = [3]EdgeID{ts.edgeAncestorOf(t, i), ts.edgeAncestorOf(t, (i+1)%3), NoEdge}
		tri = &ts.triangles[t]
		tri.Descendant = b
		tri.NDescendants = 2
		*out = append(*out, a, b)

	case 2:
		i := -1
		for k := 0; k < 3; k++ {
			if !hasMid[k] {
				i = k
			}
		}
		j1, j2 := (i+1)%3, (i+2)%3
		// Corner child at v[i]:
		corner := ts.newTriangle([3]VertexID{v[i], mid[j2], mid[j1]}, tri.TessLevel+1, tri.EdgeLevel, t)
		ts.pendingEdgeAncestor[corner] = [3]EdgeID{NoEdge, ts.edgeAncestorOf(t, j1), ts.edgeAncestorOf(t, j2)}

		// Remaining quadrilateral (mid[j2], v[j1], v[j2], mid[j1]) is split
		// along the shorter of its diagonals mid[j1]-v[j1] and mid[j2]-v[j2],
		// taking mid[j1]-v[j1] on an exact tie.
		dist1 := vecmath.Angle(ts.vertices[mid[j1]].Pos, ts.vertices[v[j1]].Pos)
		dist2 := vecmath.Angle(ts.vertices[mid[j2]].Pos, ts.vertices[v[j2]].Pos)

		var q1, q2 TriangleID
		if dist2 < dist1 {
			// Diagonal mid[j2]-v[j2].
			q1 = ts.newTriangle([3]VertexID{v[j1], v[j2], mid[j2]}, tri.TessLevel+1, tri.EdgeLevel, t)
			q2 = ts.newTriangle([3]VertexID{v[j2], mid[j1], mid[j2]}, tri.TessLevel+1, tri.EdgeLevel, t)
			ts.linkNewEdge(q1, 0, q2, 1, NoEdge)
			ts.pendingEdgeAncestor[q1] = [3]EdgeID{NoEdge, ts.edgeAncestorOf(t, j2), ts.edgeAncestorOf(t, i)}
			ts.pendingEdgeAncestor[q2] = [3]EdgeID{NoEdge, NoEdge, ts.edgeAncestorOf(t, j1)}
			ts.linkNewEdge(corner, 0, q2, 0, NoEdge)
		} else {
			// Diagonal mid[j1]-v[j1] (also taken on a tie).
			q1 = ts.newTriangle([3]VertexID{v[j1], mid[j1], mid[j2]}, tri.TessLevel+1, tri.EdgeLevel, t)
			q2 = ts.newTriangle([3]VertexID{v[j1], v[j2], mid[j1]}, tri.TessLevel+1, tri.EdgeLevel, t)
			ts.linkNewEdge(q1, 2, q2, 1, NoEdge)
			ts.pendingEdgeAncestor[q1] = [3]EdgeID{NoEdge, ts.edgeAncestorOf(t, j2), NoEdge}
			ts.pendingEdgeAncestor[q2] = [3]EdgeID{ts.edgeAncestorOf(t, j1), NoEdge, ts.edgeAncestorOf(t, i)}
			ts.linkNewEdge(corner, 0, q1, 0, NoEdge)
		}
		tri = &ts.triangles[t]
		tri.Descendant = q2
		tri.NDescendants = 3
		*out = append(*out, corner, q1, q2)

	case 3:
		center := ts.newTriangle([3]VertexID{mid[0], mid[1], mid[2]}, tri.TessLevel+1, tri.EdgeLevel+1, t)
		children := make([]TriangleID, 0, 4)
		children = append(children, center)
		for i := 0; i < 3; i++ {
			c := ts.newTriangle([3]VertexID{v[i], mid[(i+2)%3], mid[(i+1)%3]}, tri.TessLevel+1, tri.EdgeLevel+1, t)
			children = append(children, c)
		}
		for i := 0; i < 3; i++ {
			ts.linkNewEdge(center, i, children[i+1], 0, NoEdge)
			ts.pendingEdgeAncestor[children[i+1]] = [3]EdgeID{
				NoEdge, ts.edgeAncestorOf(t, (i+1)%3), ts.edgeAncestorOf(t, (i+2)%3),
			}
		}
		ts.pendingEdgeAncestor[center] = [3]EdgeID{NoEdge, NoEdge, NoEdge}
		tri = &ts.triangles[t]
		tri.Descendant = children[3]
		tri.NDescendants = 4
		*out = append(*out, children...)

	default:
		panic("mesh: TransitionDivide called with n out of range")
	}
}
