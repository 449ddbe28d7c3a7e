package mesh

import "github.com/geotess-go/geotess/vecmath"

// FindTriangle walks from start toward the triangle containing u, stepping
// across whichever edge's scalar triple product is violated and descending
// into the level hierarchy once the current triangle contains u. It converges in O(sqrt(nTriangles)) on a well-formed mesh.
func (ts *Tessellation) FindTriangle(start TriangleID, u vecmath.Vec) (TriangleID, error) {
	return ts.findTriangleBounded(start, -1, u, nil)
}

// FindTriangleAtLevel is FindTriangle, but also stops once the current
// triangle's tessLevel reaches maxLevel.
func (ts *Tessellation) FindTriangleAtLevel(start TriangleID, maxLevel int, u vecmath.Vec) (TriangleID, error) {
	return ts.findTriangleBounded(start, maxLevel, u, nil)
}

// FindTriangleWithCoeffs is FindTriangleAtLevel, additionally filling
// coeffs[0..2] with the normalized (barycentric, summing to 1) triple
// products of the final triangle, suitable for interpolation.
func (ts *Tessellation) FindTriangleWithCoeffs(start TriangleID, maxLevel int, u vecmath.Vec, coeffs *[3]float64) (TriangleID, error) {
	return ts.findTriangleBounded(start, maxLevel, u, coeffs)
}

func (ts *Tessellation) findTriangleBounded(start TriangleID, maxLevel int, u vecmath.Vec, coeffs *[3]float64) (TriangleID, error) {
	t := start
	steps := 0
	budget := len(ts.triangles) + 1
	for {
		steps++
		if steps > budget {
			return NoTriangle, ErrWalkNeverConverged
		}
		tri := &ts.triangles[t]

		stp := [3]float64{
			ts.scalarTripleProduct(t, 2, 1, u),
			ts.scalarTripleProduct(t, 0, 2, u),
			ts.scalarTripleProduct(t, 1, 0, u),
		}

		stepped := false
		for i := 0; i < 3; i++ {
			if stp[i] < vecmath.TriangleInsideTolerance {
				next := tri.Neighbors[i]
				if next == NoTriangle {
					return NoTriangle, ErrWalkNeverConverged
				}
				t = next
				stepped = true
				break
			}
		}
		if stepped {
			continue
		}

		if maxLevel >= 0 && tri.TessLevel == maxLevel {
			if coeffs != nil {
				fillBarycentric(stp, coeffs)
			}
			return t, nil
		}
		if tri.Descendant == NoTriangle {
			if coeffs != nil {
				fillBarycentric(stp, coeffs)
			}
			return t, nil
		}
		t = tri.Descendant
	}
}

func fillBarycentric(stp [3]float64, coeffs *[3]float64) {
	sum := stp[0] + stp[1] + stp[2]
	if sum == 0 {
		*coeffs = [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
		return
	}
	*coeffs = [3]float64{stp[0] / sum, stp[1] / sum, stp[2] / sum}
}

// FindVertex locates the containing top-level triangle for u and returns
// its corner VertexID if u coincides (within the fixed walk-coincidence
// tolerance) with one of that triangle's three corners; ok is false
// otherwise.
func (ts *Tessellation) FindVertex(start TriangleID, u vecmath.Vec) (v VertexID, ok bool, err error) {
	var coeffs [3]float64
	t, err := ts.findTriangleBounded(start, -1, u, &coeffs)
	if err != nil {
		return NoVertex, false, err
	}
	for i := 0; i < 3; i++ {
		if coeffs[i] > vecmath.WalkCoincidenceTolerance {
			return ts.triangles[t].V[i], true, nil
		}
	}
	return NoVertex, false, nil
}
