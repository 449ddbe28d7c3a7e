package region

import "github.com/geotess-go/geotess/vecmath"

// Region is an opaque containment oracle: Contains tests a unit vector for
// membership, and Points returns the region's defining points, which
// refinement policies use when deciding whether a coarse triangle already
// straddles the region.
type Region interface {
	Contains(u vecmath.Vec) bool
	Points() []vecmath.Vec
}

// SphericalCap is the set of unit vectors within radiusRad great-circle
// radians of center.
type SphericalCap struct {
	center    vecmath.Vec
	radiusRad float64
}

// NewSphericalCap builds a cap centered on center (need not be unit-length;
// it is normalized) with the given angular radius in radians.
func NewSphericalCap(center vecmath.Vec, radiusRad float64) (*SphericalCap, error) {
	if radiusRad <= 0 || radiusRad > 3.1415926535897936 {
		return nil, ErrInvalidRadius
	}
	return &SphericalCap{center: vecmath.Unit(center), radiusRad: radiusRad}, nil
}

// Contains reports whether u lies within the cap.
func (c *SphericalCap) Contains(u vecmath.Vec) bool {
	return vecmath.Angle(c.center, u) <= c.radiusRad
}

// Points returns the cap's single defining point, its center.
func (c *SphericalCap) Points() []vecmath.Vec { return []vecmath.Vec{c.center} }

// SphericalPolygon is a convex spherical polygon, its vertices given in
// clockwise order as viewed from outside the sphere — the same winding
// convention as a Triangle's corners.
type SphericalPolygon struct {
	vertices []vecmath.Vec
}

// NewSphericalPolygon builds a polygon from at least three clockwise,
// unit-length (or unit-normalized) vertices.
func NewSphericalPolygon(vertices []vecmath.Vec) (*SphericalPolygon, error) {
	if len(vertices) < 3 {
		return nil, ErrEmptyPolygon
	}
	v := make([]vecmath.Vec, len(vertices))
	for i, p := range vertices {
		v[i] = vecmath.Unit(p)
	}
	return &SphericalPolygon{vertices: v}, nil
}

// Contains reports whether u lies inside or on the boundary of the polygon:
// every consecutive edge's scalar triple product with u must clear the
// fixed triangle-inside tolerance, generalizing Triangle.Contains to an
// arbitrary convex corner count.
func (p *SphericalPolygon) Contains(u vecmath.Vec) bool {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if vecmath.ScalarTripleProduct(b, a, u) < vecmath.TriangleInsideTolerance {
			return false
		}
	}
	return true
}

// Points returns the polygon's defining vertices.
func (p *SphericalPolygon) Points() []vecmath.Vec { return p.vertices }
