package vecmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is the unit-vector type used across the tessellation engine. It is an
// alias for gonum's r3.Vec so that callers can freely mix vecmath helpers
// with gonum's own r3 arithmetic (Add, Sub, Scale, ...).
type Vec = r3.Vec

// VertexEqualityCosine is the dot-product threshold above which two unit
// vectors are considered the same location on the sphere: v1·v2 > cos(1e-7).
var VertexEqualityCosine = math.Cos(1e-7)

// TriangleInsideTolerance is the minimum scalar-triple-product value (a
// small negative slack) at which a point is still considered inside or on
// the boundary of a triangle.
const TriangleInsideTolerance = -1e-15

// WalkCoincidenceTolerance is the minimum barycentric coefficient at which a
// walking search treats a point as coincident with a triangle corner.
const WalkCoincidenceTolerance = 0.999999999

// Dot returns the dot product of a and b.
func Dot(a, b Vec) float64 { return r3.Dot(a, b) }

// Cross returns the cross product a × b.
func Cross(a, b Vec) Vec { return r3.Cross(a, b) }

// Unit returns v normalized to unit length. The zero vector normalizes to
// the zero vector (gonum's r3.Unit contract); callers on the hot path never
// feed it a zero vector because every vertex on the sphere is non-zero.
func Unit(v Vec) Vec { return r3.Unit(v) }

// Add is re-exported for callers that build vecmath.Vec values without
// importing gonum/spatial/r3 directly.
func Add(a, b Vec) Vec { return r3.Add(a, b) }

// Sub is re-exported for the same reason as Add.
func Sub(a, b Vec) Vec { return r3.Sub(a, b) }

// Scale is re-exported for the same reason as Add.
func Scale(f float64, v Vec) Vec { return r3.Scale(f, v) }

// ScalarTripleProduct returns (a × b) · c.
func ScalarTripleProduct(a, b, c Vec) float64 {
	return Dot(Cross(a, b), c)
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Angle returns the great-circle distance between two unit vectors, in
// radians: acos(clamp(a·b, -1, 1)).
func Angle(a, b Vec) float64 {
	return math.Acos(clamp(Dot(a, b), -1, 1))
}

// Equal reports whether a and b represent the same vertex location under the
// fixed compatibility tolerance (VertexEqualityCosine).
func Equal(a, b Vec) bool {
	return Dot(a, b) > VertexEqualityCosine
}

// CircumCenter returns the unit vector equidistant, by great-circle angle,
// from the three corners of the spherical triangle (a, b, c). It is the
// normalized plane normal of (b-a, c-a), oriented toward the triangle's
// centroid so the result is stable (and well-defined in sign) even when the
// three corners are nearly collinear; in the fully-degenerate case it falls
// back to the normalized centroid.
func CircumCenter(a, b, c Vec) Vec {
	n := Cross(Sub(b, a), Sub(c, a))
	centroid := Add(Add(a, b), c)
	if Dot(n, centroid) < 0 {
		n = Scale(-1, n)
	}
	if norm := r3.Norm(n); norm > 1e-12 {
		return Scale(1/norm, n)
	}
	return Unit(centroid)
}

// EulerAngles are the three Z-Y-Z Euler rotation angles, in degrees, applied
// in order: rotate by Alpha about the fixed Z axis, then by Beta about the
// fixed Y axis, then by Gamma about the fixed Z axis. Used only for
// seed-solid rotation.
type EulerAngles struct {
	Alpha, Beta, Gamma float64
}

func axisRotation(angleDeg float64, axis Vec) r3.Rotation {
	return r3.NewRotation(angleDeg*math.Pi/180, axis)
}

// Rotate applies the Z-Y-Z Euler rotation to v.
func (e EulerAngles) Rotate(v Vec) Vec {
	v = axisRotation(e.Alpha, Vec{Z: 1}).Rotate(v)
	v = axisRotation(e.Beta, Vec{Y: 1}).Rotate(v)
	v = axisRotation(e.Gamma, Vec{Z: 1}).Rotate(v)
	return v
}

// EulerMatrix is kept as a thin functional wrapper (rather than an explicit
// 3x3 matrix type) so that EulerRotate and EulerAngles.Rotate share one
// rotation path, whether callers hand in explicit Euler angles or a lat/lon
// pair already converted to them.
type EulerMatrix func(Vec) Vec

// NewEulerMatrix builds the rotation function for the given Euler angles.
func NewEulerMatrix(alphaDeg, betaDeg, gammaDeg float64) EulerMatrix {
	e := EulerAngles{Alpha: alphaDeg, Beta: betaDeg, Gamma: gammaDeg}
	return e.Rotate
}

// EulerRotate applies matrix m to v.
func EulerRotate(v Vec, m EulerMatrix) Vec {
	return m(v)
}

// LatLonToUnit converts a latitude/longitude pair, in degrees, to a unit
// vector (X toward lon=0/lat=0, Z toward the north pole).
func LatLonToUnit(latDeg, lonDeg float64) Vec {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	cosLat := math.Cos(lat)
	return Vec{
		X: cosLat * math.Cos(lon),
		Y: cosLat * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// EulerToPlaceAt computes the Z-Y-Z Euler angles (degrees) that carry v0 to
// the point at (latDeg, lonDeg). It is one of two behaviorally equivalent
// ways of computing this rotation described in the design notes; the other,
// RotationToPlaceAt, composes the same rotation via an axis-angle shortcut.
func EulerToPlaceAt(v0 Vec, latDeg, lonDeg float64) EulerAngles {
	target := LatLonToUnit(latDeg, lonDeg)
	// Decompose as: first undo v0's own longitude, then slide along the
	// resulting meridian from v0's latitude to the target's latitude, then
	// rotate to the target's longitude. This keeps the "other variant" in
	// RotationToPlaceAt numerically independent while producing the same
	// mapping v0 -> target.
	v0Lat := math.Asin(clamp(v0.Z, -1, 1))
	v0Lon := math.Atan2(v0.Y, v0.X)
	tgtLat := math.Asin(clamp(target.Z, -1, 1))
	tgtLon := math.Atan2(target.Y, target.X)
	const rad2deg = 180 / math.Pi
	return EulerAngles{
		Alpha: -v0Lon * rad2deg,
		Beta:  (v0Lat - tgtLat) * rad2deg,
		Gamma: tgtLon * rad2deg,
	}
}

// RotationToPlaceAt returns the rotation function that carries v0 to the
// point at (latDeg, lonDeg) via the minimal axis-angle rotation between the
// two unit vectors, rather than an explicit Euler-angle decomposition. Per
// the design notes, this and EulerToPlaceAt must agree on the image of v0
// (both send v0 exactly to the same target point); they need not agree off
// that one vector.
func RotationToPlaceAt(v0 Vec, latDeg, lonDeg float64) EulerMatrix {
	target := LatLonToUnit(latDeg, lonDeg)
	axis := Cross(v0, target)
	axisNorm := r3.Norm(axis)
	if axisNorm < 1e-15 {
		if Dot(v0, target) > 0 {
			return func(v Vec) Vec { return v }
		}
		// Antipodal: any axis perpendicular to v0 gives a 180-degree flip.
		perp := Cross(v0, Vec{X: 1})
		if r3.Norm(perp) < 1e-9 {
			perp = Cross(v0, Vec{Y: 1})
		}
		rot := r3.NewRotation(math.Pi, Unit(perp))
		return rot.Rotate
	}
	angle := Angle(v0, target)
	rot := r3.NewRotation(angle, Scale(1/axisNorm, axis))
	return rot.Rotate
}
