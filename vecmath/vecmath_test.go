package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geotess-go/geotess/vecmath"
)

func TestAngleOfIdenticalVectorsIsZero(t *testing.T) {
	v := vecmath.Unit(vecmath.Vec{X: 1, Y: 2, Z: 3})
	require.InDelta(t, 0, vecmath.Angle(v, v), 1e-12)
}

func TestAngleOfAntipodesIsPi(t *testing.T) {
	v := vecmath.Vec{X: 0, Y: 0, Z: 1}
	require.InDelta(t, math.Pi, vecmath.Angle(v, vecmath.Scale(-1, v)), 1e-12)
}

func TestEqualUsesFixedTolerance(t *testing.T) {
	a := vecmath.Vec{X: 0, Y: 0, Z: 1}
	require.True(t, vecmath.Equal(a, a))
	require.False(t, vecmath.Equal(a, vecmath.Vec{X: 0, Y: 1, Z: 0}))
}

func TestCircumCenterOfEquilateralTriangleIsCentroidDirection(t *testing.T) {
	a := vecmath.Vec{X: 1, Y: 0, Z: 0}
	b := vecmath.Vec{X: 0, Y: 1, Z: 0}
	c := vecmath.Vec{X: 0, Y: 0, Z: 1}
	cc := vecmath.CircumCenter(a, b, c)
	want := vecmath.Unit(vecmath.Vec{X: 1, Y: 1, Z: 1})
	require.InDelta(t, 1, vecmath.Dot(cc, want), 1e-9)
}

func TestCircumCenterStableNearCollinear(t *testing.T) {
	a := vecmath.Vec{X: 1, Y: 0, Z: 0}
	b := vecmath.Unit(vecmath.Vec{X: 1, Y: 1e-9, Z: 0})
	c := vecmath.Unit(vecmath.Vec{X: 1, Y: 2e-9, Z: 0})
	cc := vecmath.CircumCenter(a, b, c)
	require.InDelta(t, 1, vecmath.Dot(cc, cc), 1e-6)
}

func TestScalarTripleProductAntisymmetric(t *testing.T) {
	a := vecmath.Vec{X: 1, Y: 0, Z: 0}
	b := vecmath.Vec{X: 0, Y: 1, Z: 0}
	c := vecmath.Vec{X: 0, Y: 0, Z: 1}
	require.InDelta(t, -vecmath.ScalarTripleProduct(b, a, c), vecmath.ScalarTripleProduct(a, b, c), 1e-12)
}

func TestEulerRoundTripIdentity(t *testing.T) {
	v := vecmath.Unit(vecmath.Vec{X: 0.3, Y: 0.4, Z: 0.5})
	e := vecmath.EulerAngles{Alpha: 37, Beta: 52, Gamma: -18}
	rotated := e.Rotate(v)
	require.InDelta(t, 1, vecmath.Dot(rotated, rotated), 1e-9)
	back := vecmath.EulerAngles{Alpha: -e.Gamma, Beta: -e.Beta, Gamma: -e.Alpha}.Rotate(rotated)
	diff := vecmath.Sub(back, v)
	require.InDelta(t, 0, vecmath.Dot(diff, diff), 1e-24)
}

func TestRotationToPlaceAtHitsTarget(t *testing.T) {
	v0 := vecmath.Vec{X: 0, Y: 0, Z: 1}
	rot := vecmath.RotationToPlaceAt(v0, 30, 60)
	got := rot(v0)
	want := vecmath.LatLonToUnit(30, 60)
	require.InDelta(t, 1, vecmath.Dot(got, want), 1e-9)
}

func TestEulerToPlaceAtHitsTarget(t *testing.T) {
	v0 := vecmath.Vec{X: 0, Y: 0, Z: 1}
	e := vecmath.EulerToPlaceAt(v0, 30, 60)
	got := e.Rotate(v0)
	want := vecmath.LatLonToUnit(30, 60)
	require.InDelta(t, 1, vecmath.Dot(got, want), 1e-9)
}
