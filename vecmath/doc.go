// Package vecmath provides the unit-vector algebra used throughout the
// tessellation engine: dot/cross products, normalization, great-circle
// angles, Euler rotations, and spherical circumcenters.
//
// Every vector here is expected to already sit on (or very near) the unit
// sphere; callers that need a fresh unit vector from an arbitrary direction
// should go through Unit.
//
//	v := vecmath.Unit(r3.Vec{X: 1, Y: 1, Z: 1})
//	d := vecmath.Angle(a, b) // radians
package vecmath
