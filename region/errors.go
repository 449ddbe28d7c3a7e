package region

import "errors"

// ErrEmptyPolygon indicates a SphericalPolygon was constructed with fewer
// than three vertices, too few to bound a region of the sphere.
var ErrEmptyPolygon = errors.New("region: polygon needs at least 3 vertices")

// ErrInvalidRadius indicates a SphericalCap was constructed with a radius
// outside (0, pi].
var ErrInvalidRadius = errors.New("region: cap radius must be in (0, pi]")
