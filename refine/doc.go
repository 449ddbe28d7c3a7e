// Package refine supplies two mesh.Policy implementations: UniformPolygon
// drives a fresh build from a uniform base level
// plus polygon/point coverage targets, and MirrorExisting refines an
// existing Tessellation one extra level deep near a set of marked vertices.
package refine
