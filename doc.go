// Package geotess builds hierarchical, conforming triangular tessellations
// of the unit sphere from a Platonic seed solid, refines them adaptively
// near regions of interest, merges several tessellations onto one shared
// vertex set, and assembles the result into a flat, content-hashed Grid.
//
// The heavy lifting lives in focused subpackages:
//
//	vecmath/ — unit-vector algebra and rotation
//	solid/   — the fixed Platonic seed catalog
//	mesh/    — the Vertex/Edge/Triangle arena and subdivision engine
//	refine/  — pluggable subdivision policies
//	region/  — spherical containment oracles
//	merge/   — shared-vertex-table tessellation merging
//	grid/    — flattening, Delaunay repair, content hashing
//
// This package is a thin facade (Build, Refine, Merge, Assemble) over that
// pipeline, with structured logging around each stage.
package geotess
