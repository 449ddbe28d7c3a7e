// Package mesh is the tessellation engine: Vertex, Edge and Triangle arenas
// owned by one Tessellation, the subdivision and conformalization build
// loop, walking-triangle search, and the integrity self-test.
//
// Vertices, Edges and Triangles are not pointers into a heap of individually
// allocated objects; they are records in per-Tessellation slices ("arenas"),
// addressed by dense index types (VertexID, EdgeID, TriangleID). Neighbor,
// ancestor, descendant and edge-side references are plain indices with a
// reserved "no value" sentinel (NoVertex, NoEdge, NoTriangle), rather than
// pointers — this keeps a Tessellation trivially copyable, hashable and
// free of reference cycles.
//
//	ts := mesh.New(seed, policy, mesh.WithMaxProcessors(4))
//	if err := ts.Build(); err != nil { ... }
//	if err := ts.Validate(); err != nil { ... }
package mesh
