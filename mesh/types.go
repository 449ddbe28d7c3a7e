package mesh

import (
	"github.com/geotess-go/geotess/solid"
	"github.com/geotess-go/geotess/vecmath"
)

// VertexID, EdgeID and TriangleID are dense indices into a Tessellation's
// arenas. The zero value of none of them is meaningful on its own; always
// compare against the No* sentinels.
type (
	VertexID   int
	EdgeID     int
	TriangleID int
)

// Sentinel "no reference" values, used in place of nil pointers.
const (
	NoVertex   VertexID   = -1
	NoEdge     EdgeID     = -1
	NoTriangle TriangleID = -1
)

// Vertex is a unit-vector corner shared by every triangle that has it as a
// corner, across every level of the owning Tessellation. Identity is the
// VertexID, not the coordinates: two Vertex records at (nearly) the same
// position can coexist until a merge pass unifies them.
type Vertex struct {
	Pos   vecmath.Vec
	Index int // reassigned by setConnectivity; stable output ordering.

	mark       int
	triByLevel [][]TriangleID // triByLevel[level] = triangles at that level with this corner.
}

// Edge bonds the (at most) two triangles on either side of a shared side.
// Edge objects are shared by reference between adjacent triangles: a
// triangle and its neighbor hold the identical EdgeID for the side they
// share.
type Edge struct {
	Side1, Side2 TriangleID
	MidVertex    VertexID
	NDivisions   int
	Ancestor     EdgeID
}

// Triangle is an ordered corner triple, clockwise viewed from outside the
// sphere, plus the topology needed to subdivide, walk, and merge.
type Triangle struct {
	V         [3]VertexID
	Edges     [3]EdgeID // Edges[i] is opposite V[i]: it joins V[(i+1)%3] and V[(i+2)%3].
	Neighbors [3]TriangleID

	Ancestor     TriangleID
	Descendant   TriangleID
	NDescendants int // 0..4: children produced by this triangle's last subdivision.

	TessLevel int
	EdgeLevel int

	Index int
	mark  int

	circumCenter    vecmath.Vec
	circumCenterSet bool
}

// Policy decides, per triangle, whether it must be subdivided during the
// build loop, and marks vertices ahead of each level.
// Concrete policies live in package refine; Policy is declared here (rather
// than there) so that mesh does not need to import refine.
type Policy interface {
	// IsDivisible reports whether t must be subdivided on the current pass.
	IsDivisible(ts *Tessellation, t TriangleID) bool
	// PopulateNodes marks the vertices of level that require extra
	// refinement before the next subdivision pass runs.
	PopulateNodes(ts *Tessellation, level int)
}

// GridSource lets a Tessellation be reconstructed from an already-assembled
// grid's vertex table and per-level triangle index triples. Declared here, rather than
// depending on package grid, to avoid an import cycle (grid depends on mesh
// to assemble the very data this interface exposes); the value returned by
// package grid's Grid.Source method satisfies this interface structurally.
type GridSource interface {
	// Vertices returns this tessellation's vertex table, unit vectors.
	Vertices() []vecmath.Vec
	// Levels returns, per level, the triangle vertex-index triples
	// (indices into Vertices()), in clockwise-from-outside order.
	Levels() [][][3]int
}

// Tessellation owns one sequence of conforming triangular tilings of the
// unit sphere, each finer than the previous. It exclusively owns
// its Vertex, Edge and Triangle arenas.
type Tessellation struct {
	vertices  []Vertex
	edges     []Edge
	triangles []Triangle
	levels    [][]TriangleID

	baseTessLevel int
	seed          *solid.Solid
	policy        Policy
	maxProcessors int

	// pendingEdgeAncestor records, for a newly created child triangle, the
	// parent-edge ancestor (or NoEdge) each of its three positions should
	// chain to once establishLevelNeighbors creates the real Edge object
	// for that position. Deleted once all three positions have resolved.
	pendingEdgeAncestor map[TriangleID][3]EdgeID
}

// Option configures a Tessellation at construction.
type Option func(*Tessellation)

// WithBaseTessLevel sets the last uniformly refined level before adaptive
// refinement begins.
func WithBaseTessLevel(level int) Option {
	return func(t *Tessellation) { t.baseTessLevel = level }
}

// WithMaxProcessors records a worker-pool width, reported by MaxProcessors.
// Default is 1. Vertex marking during Build does not read it; it uses the
// width the policy was configured with.
func WithMaxProcessors(n int) Option {
	return func(t *Tessellation) {
		if n > 0 {
			t.maxProcessors = n
		}
	}
}

// New creates a Tessellation that will build from scratch off seed, driven
// by policy.
func New(seed *solid.Solid, policy Policy, opts ...Option) *Tessellation {
	t := &Tessellation{
		seed:                seed,
		policy:              policy,
		maxProcessors:       1,
		pendingEdgeAncestor: make(map[TriangleID][3]EdgeID),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MaxProcessors reports the configured worker-pool width.
func (ts *Tessellation) MaxProcessors() int { return ts.maxProcessors }

// BaseTessLevel reports the configured base (uniform) tessellation level.
func (ts *Tessellation) BaseTessLevel() int { return ts.baseTessLevel }

// NumLevels reports how many levels have been built so far.
func (ts *Tessellation) NumLevels() int { return len(ts.levels) }

// TopLevel returns the index of the most recently built level, or -1 if
// Build has not produced any level yet.
func (ts *Tessellation) TopLevel() int { return len(ts.levels) - 1 }

// LevelTriangles returns the ordered triangle IDs on the given level.
func (ts *Tessellation) LevelTriangles(level int) []TriangleID {
	if level < 0 || level >= len(ts.levels) {
		return nil
	}
	return ts.levels[level]
}

// NumVertices reports the size of the vertex arena.
func (ts *Tessellation) NumVertices() int { return len(ts.vertices) }

// NumTriangles reports the size of the triangle arena (including triangles
// superseded by subdivision, which are kept for ancestor/descendant chains).
func (ts *Tessellation) NumTriangles() int { return len(ts.triangles) }

// Stats is a read-only diagnostic snapshot. It carries no invariant of its
// own; it is a reporting convenience only.
type Stats struct {
	NumVertices      int
	NumLevels        int
	TrianglesByLevel []int
	MaxEdgeLevel     int
}

// Stats summarizes the current build state.
func (ts *Tessellation) Stats() Stats {
	s := Stats{
		NumVertices:      len(ts.vertices),
		NumLevels:        len(ts.levels),
		TrianglesByLevel: make([]int, len(ts.levels)),
	}
	for lvl, tris := range ts.levels {
		s.TrianglesByLevel[lvl] = len(tris)
		for _, tid := range tris {
			if e := ts.triangles[tid].EdgeLevel; e > s.MaxEdgeLevel {
				s.MaxEdgeLevel = e
			}
		}
	}
	return s
}
