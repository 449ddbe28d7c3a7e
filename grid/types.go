package grid

import "github.com/geotess-go/geotess/vecmath"

// LevelRange is a (start, end) index pair into Grid.T selecting one level's
// triangles.
type LevelRange struct {
	Start, End int
}

// TessellationRange is a (start, end) index pair into Grid.Levels selecting
// one tessellation's levels.
type TessellationRange struct {
	Start, End int
}

// Grid is the flat, content-hashed output representation: one shared vertex
// table, one flat triangle table ordered tessellation-then-level-then-
// insertion, and the index ranges that carve it back into levels and
// tessellations.
type Grid struct {
	V             []vecmath.Vec
	T             [][3]int
	Levels        []LevelRange
	Tessellations []TessellationRange
	ContentHash   string
}

// NumVertices reports the size of the shared vertex table.
func (g *Grid) NumVertices() int { return len(g.V) }

// NumTriangles reports the size of the flat triangle table.
func (g *Grid) NumTriangles() int { return len(g.T) }

// NumTessellations reports how many tessellations were flattened into g.
func (g *Grid) NumTessellations() int { return len(g.Tessellations) }
