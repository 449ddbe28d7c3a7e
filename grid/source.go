package grid

import "github.com/geotess-go/geotess/vecmath"

// tessellationSource adapts one tessellation's slice of a Grid into
// mesh.GridSource, letting mesh.NewFromGrid reconstruct it.
type tessellationSource struct {
	g      *Grid
	levels []LevelRange
}

// Source returns a mesh.GridSource view of the tessID-th tessellation
// flattened into g.
func (g *Grid) Source(tessID int) (*tessellationSource, error) {
	if tessID < 0 || tessID >= len(g.Tessellations) {
		return nil, ErrTessellationIndexOutOfRange
	}
	tr := g.Tessellations[tessID]
	return &tessellationSource{g: g, levels: g.Levels[tr.Start:tr.End]}, nil
}

// Vertices implements mesh.GridSource.
func (s *tessellationSource) Vertices() []vecmath.Vec { return s.g.V }

// Levels implements mesh.GridSource.
func (s *tessellationSource) Levels() [][][3]int {
	out := make([][][3]int, len(s.levels))
	for i, lr := range s.levels {
		faces := make([][3]int, 0, lr.End-lr.Start)
		for ti := lr.Start; ti < lr.End; ti++ {
			faces = append(faces, s.g.T[ti])
		}
		out[i] = faces
	}
	return out
}
