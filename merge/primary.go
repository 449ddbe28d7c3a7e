package merge

import (
	"github.com/geotess-go/geotess/mesh"
	"github.com/geotess-go/geotess/solid"
)

// primaryPolicy drives the primary build: a triangle divides iff at least
// one input, walked to the same level and center, has already been fully
// subdivided there.
type primaryPolicy struct {
	inputs []*mesh.Tessellation
	starts []mesh.TriangleID
}

func newPrimaryPolicy(inputs []*mesh.Tessellation) *primaryPolicy {
	starts := make([]mesh.TriangleID, len(inputs))
	for i, in := range inputs {
		starts[i] = in.LevelTriangles(0)[0]
	}
	return &primaryPolicy{inputs: inputs, starts: starts}
}

func (p *primaryPolicy) IsDivisible(ts *mesh.Tessellation, t mesh.TriangleID) bool {
	level := ts.TessLevel(t)
	center := ts.Center(t)
	for i, in := range p.inputs {
		if level >= in.NumLevels() {
			continue
		}
		found, err := in.FindTriangleAtLevel(p.starts[i], level, center)
		if err != nil {
			continue
		}
		if in.NDescendants(found) == 4 {
			return true
		}
	}
	return false
}

func (p *primaryPolicy) PopulateNodes(ts *mesh.Tessellation, level int) {}

// Primary builds the coarsest tessellation, seeded from seed, whose
// subdivision is at least as fine as every tessellation in inputs
// everywhere on the sphere. inputs must share seed's initial
// solid; Primary does not itself verify that precondition.
func Primary(seed *solid.Solid, inputs []*mesh.Tessellation, opts ...mesh.Option) (*mesh.Tessellation, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	policy := newPrimaryPolicy(inputs)
	primary := mesh.New(seed, policy, opts...)
	if err := primary.Build(); err != nil {
		return nil, err
	}
	return primary, nil
}

// MergeNodes rewrites every input's triangle corner references onto
// primary's vertex table: for each input vertex, a colocated match in
// primary is located by walking search, and every triangle referencing
// that vertex is updated to reference primary's vertex instead. After MergeNodes, every Tessellation in inputs
// shares primary's vertex arena.
func MergeNodes(primary *mesh.Tessellation, inputs []*mesh.Tessellation) error {
	start := primary.LevelTriangles(0)[0]
	for idx, in := range inputs {
		mapping := make([]mesh.VertexID, in.NumVertices())
		for v := 0; v < in.NumVertices(); v++ {
			pos := in.VertexPos(mesh.VertexID(v))
			pv, ok, err := primary.FindVertex(start, pos)
			if err != nil {
				return err
			}
			if !ok {
				return &VertexNotFoundError{InputIndex: idx, VertexIndex: v}
			}
			mapping[v] = pv
		}
		in.AdoptVertices(primary, mapping)
	}
	return nil
}
