package grid

import (
	"math"

	"github.com/geotess-go/geotess/vecmath"
)

const tilingTolerance = 1e-6

// Validate self-tests a finished Grid: every triangle's corner indices
// must reference the shared vertex table, every level range must lie
// within the triangle table, the tessellation ranges must be contiguous and
// together cover every level, and each level's triangles must together
// cover the sphere exactly once.
func (g *Grid) Validate() error {
	for _, tri := range g.T {
		for _, v := range tri {
			if v < 0 || v >= len(g.V) {
				return &IntegrityError{Invariant: "vertex-range", Detail: "triangle references out-of-range vertex", Level: -1}
			}
		}
	}

	for i, lr := range g.Levels {
		if lr.Start < 0 || lr.End > len(g.T) || lr.Start > lr.End {
			return &IntegrityError{Invariant: "level-range", Level: i, Detail: "level range out of bounds"}
		}
		if err := g.validateTiling(i, lr); err != nil {
			return err
		}
	}

	prevLevelEnd := 0
	for _, tr := range g.Tessellations {
		if tr.Start != prevLevelEnd {
			return &IntegrityError{Invariant: "tessellation-range", Detail: "tessellation level ranges are not contiguous"}
		}
		if tr.Start < 0 || tr.End > len(g.Levels) || tr.Start > tr.End {
			return &IntegrityError{Invariant: "tessellation-range", Detail: "tessellation range out of bounds"}
		}
		prevLevelEnd = tr.End
	}
	if prevLevelEnd != len(g.Levels) {
		return &IntegrityError{Invariant: "tessellation-range", Detail: "tessellation ranges do not cover all levels"}
	}
	return nil
}

func (g *Grid) validateTiling(level int, lr LevelRange) error {
	sum := 0.0
	for ti := lr.Start; ti < lr.End; ti++ {
		sum += g.solidAngle(ti)
	}
	if math.Abs(sum-4*math.Pi) > tilingTolerance {
		return &IntegrityError{Invariant: "tiling", Level: level, Detail: "level solid angle does not sum to 4*pi"}
	}
	return nil
}

// solidAngle recomputes a flat triangle's spherical excess directly from
// its corner positions, mirroring mesh.Tessellation.SolidAngle without
// depending on package mesh (the Grid no longer carries neighbor links).
func (g *Grid) solidAngle(ti int) float64 {
	tri := g.T[ti]
	v := [3]vecmath.Vec{g.V[tri[0]], g.V[tri[1]], g.V[tri[2]]}
	var cross [3]vecmath.Vec
	for k := 0; k < 3; k++ {
		cross[k] = vecmath.Unit(vecmath.Cross(v[(k+1)%3], v[k]))
	}
	sum := 0.0
	for k := 0; k < 3; k++ {
		sum += vecmath.Angle(cross[(k+1)%3], cross[(k+2)%3])
	}
	return 2*math.Pi - sum
}
