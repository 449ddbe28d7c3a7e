package grid

import "github.com/geotess-go/geotess/vecmath"

// edgeEntry records the (at most two) triangles sharing one edge within a
// single level: tri1/tri2 are indices into Grid.T, opp1/opp2 are the local
// corner index of the vertex opposite that edge in each triangle.
type edgeEntry struct {
	tri1, tri2 int
	opp1, opp2 int
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// buildEdgeMap indexes every edge of the triangles in [lr.Start, lr.End).
func buildEdgeMap(g *Grid, lr LevelRange) map[[2]int]*edgeEntry {
	em := make(map[[2]int]*edgeEntry)
	for ti := lr.Start; ti < lr.End; ti++ {
		tri := g.T[ti]
		for i := 0; i < 3; i++ {
			a, b := tri[(i+1)%3], tri[(i+2)%3]
			key := edgeKey(a, b)
			if e, ok := em[key]; ok {
				e.tri2, e.opp2 = ti, i
			} else {
				em[key] = &edgeEntry{tri1: ti, opp1: i, tri2: -1, opp2: -1}
			}
		}
	}
	return em
}

// flipLevel runs the Delaunay flip pass over one level: any
// edge whose opposite vertex in the neighboring triangle lies closer (by
// dot product from the first triangle's circumcenter) than its own
// opposite vertex has its diagonal swapped. Because a swap invalidates the
// local edge map around it, the map is rebuilt from scratch after every
// flip; real meshes from Build rarely trigger one.
func flipLevel(g *Grid, levelIdx int) {
	lr := g.Levels[levelIdx]
	em := buildEdgeMap(g, lr)
	queue := pendingFlips(em)

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.tri2 < 0 {
			continue
		}
		t1, t2 := g.T[e.tri1], g.T[e.tri2]
		a, b := t1[(e.opp1+1)%3], t1[(e.opp1+2)%3]
		p1, p2 := t1[e.opp1], t2[e.opp2]

		center := vecmath.CircumCenter(g.V[t1[0]], g.V[t1[1]], g.V[t1[2]])
		if vecmath.Dot(center, g.V[p2]) <= vecmath.Dot(center, g.V[p1]) {
			continue
		}

		g.T[e.tri1] = [3]int{p1, a, p2}
		g.T[e.tri2] = [3]int{p2, b, p1}

		em = buildEdgeMap(g, lr)
		queue = pendingFlips(em)
	}
}

func pendingFlips(em map[[2]int]*edgeEntry) []*edgeEntry {
	out := make([]*edgeEntry, 0, len(em))
	for _, e := range em {
		if e.tri2 >= 0 {
			out = append(out, e)
		}
	}
	return out
}
