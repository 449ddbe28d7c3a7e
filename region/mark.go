package region

import (
	"sync"

	"github.com/geotess-go/geotess/mesh"
)

// batchSize is the per-task vertex-count threshold for switching from
// sequential to parallel marking.
const batchSize = 1000

// MarkVertices marks every vertex of level's triangles that lies inside reg
// and is not already marked. It runs sequentially unless both the vertex
// count reaches batchSize and maxProcessors allows at least two concurrent
// workers; workers only ever write their own batch's marks, so no
// synchronization beyond the closing WaitGroup is needed.
func MarkVertices(ts *mesh.Tessellation, level int, reg Region, maxProcessors int) {
	vertices := uniqueLevelVertices(ts, level)
	if len(vertices) >= batchSize && maxProcessors >= 2 {
		markParallel(ts, vertices, reg)
		return
	}
	markBatch(ts, vertices, reg)
}

// uniqueLevelVertices collects, in first-seen order, every corner vertex
// across level's triangles.
func uniqueLevelVertices(ts *mesh.Tessellation, level int) []mesh.VertexID {
	seen := make(map[mesh.VertexID]bool)
	var out []mesh.VertexID
	for _, t := range ts.LevelTriangles(level) {
		for _, v := range ts.Corners(t) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// markBatch marks every vertex in vertices found inside reg; it is the
// unit of work both the sequential and parallel paths run.
func markBatch(ts *mesh.Tessellation, vertices []mesh.VertexID, reg Region) {
	for _, v := range vertices {
		if ts.IsMarked(v) {
			continue
		}
		if reg.Contains(ts.VertexPos(v)) {
			ts.Mark(v)
		}
	}
}

// markParallel splits vertices into batches of ~batchSize and runs one
// goroutine per batch, each writing only the marks of its own vertices.
func markParallel(ts *mesh.Tessellation, vertices []mesh.VertexID, reg Region) {
	var wg sync.WaitGroup
	for start := 0; start < len(vertices); start += batchSize {
		end := start + batchSize
		if end > len(vertices) {
			end = len(vertices)
		}
		wg.Add(1)
		go func(batch []mesh.VertexID) {
			defer wg.Done()
			markBatch(ts, batch, reg)
		}(vertices[start:end])
	}
	wg.Wait()
}
