package grid

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
)

// contentHash computes a fixed-128-bit fingerprint: MD5 over
// tessellations || levels || triangles || vertices, each array serialized
// as fixed-width big-endian fields in the order it appears in the Grid,
// rendered as uppercase hex. Any implementation that preserves the flat
// arrays' ordering produces the same hash.
func contentHash(g *Grid) string {
	h := md5.New()
	var scratch [8]byte

	writeInt := func(v int) {
		binary.BigEndian.PutUint64(scratch[:], uint64(int64(v)))
		h.Write(scratch[:])
	}
	writeFloat := func(v float64) {
		binary.BigEndian.PutUint64(scratch[:], math.Float64bits(v))
		h.Write(scratch[:])
	}

	for _, tr := range g.Tessellations {
		writeInt(tr.Start)
		writeInt(tr.End)
	}
	for _, lr := range g.Levels {
		writeInt(lr.Start)
		writeInt(lr.End)
	}
	for _, tri := range g.T {
		writeInt(tri[0])
		writeInt(tri[1])
		writeInt(tri[2])
	}
	for _, v := range g.V {
		writeFloat(v.X)
		writeFloat(v.Y)
		writeFloat(v.Z)
	}

	return fmt.Sprintf("%X", h.Sum(nil))
}
