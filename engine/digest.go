package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes every physics entity's transform and velocity
// Equal digests across runs mean identical simulation state
func Digest(w *World) uint64 {
	c := w.Components
	entities := w.Query().With(c.Transform).With(c.Velocity).Execute()

	buf := make([]byte, 0, len(entities)*40)
	for _, e := range entities {
		t, _ := c.Transform.Get(e)
		v, _ := c.Velocity.Get(e)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(t.Position.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(t.Position.Y))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.Y))
	}
	return xxhash.Sum64(buf)
}
