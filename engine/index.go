package engine

import (
	"math"

	"github.com/lixenwraith/beatline/core"
)

// trackIndex buckets line IDs by render-space offset so a frame's window
// query touches two cells instead of the whole arena. Cell size is twice the
// render threshold: a window of half-width <= threshold always fits inside
// two adjacent buckets. Built once per field, read-only afterwards.
type trackIndex struct {
	cellSize float64
	buckets  map[int64][]core.LineID
}

func newTrackIndex(lines []BarLine, threshold float64) *trackIndex {
	ix := &trackIndex{
		cellSize: threshold * 2,
		buckets:  make(map[int64][]core.LineID),
	}
	for i := range lines {
		key := ix.keyFor(lines[i].Track)
		ix.buckets[key] = append(ix.buckets[key], core.LineID(i))
	}
	return ix
}

// keyFor floors the offset so negative coordinates land in their own cells
// instead of collapsing toward bucket zero
func (ix *trackIndex) keyFor(offset float64) int64 {
	return int64(math.Floor(offset / ix.cellSize))
}

// lookup returns the bucket containing offset as a shared slice view
// Callers must not mutate or retain it. O(1), nil when empty
func (ix *trackIndex) lookup(offset float64) []core.LineID {
	return ix.buckets[ix.keyFor(offset)]
}
