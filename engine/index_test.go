package engine

import (
	"testing"

	"github.com/lixenwraith/beatline/core"
)

func TestIndexTwoLookupCoverage(t *testing.T) {
	offsets := []float64{-3200, -1500.5, -400, 0, 1, 499.9, 500, 999, 1500, 2500, 7777, 10000}
	lines := make([]BarLine, len(offsets))
	for i, off := range offsets {
		lines[i] = BarLine{Track: off}
	}
	threshold := 500.0
	ix := newTrackIndex(lines, threshold)

	positions := []float64{-3000, -1000, -500, 0, 250, 500, 1000, 2000, 7777, 9600}
	for _, p := range positions {
		got := make(map[core.LineID]bool)
		for _, id := range ix.lookup(p - threshold) {
			got[id] = true
		}
		for _, id := range ix.lookup(p + threshold) {
			got[id] = true
		}
		for i, off := range offsets {
			if dist(off, p) <= threshold && !got[core.LineID(i)] {
				t.Errorf("position %v: offset %v inside window but missing from lookup union", p, off)
			}
		}
	}
}

func TestIndexNegativeOffsetsFloorKeys(t *testing.T) {
	lines := []BarLine{{Track: -1500}, {Track: -500}, {Track: 500}}
	ix := newTrackIndex(lines, 500) // cell size 1000

	if k := ix.keyFor(-1500); k != -2 {
		t.Errorf("keyFor(-1500) = %d, want -2", k)
	}
	if k := ix.keyFor(-500); k != -1 {
		t.Errorf("keyFor(-500) = %d, want -1", k)
	}
	if k := ix.keyFor(500); k != 0 {
		t.Errorf("keyFor(500) = %d, want 0", k)
	}

	if got := ix.lookup(-1500); len(got) != 1 || got[0] != 0 {
		t.Errorf("lookup(-1500) = %v, want [0]", got)
	}
}

func TestIndexLookupEmptyBucket(t *testing.T) {
	ix := newTrackIndex(nil, 500)
	if got := ix.lookup(12345); got != nil {
		t.Errorf("expected nil for empty bucket, got %v", got)
	}
}
