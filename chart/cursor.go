package chart

// Cursor walks a chart's sections under monotonic time queries. The HUD and
// the metronome advance it with the playback clock; Seek never scans more
// sections than playback actually crossed. Rewinding restarts the walk.
type Cursor struct {
	chart *Chart
	idx   int
}

func NewCursor(c *Chart) *Cursor {
	return &Cursor{chart: c, idx: -1}
}

// Seek returns the section governing time t, or nil before the first section
func (cu *Cursor) Seek(t int64) *TimingSection {
	secs := cu.chart.Sections
	if cu.idx >= 0 && cu.idx < len(secs) && t < secs[cu.idx].Start {
		cu.idx = -1
	}
	for cu.idx+1 < len(secs) && secs[cu.idx+1].Start <= t {
		cu.idx++
	}
	if cu.idx < 0 {
		return nil
	}
	return &secs[cu.idx]
}
