package engine

import (
	"math"

	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/scroll"
)

// BuildLines expands chart sections into the bar line arena. Sections are
// walked in order; each emits a line every Signature beats from its start
// while strictly below its end boundary, which is one time unit before the
// next section's start (the chart length for the last section). Hidden
// sections and degenerate cadences emit nothing and generation continues.
//
// The beat cursor accumulates in float64; each emitted timestamp truncates
// it, and the stored track offset is mapped from that truncated value so
// time and position always agree.
func BuildLines(c *chart.Chart, m scroll.Mapper) []BarLine {
	lines := make([]BarLine, 0, estimateLines(c))
	for i := range c.Sections {
		sec := &c.Sections[i]
		if sec.Hidden {
			continue
		}

		end := c.Length
		if i+1 < len(c.Sections) {
			end = c.Sections[i+1].Start - parameter.SectionGapMs
		}

		bpm := sec.BPM
		if bpm > parameter.MaxBPM {
			bpm = parameter.MaxBPM
		}
		if bpm <= 0 || sec.Signature <= 0 {
			continue
		}

		step := float64(sec.Signature) * (parameter.MsPerMinute / bpm)
		if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
			continue
		}

		for t := float64(sec.Start); t < float64(end); t += step {
			ts := int64(t)
			lines = append(lines, BarLine{Time: ts, Track: m.OffsetAt(ts)})
		}
	}
	return lines
}

// estimateLines upper-bounds the arena size so generation appends without
// regrowth on well-formed charts
func estimateLines(c *chart.Chart) int {
	n := 0
	for i := range c.Sections {
		sec := &c.Sections[i]
		if sec.Hidden || sec.BPM <= 0 || sec.Signature <= 0 {
			continue
		}
		end := c.Length
		if i+1 < len(c.Sections) {
			end = c.Sections[i+1].Start
		}
		span := end - sec.Start
		if span <= 0 {
			continue
		}
		bpm := math.Min(sec.BPM, parameter.MaxBPM)
		step := float64(sec.Signature) * (parameter.MsPerMinute / bpm)
		n += int(float64(span)/step) + 1
	}
	return n
}
