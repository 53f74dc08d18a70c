package chart

import "sort"

// TimingSection is one tempo segment of a chart. A section governs the span
// from Start until the next section's Start; the last one runs to the chart
// length. Hidden sections keep their tempo authority but emit no bar lines.
type TimingSection struct {
	Start     int64   `mapstructure:"start"`
	BPM       float64 `mapstructure:"bpm"`
	Signature int     `mapstructure:"signature"` // beats per bar
	Hidden    bool    `mapstructure:"hidden"`
}

// Velocity is a scroll-speed multiplier taking effect at Time
type Velocity struct {
	Time       int64   `mapstructure:"time"`
	Multiplier float64 `mapstructure:"multiplier"`
}

// Chart is the ordered timeline a field is built from
type Chart struct {
	Title      string
	Length     int64 // track length in milliseconds
	Sections   []TimingSection
	Velocities []Velocity
}

// Normalize sorts sections and velocities by start time. Generation assumes
// non-decreasing section order; authored files may arrive out of order
func (c *Chart) Normalize() {
	sort.SliceStable(c.Sections, func(i, j int) bool {
		return c.Sections[i].Start < c.Sections[j].Start
	})
	sort.SliceStable(c.Velocities, func(i, j int) bool {
		return c.Velocities[i].Time < c.Velocities[j].Time
	})
}
