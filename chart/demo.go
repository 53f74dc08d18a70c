package chart

// Demo returns the built-in chart used when no file is given: sections
// exercising a tempo change, a meter change, a hidden span and SV ramps
func Demo() *Chart {
	return &Chart{
		Title:  "builtin cascade",
		Length: 96000,
		Sections: []TimingSection{
			{Start: 0, BPM: 120, Signature: 4},
			{Start: 32000, BPM: 150, Signature: 3},
			{Start: 56000, BPM: 150, Signature: 3, Hidden: true},
			{Start: 64000, BPM: 174, Signature: 4},
		},
		Velocities: []Velocity{
			{Time: 16000, Multiplier: 1.25},
			{Time: 32000, Multiplier: 1.0},
			{Time: 72000, Multiplier: 1.5},
		},
	}
}
