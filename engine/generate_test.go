package engine

import (
	"testing"

	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/scroll"
)

func singleSectionChart(length int64, bpm float64, sig int) *chart.Chart {
	return &chart.Chart{
		Length:   length,
		Sections: []chart.TimingSection{{Start: 0, BPM: bpm, Signature: sig}},
	}
}

func TestBuildLinesSingleBar(t *testing.T) {
	// 120 BPM in 4/4 steps every 2000ms; a 2000ms track holds one bar line
	c := singleSectionChart(2000, 120, 4)
	lines := BuildLines(c, scroll.NewConstantMapper(1.0))

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Time != 0 || lines[0].Track != 0 {
		t.Errorf("unexpected line %+v, want time 0 track 0", lines[0])
	}
}

func TestBuildLinesCadenceCount(t *testing.T) {
	c := singleSectionChart(100000, 120, 4) // step 2000ms
	lines := BuildLines(c, scroll.NewConstantMapper(1.0))
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for i, ln := range lines {
		if ln.Time != int64(i)*2000 {
			t.Fatalf("line %d at %d, want %d", i, ln.Time, int64(i)*2000)
		}
	}
}

func TestBuildLinesMonotonic(t *testing.T) {
	c := chart.Demo()
	lines := BuildLines(c, scroll.NewVelocityMapper(1.0, c.Velocities))

	for i := 1; i < len(lines); i++ {
		if lines[i].Time < lines[i-1].Time {
			t.Fatalf("timestamps regress at %d: %d < %d", i, lines[i].Time, lines[i-1].Time)
		}
		if lines[i].Track < lines[i-1].Track {
			t.Fatalf("offsets regress at %d: %v < %v", i, lines[i].Track, lines[i-1].Track)
		}
	}
}

func TestBuildLinesSectionBoundaries(t *testing.T) {
	c := &chart.Chart{
		Length: 10000,
		Sections: []chart.TimingSection{
			{Start: 0, BPM: 60, Signature: 4},    // step 4000, ends before 7999
			{Start: 8000, BPM: 60, Signature: 1}, // step 1000, ends before 10000
		},
	}
	lines := BuildLines(c, scroll.NewConstantMapper(1.0))

	want := []int64{0, 4000, 8000, 9000}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d (%+v)", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i].Time != w {
			t.Errorf("line %d at %d, want %d", i, lines[i].Time, w)
		}
	}
}

func TestBuildLinesDegenerateSectionsSkipped(t *testing.T) {
	c := &chart.Chart{
		Length: 18000,
		Sections: []chart.TimingSection{
			{Start: 0, BPM: 120, Signature: 4},
			{Start: 4000, BPM: 0, Signature: 4},
			{Start: 8000, BPM: 120, Signature: 0},
			{Start: 12000, BPM: -30, Signature: 4},
			{Start: 16000, BPM: 120, Signature: 4},
		},
	}
	lines := BuildLines(c, scroll.NewConstantMapper(1.0))

	want := []int64{0, 2000, 16000}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, w := range want {
		if lines[i].Time != w {
			t.Errorf("line %d at %d, want %d", i, lines[i].Time, w)
		}
	}
}

func TestBuildLinesHiddenSectionSkipped(t *testing.T) {
	c := &chart.Chart{
		Length: 6000,
		Sections: []chart.TimingSection{
			{Start: 0, BPM: 120, Signature: 4, Hidden: true},
			{Start: 4000, BPM: 120, Signature: 4},
		},
	}
	lines := BuildLines(c, scroll.NewConstantMapper(1.0))

	if len(lines) != 1 || lines[0].Time != 4000 {
		t.Fatalf("expected one line at 4000, got %+v", lines)
	}
}

func TestBuildLinesClampsExtremeBPM(t *testing.T) {
	c := singleSectionChart(100, 1e9, 4)
	lines := BuildLines(c, scroll.NewConstantMapper(1.0))

	// Clamped to 9999 BPM: step = 4 * 60000/9999 ~= 24.002ms
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines under clamped cadence, got %d", len(lines))
	}
	if lines[1].Time != 24 {
		t.Errorf("second line at %d, want 24", lines[1].Time)
	}
}

func TestBuildLinesTrackUsesMapper(t *testing.T) {
	c := singleSectionChart(10000, 120, 4)
	lines := BuildLines(c, scroll.NewConstantMapper(2.5))

	for _, ln := range lines {
		if ln.Track != float64(ln.Time)*2.5 {
			t.Errorf("line at %d has track %v, want %v", ln.Time, ln.Track, float64(ln.Time)*2.5)
		}
	}
}
