package chart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeSorts(t *testing.T) {
	c := &Chart{
		Sections: []TimingSection{
			{Start: 5000, BPM: 150, Signature: 4},
			{Start: 0, BPM: 120, Signature: 4},
			{Start: 2500, BPM: 90, Signature: 3},
		},
		Velocities: []Velocity{
			{Time: 900, Multiplier: 2},
			{Time: 100, Multiplier: 0.5},
		},
	}
	c.Normalize()

	for i := 1; i < len(c.Sections); i++ {
		if c.Sections[i-1].Start > c.Sections[i].Start {
			t.Fatalf("sections not sorted at %d: %d > %d", i, c.Sections[i-1].Start, c.Sections[i].Start)
		}
	}
	if c.Velocities[0].Time != 100 {
		t.Errorf("velocities not sorted, first time = %d", c.Velocities[0].Time)
	}
}

func TestCursorWalk(t *testing.T) {
	c := &Chart{
		Sections: []TimingSection{
			{Start: 0, BPM: 120, Signature: 4},
			{Start: 1000, BPM: 150, Signature: 3},
			{Start: 5000, BPM: 60, Signature: 4},
		},
	}
	cu := NewCursor(c)

	if s := cu.Seek(-5); s != nil {
		t.Errorf("expected nil before first section, got BPM %v", s.BPM)
	}
	if s := cu.Seek(0); s == nil || s.BPM != 120 {
		t.Fatalf("Seek(0) returned %+v, want BPM 120", s)
	}
	if s := cu.Seek(999); s.BPM != 120 {
		t.Errorf("Seek(999) BPM = %v, want 120", s.BPM)
	}
	if s := cu.Seek(1000); s.BPM != 150 {
		t.Errorf("Seek(1000) BPM = %v, want 150", s.BPM)
	}
	if s := cu.Seek(9000); s.BPM != 60 {
		t.Errorf("Seek(9000) BPM = %v, want 60", s.BPM)
	}

	// Rewind restarts the walk
	if s := cu.Seek(500); s == nil || s.BPM != 120 {
		t.Errorf("Seek(500) after rewind = %+v, want BPM 120", s)
	}
}

func TestLoadChartFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	body := `
title = "loader check"
length = 4000

[[sections]]
start = 2000
bpm = 150
signature = 3

[[sections]]
start = 0
bpm = 120

[[velocities]]
time = 1000
multiplier = 1.5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Title != "loader check" || c.Length != 4000 {
		t.Errorf("header mismatch: %q %d", c.Title, c.Length)
	}
	if len(c.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(c.Sections))
	}
	// Normalized order with defaulted signature on the start=0 section
	if c.Sections[0].Start != 0 || c.Sections[0].Signature != 4 {
		t.Errorf("first section = %+v, want start 0 signature 4", c.Sections[0])
	}
	if c.Sections[1].BPM != 150 || c.Sections[1].Signature != 3 {
		t.Errorf("second section = %+v", c.Sections[1])
	}
	if len(c.Velocities) != 1 || c.Velocities[0].Multiplier != 1.5 {
		t.Errorf("velocities = %+v", c.Velocities)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing chart file")
	}
}
