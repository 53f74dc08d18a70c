package audio

import (
	"testing"
	"time"
)

func TestWallClockAdvances(t *testing.T) {
	c := NewWallClock()
	time.Sleep(15 * time.Millisecond)
	if pos := c.Position(); pos < 5 {
		t.Errorf("clock barely moved: %dms", pos)
	}
}

func TestWallClockPauseFreezes(t *testing.T) {
	c := NewWallClock()
	time.Sleep(10 * time.Millisecond)

	c.SetPaused(true)
	frozen := c.Position()
	time.Sleep(20 * time.Millisecond)
	if pos := c.Position(); pos != frozen {
		t.Errorf("paused clock moved: %d -> %d", frozen, pos)
	}

	// Resume continues from the frozen point, not wall time
	c.SetPaused(false)
	time.Sleep(10 * time.Millisecond)
	pos := c.Position()
	if pos < frozen {
		t.Errorf("clock went backwards after resume: %d < %d", pos, frozen)
	}
	if pos > frozen+100 {
		t.Errorf("pause gap leaked into position: %d after freezing at %d", pos, frozen)
	}
}

func TestWallClockPauseIdempotent(t *testing.T) {
	c := NewWallClock()
	c.SetPaused(true)
	frozen := c.Position()
	c.SetPaused(true) // repeat must not shift the epoch
	time.Sleep(5 * time.Millisecond)
	if c.Position() != frozen {
		t.Error("double pause moved the clock")
	}
	c.SetPaused(false)
	c.SetPaused(false)
	if c.Position() < frozen {
		t.Error("double resume rewound the clock")
	}
}

func TestWallClockSeek(t *testing.T) {
	c := NewWallClock()
	c.Seek(5000)
	if pos := c.Position(); pos < 5000 || pos > 5100 {
		t.Errorf("seek landed at %d, want ~5000", pos)
	}

	c.SetPaused(true)
	c.Seek(100)
	if pos := c.Position(); pos != 100 {
		t.Errorf("paused seek landed at %d, want 100", pos)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock()
	if c.Position() != 0 {
		t.Fatalf("fresh manual clock at %d", c.Position())
	}
	c.Set(1500)
	if c.Position() != 1500 {
		t.Errorf("Set: position %d, want 1500", c.Position())
	}
	c.Advance(250)
	if c.Position() != 1750 {
		t.Errorf("Advance: position %d, want 1750", c.Position())
	}
}
