package audio

import (
	"sync"
	"sync/atomic"
	"time"
)

// WallClock is the playback clock used when the speaker is unavailable:
// monotonic wall time from construction, frozen while paused. It satisfies
// engine.TimeSource.
type WallClock struct {
	mu       sync.Mutex
	start    time.Time // epoch of position zero, shifted on resume
	pausedAt time.Time
	paused   bool
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Position returns elapsed unpaused time in milliseconds
func (c *WallClock) Position() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.pausedAt.Sub(c.start).Milliseconds()
	}
	return time.Since(c.start).Milliseconds()
}

// SetPaused freezes or resumes the clock. Resuming shifts the epoch so the
// pause gap never reaches the position.
func (c *WallClock) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if paused == c.paused {
		return
	}
	if paused {
		c.pausedAt = time.Now()
	} else {
		c.start = c.start.Add(time.Since(c.pausedAt))
	}
	c.paused = paused
}

// Seek moves the clock to the given position
func (c *WallClock) Seek(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	c.start = now.Add(-time.Duration(ms) * time.Millisecond)
	if c.paused {
		c.pausedAt = now
	}
}

// ManualClock is the test and benchmark clock: position moves only through
// Set and Advance
type ManualClock struct {
	now atomic.Int64
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Position() int64 {
	return c.now.Load()
}

// Set jumps the clock to an absolute position
func (c *ManualClock) Set(ms int64) {
	c.now.Store(ms)
}

// Advance moves the clock forward by ms
func (c *ManualClock) Advance(ms int64) {
	c.now.Add(ms)
}
