package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/beatline/parameter"
)

// Engine owns the speaker and the output chain: mixer into pause control
// into master volume. Speaker init failure degrades to silent mode instead
// of failing; callers check Silent and fall back to a wall clock.
//
// All methods belong to the frame goroutine. Mutation of beep state happens
// under the speaker lock; the speaker goroutine only reads it.
type Engine struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	ctrl   *beep.Ctrl
	master *effects.Volume
	log    zerolog.Logger

	started bool
	silent  bool
	paused  bool
	muted   bool
	volume  float64
}

func NewEngine(sampleRate int, volume float64, log zerolog.Logger) *Engine {
	if sampleRate <= 0 {
		sampleRate = parameter.AudioSampleRate
	}
	if volume < parameter.MinVolume {
		volume = parameter.MinVolume
	} else if volume > parameter.MaxVolume {
		volume = parameter.MaxVolume
	}
	return &Engine{
		rate:   beep.SampleRate(sampleRate),
		mixer:  &beep.Mixer{},
		log:    log,
		volume: volume,
	}
}

// Start initializes the speaker and begins streaming the output chain.
// A speaker that cannot open is not an error: the engine switches to
// silent mode and every later call is a no-op.
func (e *Engine) Start() error {
	if e.started {
		return fmt.Errorf("audio engine already started")
	}
	e.started = true

	if err := speaker.Init(e.rate, e.rate.N(parameter.AudioBufferDuration)); err != nil {
		e.silent = true
		e.log.Warn().Err(err).Msg("speaker unavailable, running silent")
		return nil
	}

	e.ctrl = &beep.Ctrl{Streamer: e.mixer}
	e.master = &effects.Volume{Streamer: e.ctrl, Base: 2, Volume: math.Log2(e.volume), Silent: e.volume <= 0}
	speaker.Play(e.master)

	e.log.Info().Int("sampleRate", int(e.rate)).Float64("volume", e.volume).Msg("audio started")
	return nil
}

// Close shuts the speaker down. Safe to call in silent mode or before Start.
func (e *Engine) Close() {
	if !e.started || e.silent {
		return
	}
	speaker.Close()
	e.log.Info().Msg("audio closed")
}

// Play queues a streamer on the mixer
func (e *Engine) Play(s beep.Streamer) {
	if !e.active() {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayTrack queues the chart track from its current position
func (e *Engine) PlayTrack(t *ChartTrack) {
	e.Play(t)
}

// Replay rewinds a track to the start and queues it again, dropping
// whatever else the mixer held. Correct whether or not the track already
// drained out of the mixer.
func (e *Engine) Replay(t *ChartTrack) {
	if !e.active() {
		t.Seek(0)
		return
	}
	speaker.Lock()
	t.Seek(0)
	e.mixer.Clear()
	e.mixer.Add(t)
	speaker.Unlock()
}

// SetPaused halts or resumes the whole output chain. Paused streamers do
// not advance, so the track clock freezes with the sound.
func (e *Engine) SetPaused(paused bool) {
	e.paused = paused
	if !e.active() {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = paused
	speaker.Unlock()
}

// TogglePause flips pause state and returns the new state
func (e *Engine) TogglePause() bool {
	e.SetPaused(!e.paused)
	return e.paused
}

// SetVolume sets master volume in [0, 1]
func (e *Engine) SetVolume(vol float64) {
	if vol < parameter.MinVolume {
		vol = parameter.MinVolume
	} else if vol > parameter.MaxVolume {
		vol = parameter.MaxVolume
	}
	e.volume = vol
	e.applyVolume()
}

// VolumeUp raises master volume one step and returns the new value
func (e *Engine) VolumeUp() float64 {
	e.SetVolume(e.volume + parameter.VolumeStep)
	return e.volume
}

// VolumeDown lowers master volume one step and returns the new value
func (e *Engine) VolumeDown() float64 {
	e.SetVolume(e.volume - parameter.VolumeStep)
	return e.volume
}

// ToggleMute flips mute and returns true when output is now audible
func (e *Engine) ToggleMute() bool {
	e.muted = !e.muted
	e.applyVolume()
	return !e.muted
}

func (e *Engine) applyVolume() {
	if !e.active() {
		return
	}
	speaker.Lock()
	e.master.Silent = e.muted || e.volume <= 0
	if e.volume > 0 {
		e.master.Volume = math.Log2(e.volume)
	}
	speaker.Unlock()
}

// active reports whether beep state exists to mutate
func (e *Engine) active() bool {
	return e.started && !e.silent
}

// Rate returns the engine sample rate
func (e *Engine) Rate() beep.SampleRate {
	return e.rate
}

// Volume returns the master volume setting
func (e *Engine) Volume() float64 {
	return e.volume
}

// Paused returns the pause state
func (e *Engine) Paused() bool {
	return e.paused
}

// Muted returns the mute state
func (e *Engine) Muted() bool {
	return e.muted
}

// Silent reports whether the speaker failed to open
func (e *Engine) Silent() bool {
	return e.silent
}
