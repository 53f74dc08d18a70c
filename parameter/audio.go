package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency; two frames at 60 FPS
	AudioBufferDuration = 32 * time.Millisecond
)

// Metronome Click Synthesis
const (
	ClickDuration = 45 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 30 * time.Millisecond

	// ClickBeatFreq is the pitch of an ordinary beat click
	ClickBeatFreq = 880.0

	// ClickBarFreq is the accented pitch on bar boundaries
	ClickBarFreq = 1320.0

	// ClickVolume scales click samples before the master volume stage
	ClickVolume = 0.6
)

// Track-Complete Chime
const (
	ChimeFreq     = 880.0
	ChimeDuration = 400 * time.Millisecond
	ChimeRelease  = 320 * time.Millisecond
)

// Master Volume Steps
const (
	VolumeStep = 0.1
	MinVolume  = 0.0
	MaxVolume  = 1.0
)
