package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Field Defaults
const (
	// DefaultRenderThreshold is used when a field is built with a
	// non-positive window half-width
	DefaultRenderThreshold = 500.0

	// DefaultSpritePrewarm is the pool warmup size when the integrator
	// does not size it explicitly
	DefaultSpritePrewarm = 16
)
