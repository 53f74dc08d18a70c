package engine

// LineSprite is the visual handle a bar line holds while inside the render
// window. Implementations place one drawable line; the field itself never
// touches screen cells.
type LineSprite interface {
	// Show binds the sprite to a line's track offset as it enters the window
	Show(track float64)

	// Reposition updates screen placement against the live track position
	Reposition(current float64)

	// Hide detaches the sprite as its line leaves the window
	Hide()
}

// SpriteFactory constructs sprites when the pool runs dry
type SpriteFactory interface {
	NewLineSprite() LineSprite
}

// TimeSource is the playback clock a session follows
type TimeSource interface {
	// Position returns the current track time in milliseconds
	Position() int64
}
