package render

// Context carries per-frame state to renderers. Flat values, no references:
// renderers read it, they never write back through it.
type Context struct {
	// Time is the track position in milliseconds
	Time int64

	// FrameIndex counts frames since the session started
	FrameIndex int64

	// Paused reports whether playback is currently frozen
	Paused bool

	// Width and Height are the current buffer dimensions
	Width  int
	Height int
}
