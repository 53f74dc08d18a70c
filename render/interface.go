package render

// Renderer draws one layer of the frame into the buffer
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// Toggleable is implemented by renderers that can be hidden at runtime.
// The orchestrator skips a toggleable renderer whose Visible returns false.
type Toggleable interface {
	Visible() bool
}
