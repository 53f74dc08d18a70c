package render

import "github.com/gdamore/tcell/v2"

// Buffer is the cell grid renderers composite into; one Flush pushes the
// finished frame to the screen. Out-of-bounds writes clip silently so
// renderers never bounds-check against resize races.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity falls
// short
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Fill writes a clipped rectangle of one rune
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.Set(x+dx, y+dy, r, style)
		}
	}
}

// Text writes a string left to right, clipping at the right edge
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		b.Set(col, y, r, style)
		col++
	}
}

// Cell returns the cell at x,y and whether the position is in bounds
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Flush writes the buffer to the screen and shows the frame
func (b *Buffer) Flush(screen tcell.Screen) {
	i := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[i]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
			i++
		}
	}
	screen.Show()
}
