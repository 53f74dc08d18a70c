package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetAndClear(t *testing.T) {
	buf := NewBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	buf.Set(3, 2, 'x', style)
	c, ok := buf.Cell(3, 2)
	if !ok {
		t.Fatal("cell (3,2) should be in bounds")
	}
	if c.Rune != 'x' || c.Style != style {
		t.Errorf("got %q with wrong style, want 'x'", c.Rune)
	}

	buf.Clear()
	c, _ = buf.Cell(3, 2)
	if c.Rune != ' ' || c.Style != tcell.StyleDefault {
		t.Errorf("Clear should reset to blank, got %q", c.Rune)
	}
}

func TestBufferClipping(t *testing.T) {
	buf := NewBuffer(4, 3)

	// None of these may panic or land anywhere
	buf.Set(-1, 0, 'a', tcell.StyleDefault)
	buf.Set(0, -1, 'b', tcell.StyleDefault)
	buf.Set(4, 0, 'c', tcell.StyleDefault)
	buf.Set(0, 3, 'd', tcell.StyleDefault)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, _ := buf.Cell(x, y)
			if c.Rune != ' ' {
				t.Errorf("cell (%d,%d) = %q, want blank", x, y, c.Rune)
			}
		}
	}

	if _, ok := buf.Cell(-1, 0); ok {
		t.Error("Cell(-1,0) should report out of bounds")
	}
	if _, ok := buf.Cell(4, 2); ok {
		t.Error("Cell(4,2) should report out of bounds")
	}
}

func TestBufferTextClipsAtEdge(t *testing.T) {
	buf := NewBuffer(5, 1)
	buf.Text(2, 0, "hello", tcell.StyleDefault)

	want := []rune{' ', ' ', 'h', 'e', 'l'}
	for x, r := range want {
		c, _ := buf.Cell(x, 0)
		if c.Rune != r {
			t.Errorf("cell %d = %q, want %q", x, c.Rune, r)
		}
	}
}

func TestBufferFill(t *testing.T) {
	buf := NewBuffer(6, 4)
	buf.Fill(1, 1, 3, 2, '#', tcell.StyleDefault)

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			c, _ := buf.Cell(x, y)
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			if inside && c.Rune != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, c.Rune)
			}
			if !inside && c.Rune != ' ' {
				t.Errorf("cell (%d,%d) = %q, want blank", x, y, c.Rune)
			}
		}
	}
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.Set(7, 7, 'z', tcell.StyleDefault)

	buf.Resize(4, 4)
	if buf.Width() != 4 || buf.Height() != 4 {
		t.Fatalf("size = %dx%d, want 4x4", buf.Width(), buf.Height())
	}
	if _, ok := buf.Cell(7, 7); ok {
		t.Error("old cell should be out of bounds after shrink")
	}

	// Growing back within original capacity must start blank
	buf.Resize(8, 8)
	c, _ := buf.Cell(7, 7)
	if c.Rune != ' ' {
		t.Errorf("resize should clear, got %q at (7,7)", c.Rune)
	}

	buf.Resize(-3, 5)
	if buf.Width() != 0 || buf.Height() != 5 {
		t.Errorf("negative width should clamp to 0, got %dx%d", buf.Width(), buf.Height())
	}
}

func TestBufferFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 4)

	buf := NewBuffer(10, 4)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	buf.Text(1, 2, "ok", style)
	buf.Flush(screen)

	r, _, st, _ := screen.GetContent(1, 2)
	if r != 'o' || st != style {
		t.Errorf("screen (1,2) = %q, want 'o' in buffer style", r)
	}
	r, _, _, _ = screen.GetContent(2, 2)
	if r != 'k' {
		t.Errorf("screen (2,2) = %q, want 'k'", r)
	}
}
