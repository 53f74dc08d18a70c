package render

import "github.com/gdamore/tcell/v2"

// Cell is one buffered screen cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// blank is what Clear resets every cell to
var blank = Cell{Rune: ' ', Style: tcell.StyleDefault}
