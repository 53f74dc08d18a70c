package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/render"
	"github.com/lixenwraith/beatline/skin"
)

// ReceptorRenderer draws the judgment row. It renders after the field, so a
// line crossing the receptor is overdrawn in the flash color for exactly the
// frames it sits on the row.
type ReceptorRenderer struct {
	view *render.FieldView
	skin *skin.Skin
}

func NewReceptorRenderer(view *render.FieldView, sk *skin.Skin) *ReceptorRenderer {
	return &ReceptorRenderer{view: view, skin: sk}
}

// Render implements render.Renderer
func (r *ReceptorRenderer) Render(ctx render.Context, buf *render.Buffer) {
	row := r.view.ReceptorRow()
	if row < parameter.HudRows || row >= ctx.Height {
		return
	}

	color := r.skin.ReceptorColor
	for _, s := range r.view.Sprites() {
		if s.Visible() && s.Row() == row {
			color = r.skin.FlashColor
			break
		}
	}

	left, right := r.view.Lane()
	style := tcell.StyleDefault.Foreground(color)
	for x := left + 1; x < right; x++ {
		buf.Set(x, row, r.skin.ReceptorGlyph, style)
	}
}
