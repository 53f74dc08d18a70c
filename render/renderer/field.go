package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/render"
	"github.com/lixenwraith/beatline/skin"
)

// FieldRenderer draws every visible bar line across the lane interior.
// Sprites already carry their projected row; this pass only filters the
// rows that fall inside the field area.
type FieldRenderer struct {
	view *render.FieldView
	skin *skin.Skin
}

func NewFieldRenderer(view *render.FieldView, sk *skin.Skin) *FieldRenderer {
	return &FieldRenderer{view: view, skin: sk}
}

// Render implements render.Renderer
func (r *FieldRenderer) Render(ctx render.Context, buf *render.Buffer) {
	left, right := r.view.Lane()
	style := tcell.StyleDefault.Foreground(r.skin.LineColor)
	for _, s := range r.view.Sprites() {
		if !s.Visible() {
			continue
		}
		row := s.Row()
		if row < parameter.HudRows || row >= ctx.Height {
			continue
		}
		for x := left + 1; x < right; x++ {
			buf.Set(x, row, r.skin.LineGlyph, style)
		}
	}
}
