package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/render"
	"github.com/lixenwraith/beatline/skin"
)

// BackdropRenderer draws the lane rails framing the playfield
type BackdropRenderer struct {
	view *render.FieldView
	skin *skin.Skin
}

func NewBackdropRenderer(view *render.FieldView, sk *skin.Skin) *BackdropRenderer {
	return &BackdropRenderer{view: view, skin: sk}
}

// Render implements render.Renderer
func (r *BackdropRenderer) Render(ctx render.Context, buf *render.Buffer) {
	left, right := r.view.Lane()
	style := tcell.StyleDefault.Foreground(r.skin.RailColor)
	for y := parameter.HudRows; y < ctx.Height; y++ {
		buf.Set(left, y, r.skin.RailGlyph, style)
		if right != left {
			buf.Set(right, y, r.skin.RailGlyph, style)
		}
	}
}
