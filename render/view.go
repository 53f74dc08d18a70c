package render

import (
	"math"

	"github.com/lixenwraith/beatline/engine"
	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/scroll"
	"github.com/lixenwraith/beatline/skin"
)

// FieldView owns playfield geometry: lane placement, receptor row and the
// track-to-row projection sprites and renderers share. It is the sprite
// factory for the field, keeping a registry of every sprite it builds so
// renderers can walk the visible set. All methods belong to the frame
// goroutine.
type FieldView struct {
	skin        *skin.Skin
	direction   scroll.Direction
	unitsPerRow float64

	width  int
	height int

	laneLeft    int
	laneRight   int
	receptorRow int

	sprites []*BarSprite
}

func NewFieldView(sk *skin.Skin, dir scroll.Direction, unitsPerRow float64, width, height int) *FieldView {
	if sk == nil {
		sk = skin.Default()
	}
	if unitsPerRow <= 0 {
		unitsPerRow = parameter.DefaultUnitsPerRow
	}
	v := &FieldView{
		skin:        sk,
		direction:   dir,
		unitsPerRow: unitsPerRow,
		sprites:     make([]*BarSprite, 0, 16),
	}
	v.SetSize(width, height)
	return v
}

// SetSize recomputes lane and receptor placement for new screen dimensions
func (v *FieldView) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.width = width
	v.height = height

	laneWidth := v.skin.LaneWidth
	if laneWidth < 1 {
		laneWidth = 1
	}
	if laneWidth > width {
		laneWidth = width
	}
	v.laneLeft = (width - laneWidth) / 2
	v.laneRight = v.laneLeft + laneWidth - 1

	offset := v.skin.ReceptorOffset
	if offset < 0 {
		offset = parameter.ReceptorMargin
	}
	if v.direction == scroll.Up {
		v.receptorRow = parameter.HudRows + offset
	} else {
		v.receptorRow = height - 1 - offset
	}
	// Degenerate terminals pin the receptor to the field edge
	if v.receptorRow < parameter.HudRows {
		v.receptorRow = parameter.HudRows
	}
	if v.receptorRow > height-1 {
		v.receptorRow = height - 1
	}
}

// NewLineSprite builds and registers a sprite; the pool calls this when dry
func (v *FieldView) NewLineSprite() engine.LineSprite {
	s := &BarSprite{view: v}
	v.sprites = append(v.sprites, s)
	return s
}

// rowFor projects a line's track offset onto a screen row given the live
// position. Zero delta lands exactly on the receptor row.
func (v *FieldView) rowFor(track, current float64) int {
	rows := int(math.Round((track - current) / v.unitsPerRow))
	if v.direction == scroll.Up {
		return v.receptorRow + rows
	}
	return v.receptorRow - rows
}

// Sprites returns the registry of every sprite built so far
func (v *FieldView) Sprites() []*BarSprite {
	return v.sprites
}

// Lane returns the inclusive column span of the playfield
func (v *FieldView) Lane() (left, right int) {
	return v.laneLeft, v.laneRight
}

// ReceptorRow returns the row lines cross on the beat
func (v *FieldView) ReceptorRow() int {
	return v.receptorRow
}

// WindowReach returns the window half-width in track units that covers every
// field row plus one spawn row beyond the edge. Feeding this to the field's
// threshold keeps sprites attached exactly while they can appear on screen.
func (v *FieldView) WindowReach() float64 {
	above := v.receptorRow - parameter.HudRows
	below := v.height - 1 - v.receptorRow
	reach := above
	if below > reach {
		reach = below
	}
	if reach < 0 {
		reach = 0
	}
	return float64(reach+1) * v.unitsPerRow
}

// BarSprite is one pooled visual handle. The engine drives Show, Reposition
// and Hide; renderers read Row and Visible. Reposition always follows Show
// within a frame, so Row is never stale while visible.
type BarSprite struct {
	view    *FieldView
	track   float64
	row     int
	visible bool
}

// Show binds the sprite to a line entering the window
func (s *BarSprite) Show(track float64) {
	s.track = track
	s.visible = true
}

// Reposition projects the sprite onto its current screen row
func (s *BarSprite) Reposition(current float64) {
	s.row = s.view.rowFor(s.track, current)
}

// Hide detaches the sprite as its line leaves the window
func (s *BarSprite) Hide() {
	s.visible = false
}

// Visible reports whether the sprite is attached to a line
func (s *BarSprite) Visible() bool {
	return s.visible
}

// Row returns the last projected screen row
func (s *BarSprite) Row() int {
	return s.row
}

// Track returns the bound line's track offset
func (s *BarSprite) Track() float64 {
	return s.track
}
