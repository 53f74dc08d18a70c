package renderer

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatline/audio"
	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/core"
	"github.com/lixenwraith/beatline/render"
	"github.com/lixenwraith/beatline/skin"
	"github.com/lixenwraith/beatline/status"
)

// HudRenderer draws the header rows: chart title and clock on the first,
// tempo, field stats and playback state on the second. It can be toggled
// off at runtime; the playfield keeps its rows either way.
type HudRenderer struct {
	chart   *chart.Chart
	cursor  *chart.Cursor
	audio   *audio.Engine
	skin    *skin.Skin
	visible bool

	// Cached board pointers, nil when no board is configured
	visibleStat *atomic.Int64
	builtStat   *atomic.Int64
}

func NewHudRenderer(c *chart.Chart, eng *audio.Engine, board *status.Board, sk *skin.Skin) *HudRenderer {
	r := &HudRenderer{
		chart:   c,
		cursor:  chart.NewCursor(c),
		audio:   eng,
		skin:    sk,
		visible: true,
	}
	if board != nil {
		r.visibleStat = board.Counter("field.visible")
		r.builtStat = board.Counter("field.pool.built")
	}
	return r
}

// Visible implements render.Toggleable
func (r *HudRenderer) Visible() bool {
	return r.visible
}

// Toggle flips HUD visibility
func (r *HudRenderer) Toggle() {
	r.visible = !r.visible
}

// Render implements render.Renderer
func (r *HudRenderer) Render(ctx render.Context, buf *render.Buffer) {
	style := tcell.StyleDefault.Foreground(r.skin.HudColor)

	title := r.chart.Title
	if title == "" {
		title = "untitled"
	}
	buf.Text(0, 0, title, style)

	clock := core.FormatOffset(ctx.Time) + " / " + core.FormatOffset(r.chart.Length)
	x := ctx.Width - len(clock)
	if x < 0 {
		x = 0
	}
	buf.Text(x, 0, clock, style)

	parts := make([]string, 0, 4)
	if sec := r.cursor.Seek(ctx.Time); sec != nil {
		parts = append(parts, fmt.Sprintf("%g bpm %d/4", sec.BPM, sec.Signature))
	}
	if r.visibleStat != nil {
		parts = append(parts, fmt.Sprintf("lines %d/%d", r.visibleStat.Load(), r.builtStat.Load()))
	}
	parts = append(parts, r.audioLabel())
	if ctx.Paused {
		parts = append(parts, "PAUSED")
	}
	buf.Text(0, 1, strings.Join(parts, "  "), style)
}

func (r *HudRenderer) audioLabel() string {
	switch {
	case r.audio == nil || r.audio.Silent():
		return "no audio"
	case r.audio.Muted():
		return "muted"
	default:
		return fmt.Sprintf("vol %d%%", int(math.Round(r.audio.Volume()*100)))
	}
}
