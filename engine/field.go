package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/core"
	"github.com/lixenwraith/beatline/event"
	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/scroll"
	"github.com/lixenwraith/beatline/status"
)

// FieldConfig wires a LineField's collaborators. Chart, Mapper and Sprites
// are required; everything else defaults to disabled.
type FieldConfig struct {
	Chart           *chart.Chart
	Mapper          scroll.Mapper
	RenderThreshold float64 // window half-width in track units; <= 0 selects the default
	Sprites         SpriteFactory
	Prewarm         int            // sprites constructed up front
	Events          *event.Queue   // optional show/hide notifications
	Board           *status.Board  // optional stats publishing
	Logger          zerolog.Logger // zero value stays silent
}

// LineField owns the bar line arena, the spatial index, the sprite pool and
// the rendered set. Advance reconciles them against the playback position
// once per frame. All methods belong to the frame goroutine.
type LineField struct {
	lines     []BarLine
	index     *trackIndex
	pool      *spritePool
	rendered  map[core.LineID]struct{}
	threshold float64

	events *event.Queue
	log    zerolog.Logger
	frame  int64

	// scratch batches reused across frames
	shown  []core.LineID
	hidden []core.LineID

	// board stats, nil when no board is configured
	visibleStat *atomic.Int64
	freeStat    *atomic.Int64
	builtStat   *atomic.Int64
	advanceStat *atomic.Int64
}

// NewLineField generates the arena, builds the index and prepares the pool.
// Construction never fails: degenerate chart data yields fewer lines, and a
// non-positive threshold falls back to the default.
func NewLineField(cfg FieldConfig) *LineField {
	threshold := cfg.RenderThreshold
	if threshold <= 0 {
		threshold = parameter.DefaultRenderThreshold
	}

	lines := BuildLines(cfg.Chart, cfg.Mapper)

	f := &LineField{
		lines:     lines,
		index:     newTrackIndex(lines, threshold),
		pool:      newSpritePool(cfg.Sprites, cfg.Prewarm),
		rendered:  make(map[core.LineID]struct{}, 64),
		threshold: threshold,
		events:    cfg.Events,
		log:       cfg.Logger,
	}
	if cfg.Board != nil {
		f.visibleStat = cfg.Board.Counter("field.visible")
		f.freeStat = cfg.Board.Counter("field.pool.free")
		f.builtStat = cfg.Board.Counter("field.pool.built")
		f.advanceStat = cfg.Board.Counter("field.advances")
		f.builtStat.Store(int64(f.pool.builtCount()))
		f.freeStat.Store(int64(f.pool.freeCount()))
	}

	f.log.Info().
		Int("lines", len(lines)).
		Float64("threshold", threshold).
		Int("prewarm", cfg.Prewarm).
		Msg("field built")
	return f
}

// Advance runs one reconciliation frame at the given track position. Exit
// precedes entry so sprites released this frame are reusable this frame; the
// window test is inclusive at exactly threshold distance.
func (f *LineField) Advance(current float64) {
	f.frame++
	f.shown = f.shown[:0]
	f.hidden = f.hidden[:0]

	// Exit pass visits only the rendered set
	for id := range f.rendered {
		line := &f.lines[id]
		if dist(line.Track, current) > f.threshold {
			line.sprite.Hide()
			f.pool.release(line.sprite)
			line.sprite = nil
			delete(f.rendered, id)
			f.hidden = append(f.hidden, id)
		}
	}

	// Entry pass: the window spans at most two index cells
	f.admit(f.index.lookup(current-f.threshold), current)
	f.admit(f.index.lookup(current+f.threshold), current)

	// Reposition pass: every rendered sprite follows the live position
	for id := range f.rendered {
		f.lines[id].sprite.Reposition(current)
	}

	f.publish(current)
}

// admit attaches every unrendered line in bucket that passes the exact
// window test. Buckets are coarser than the window, so the re-check is not
// optional.
func (f *LineField) admit(bucket []core.LineID, current float64) {
	for _, id := range bucket {
		if _, ok := f.rendered[id]; ok {
			continue
		}
		line := &f.lines[id]
		if dist(line.Track, current) > f.threshold {
			continue
		}
		s := f.pool.acquire()
		s.Show(line.Track)
		line.sprite = s
		f.rendered[id] = struct{}{}
		f.shown = append(f.shown, id)
	}
}

func (f *LineField) publish(current float64) {
	if f.events != nil {
		event.EmitLineBatch(f.events, event.LinesShown, f.shown, f.frame)
		event.EmitLineBatch(f.events, event.LinesHidden, f.hidden, f.frame)
	}
	if f.advanceStat != nil {
		f.advanceStat.Add(1)
		f.visibleStat.Store(int64(len(f.rendered)))
		f.freeStat.Store(int64(f.pool.freeCount()))
		f.builtStat.Store(int64(f.pool.builtCount()))
	}
	if len(f.shown) > 0 || len(f.hidden) > 0 {
		f.log.Debug().
			Float64("position", current).
			Int("shown", len(f.shown)).
			Int("hidden", len(f.hidden)).
			Int("visible", len(f.rendered)).
			Msg("window moved")
	}
}

// SetThreshold rebuilds the spatial index for a new window half-width.
// Track offsets are unchanged, only bucket assignment moves; the rendered
// set catches up on the next Advance.
func (f *LineField) SetThreshold(t float64) {
	if t <= 0 {
		t = parameter.DefaultRenderThreshold
	}
	f.threshold = t
	f.index = newTrackIndex(f.lines, t)
	f.log.Info().Float64("threshold", t).Msg("index rebuilt")
}

// Teardown detaches every sprite and drops the pool. The field may be
// advanced again afterwards; sprites reconstruct lazily.
func (f *LineField) Teardown() {
	for id := range f.rendered {
		line := &f.lines[id]
		line.sprite.Hide()
		line.sprite = nil
		delete(f.rendered, id)
	}
	f.pool.reset()

	if f.events != nil {
		f.events.Push(event.TrackEvent{Type: event.FieldReset, Frame: f.frame})
	}
	if f.advanceStat != nil {
		f.visibleStat.Store(0)
		f.freeStat.Store(0)
		f.builtStat.Store(0)
	}
	f.log.Info().Msg("field torn down")
}

// Len returns the arena size
func (f *LineField) Len() int {
	return len(f.lines)
}

// Visible returns the rendered set size
func (f *LineField) Visible() int {
	return len(f.rendered)
}

// Threshold returns the active window half-width
func (f *LineField) Threshold() float64 {
	return f.threshold
}

// Line returns the arena record for id
func (f *LineField) Line(id core.LineID) BarLine {
	return f.lines[id]
}

// FieldStats snapshots pool accounting; rendered + free always equals built
type FieldStats struct {
	Visible int
	Free    int
	Built   int
}

// Stats reads the current pool accounting
func (f *LineField) Stats() FieldStats {
	return FieldStats{
		Visible: len(f.rendered),
		Free:    f.pool.freeCount(),
		Built:   f.pool.builtCount(),
	}
}

func dist(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
