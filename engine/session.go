package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/beatline/event"
	"github.com/lixenwraith/beatline/scroll"
	"github.com/lixenwraith/beatline/status"
)

// Frame is the per-step snapshot handed to rendering
type Frame struct {
	Time  int64   // playback position in milliseconds
	Track float64 // mapped render-space position
	Index int64   // monotonically increasing step count
}

// SessionConfig wires a Session. Field, Source and Mapper are required
type SessionConfig struct {
	Field  *LineField
	Source TimeSource
	Mapper scroll.Mapper
	Length int64        // chart length in ms; 0 disables end detection
	Events *event.Queue // optional TrackEnded notification
	Board  *status.Board
	Logger zerolog.Logger
}

// Session drives a field from a playback clock: one Step per frame reads
// the clock, maps it to render space and advances the field. It notices the
// end of the track once and publishes frame stats.
type Session struct {
	field  *LineField
	source TimeSource
	mapper scroll.Mapper
	length int64
	events *event.Queue
	log    zerolog.Logger

	frames int64
	ended  bool

	trackStat *status.AtomicFloat
	frameStat *atomic.Int64
	stateStat *status.AtomicString
}

const (
	statePlaying = "playing"
	stateEnded   = "ended"
)

func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		field:  cfg.Field,
		source: cfg.Source,
		mapper: cfg.Mapper,
		length: cfg.Length,
		events: cfg.Events,
		log:    cfg.Logger,
	}
	if cfg.Board != nil {
		s.trackStat = cfg.Board.Gauge("session.track")
		s.frameStat = cfg.Board.Counter("session.frames")
		s.stateStat = cfg.Board.Label("session.state")
		s.stateStat.Store(statePlaying)
	}
	return s
}

// Step runs one frame: clock, mapper, field
func (s *Session) Step() Frame {
	t := s.source.Position()
	pos := s.mapper.OffsetAt(t)
	s.field.Advance(pos)
	s.frames++

	if s.frameStat != nil {
		s.frameStat.Add(1)
		s.trackStat.Set(pos)
	}

	if !s.ended && s.length > 0 && t >= s.length {
		s.ended = true
		if s.events != nil {
			s.events.Push(event.TrackEvent{Type: event.TrackEnded, Frame: s.frames})
		}
		if s.stateStat != nil {
			s.stateStat.Store(stateEnded)
		}
		s.log.Info().Int64("time", t).Msg("track ended")
	}

	return Frame{Time: t, Track: pos, Index: s.frames}
}

// Restart clears end detection after the clock rewinds
func (s *Session) Restart() {
	s.ended = false
	if s.stateStat != nil {
		s.stateStat.Store(statePlaying)
	}
}
