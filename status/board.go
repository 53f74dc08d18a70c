package status

import "sync/atomic"

// Board is the central stats facade. Producers (field, session, audio)
// cache pointers during setup; per-frame code writes directly to atomics
// and readers (HUD, benchmark) load without locks.
type Board struct {
	Counters *Group[atomic.Int64]
	Gauges   *Group[AtomicFloat]
	Labels   *Group[AtomicString]
}

// NewBoard creates an initialized Board
func NewBoard() *Board {
	return &Board{
		Counters: NewGroup[atomic.Int64](),
		Gauges:   NewGroup[AtomicFloat](),
		Labels:   NewGroup[AtomicString](),
	}
}

// Counter returns the named counter, creating it if absent
func (b *Board) Counter(name string) *atomic.Int64 {
	return b.Counters.Get(name)
}

// Gauge returns the named gauge, creating it if absent
func (b *Board) Gauge(name string) *AtomicFloat {
	return b.Gauges.Get(name)
}

// Label returns the named label, creating it if absent
func (b *Board) Label(name string) *AtomicString {
	return b.Labels.Get(name)
}

// TotalCount returns total stats across all groups
func (b *Board) TotalCount() int {
	return b.Counters.Count() + b.Gauges.Count() + b.Labels.Count()
}
