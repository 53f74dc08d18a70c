package event

import (
	"github.com/lixenwraith/beatline/core"
)

// EmitLineBatch pushes a pooled show/hide batch for the given line IDs
// Caller provides the slice; helper handles acquisition and copying.
// The consumer releases the payload with ReleaseLineBatch after use
func EmitLineBatch(q *Queue, t Type, lines []core.LineID, frame int64) {
	if len(lines) == 0 {
		return
	}
	p := AcquireLineBatch()
	p.Lines = append(p.Lines, lines...)
	q.Push(TrackEvent{
		Type:    t,
		Payload: p,
		Frame:   frame,
	})
}
