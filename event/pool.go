package event

import (
	"sync"

	"github.com/lixenwraith/beatline/core"
)

// LineBatchPayload carries the line IDs of one show/hide pass
type LineBatchPayload struct {
	Lines []core.LineID
}

var lineBatchPool = sync.Pool{
	New: func() any {
		return &LineBatchPayload{
			Lines: make([]core.LineID, 0, 32),
		}
	},
}

// AcquireLineBatch returns a pooled payload with an empty slice
func AcquireLineBatch() *LineBatchPayload {
	p := lineBatchPool.Get().(*LineBatchPayload)
	p.Lines = p.Lines[:0]
	return p
}

// ReleaseLineBatch returns a payload to the pool after consumption
func ReleaseLineBatch(p *LineBatchPayload) {
	if p == nil {
		return
	}
	for i := range p.Lines {
		p.Lines[i] = 0
	}
	p.Lines = p.Lines[:0]
	lineBatchPool.Put(p)
}
