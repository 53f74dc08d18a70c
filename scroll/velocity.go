package scroll

import (
	"sort"

	"github.com/lixenwraith/beatline/chart"
)

// velocityNode is one precomputed boundary: the cumulative offset at time
// plus the rate extending beyond it
type velocityNode struct {
	time   int64
	offset float64
	rate   float64 // units per ms, base * multiplier
}

// VelocityMapper scrolls at a base rate modulated by chart velocity points.
// Cumulative offsets are fixed at construction so a lookup is one binary
// search plus a linear extension. Negative base or multipliers clamp to
// zero; render-space offsets never decrease.
type VelocityMapper struct {
	base  float64
	nodes []velocityNode
}

func NewVelocityMapper(base float64, points []chart.Velocity) *VelocityMapper {
	if base < 0 {
		base = 0
	}
	m := &VelocityMapper{base: base}
	if len(points) == 0 {
		return m
	}

	pts := make([]chart.Velocity, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Time < pts[j].Time })

	nodes := make([]velocityNode, 0, len(pts))
	offset := base * float64(pts[0].Time)
	for i, p := range pts {
		mult := p.Multiplier
		if mult < 0 {
			mult = 0
		}
		if i > 0 {
			prev := nodes[len(nodes)-1]
			offset = prev.offset + prev.rate*float64(p.Time-prev.time)
		}
		nodes = append(nodes, velocityNode{time: p.Time, offset: offset, rate: base * mult})
	}
	m.nodes = nodes
	return m
}

// OffsetAt extends from the last node at or before t; queries before the
// first node run at the plain base rate
func (m *VelocityMapper) OffsetAt(t int64) float64 {
	if len(m.nodes) == 0 || t < m.nodes[0].time {
		return m.base * float64(t)
	}
	i := sort.Search(len(m.nodes), func(i int) bool { return m.nodes[i].time > t }) - 1
	n := m.nodes[i]
	return n.offset + n.rate*float64(t-n.time)
}
