package scroll

// Mapper converts playback time in milliseconds to the scalar render-space
// coordinate that lines and the receptor share. Implementations are pure and
// deterministic; generation and per-frame reconciliation must use the same
// mapper instance or lines drift off their receptor crossings.
type Mapper interface {
	OffsetAt(time int64) float64
}

// ConstantMapper scrolls at a fixed rate of track units per millisecond
type ConstantMapper struct {
	unitsPerMs float64
}

func NewConstantMapper(unitsPerMs float64) *ConstantMapper {
	return &ConstantMapper{unitsPerMs: unitsPerMs}
}

func (m *ConstantMapper) OffsetAt(t int64) float64 {
	return float64(t) * m.unitsPerMs
}
