package parameter

// Tempo & Cadence Limits
const (
	// MaxBPM caps section tempo before cadence math; values beyond it are
	// treated as authoring noise and clamped
	MaxBPM = 9999.0

	// MsPerMinute converts BPM to milliseconds per beat
	MsPerMinute = 60000.0

	// SectionGapMs is the time unit reserved before the next section so
	// adjacent sections never emit a line on the same timestamp
	SectionGapMs = 1

	// DefaultSignature is applied by the chart loader when a section omits
	// its meter; the generator itself never defaults
	DefaultSignature = 4
)
