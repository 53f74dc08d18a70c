package parameter

// Scroll Defaults
const (
	// DefaultScrollSpeed is track units per millisecond at 1.0x velocity
	DefaultScrollSpeed = 1.0

	// DefaultUnitsPerRow maps track units to one terminal row
	DefaultUnitsPerRow = 100.0
)

// Playfield Layout
const (
	// DefaultLaneWidth is the playfield width in terminal columns
	DefaultLaneWidth = 36

	// ReceptorMargin is the rows kept between the receptor and the nearest
	// field edge
	ReceptorMargin = 4

	// HudRows is the number of terminal rows reserved above the playfield
	HudRows = 2
)
