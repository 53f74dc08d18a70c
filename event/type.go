package event

// Type identifies a track event
type Type int

const (
	// LinesShown signals lines that entered the render window this frame
	// Trigger: LineField.Advance entry pass
	// Consumer: demo HUD flash, integrators | Payload: *LineBatchPayload
	LinesShown Type = iota

	// LinesHidden signals lines that left the render window this frame
	// Trigger: LineField.Advance exit pass
	// Consumer: integrators | Payload: *LineBatchPayload
	LinesHidden

	// FieldReset signals the field released every sprite and dropped its pool
	// Trigger: LineField.Teardown
	// Consumer: integrators | Payload: nil
	FieldReset

	// TrackEnded signals the playback position reached the chart length
	// Trigger: Session.Step
	// Consumer: demo loop (restart/quit) | Payload: nil
	TrackEnded
)

// TrackEvent is a single queued notification with its frame of origin
type TrackEvent struct {
	Type    Type
	Payload any
	Frame   int64
}
