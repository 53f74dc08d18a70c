package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackdrop RenderPriority = iota
	PriorityField
	PriorityReceptor
	PriorityHud
)
