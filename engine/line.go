package engine

// BarLine is one generated timing marker. Records live in a flat arena owned
// by the field and are addressed by core.LineID. Timestamps repeat freely;
// identity is the arena index, never the value.
type BarLine struct {
	Time  int64   // source timestamp in milliseconds
	Track float64 // render-space offset fixed at generation

	// sprite is nil while the line is outside the render window.
	// Only the reconciler mutates it.
	sprite LineSprite
}
