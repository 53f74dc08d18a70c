package core

// LineID addresses a bar line inside a field arena. IDs are dense slice
// indices assigned at generation time and remain valid until the field is
// torn down; lines are never removed individually.
type LineID uint32
