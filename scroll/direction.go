package scroll

import "strings"

// Direction is the travel direction of lines across the playfield
type Direction int

const (
	// Down scrolls lines toward a receptor near the bottom of the field
	Down Direction = iota

	// Up scrolls lines toward a receptor near the top
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ParseDirection maps a config string to a Direction
// Unknown values fall back to Down
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "up") {
		return Up
	}
	return Down
}
