package world

import "strings"

// Pos is a room coordinate. X selects the row and Y the column.
type Pos struct {
	X, Y int
}

// Direction is a cardinal movement command.
type Direction string

const (
	North Direction = "n"
	South Direction = "s"
	East  Direction = "e"
	West  Direction = "w"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, South, West, East}

// ParseDirection maps a command token to a direction.
func ParseDirection(token string) (Direction, bool) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(token))); d {
	case North, South, East, West:
		return d, true
	default:
		return "", false
	}
}

// Name returns the direction's full name.
func (d Direction) Name() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Step returns the coordinate one room away in direction d.
// North and south change X; east and west change Y.
func (p Pos) Step(d Direction) Pos {
	switch d {
	case North:
		return Pos{p.X - 1, p.Y}
	case South:
		return Pos{p.X + 1, p.Y}
	case East:
		return Pos{p.X, p.Y + 1}
	case West:
		return Pos{p.X, p.Y - 1}
	default:
		return p
	}
}
