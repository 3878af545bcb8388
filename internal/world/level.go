package world

// Level size bounds.
const (
	MinSize = 2
	MaxSize = 10

	baseSize = 5
)

// SizeFor returns the side length of the grid for a level number.
func SizeFor(levelNumber int) int {
	return min(baseSize+levelNumber, MaxSize)
}

// Level is one generated dungeon floor.
type Level struct {
	Number int
	Size   int
	Start  Pos
	Exit   Pos
	rooms  map[Pos]*Room
}

// newLevel creates a level with every room initialized to an empty room.
func newLevel(number, size int, describe func(x, y int) string) *Level {
	l := &Level{
		Number: number,
		Size:   size,
		Start:  Pos{0, 0},
		Exit:   Pos{size - 1, size - 1},
		rooms:  make(map[Pos]*Room, size*size),
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			l.rooms[Pos{x, y}] = &Room{Description: describe(x, y)}
		}
	}
	return l
}

// InBounds returns true if the coordinate is a room of this level.
func (l *Level) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < l.Size && p.Y >= 0 && p.Y < l.Size
}

// Room returns the room at p, or nil if p is outside the grid.
func (l *Level) Room(p Pos) *Room {
	return l.rooms[p]
}

// RoomCount returns the number of rooms in the level.
func (l *Level) RoomCount() int {
	return len(l.rooms)
}

// Positions returns every coordinate in row-major order.
func (l *Level) Positions() []Pos {
	out := make([]Pos, 0, l.Size*l.Size)
	for x := 0; x < l.Size; x++ {
		for y := 0; y < l.Size; y++ {
			out = append(out, Pos{x, y})
		}
	}
	return out
}

// AvailableDirections returns the directions that lead to another room from p.
func (l *Level) AvailableDirections(p Pos) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if l.InBounds(p.Step(d)) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Count returns how many rooms satisfy pred.
func (l *Level) Count(pred func(*Room) bool) int {
	n := 0
	for _, r := range l.rooms {
		if pred(r) {
			n++
		}
	}
	return n
}
