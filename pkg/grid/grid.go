package grid

// This package provides the integer grid math used by the game state:
// positions, the four orthogonal directions and Manhattan distance.

// Position is a pair of signed x and y coordinates on the game grid.
// It is a value type; translations return a new Position.
type Position struct {
	X int
	Y int
}

// TranslatedByOffset returns the position translated by the given x and y offsets.
func (p Position) TranslatedByOffset(dx, dy int) Position {
	return Position{
		X: p.X + dx,
		Y: p.Y + dy,
	}
}

// TranslatedByDirection returns the position translated one square in the given direction.
func (p Position) TranslatedByDirection(direction Direction) Position {
	dx, dy := direction.Offset()
	return p.TranslatedByOffset(dx, dy)
}

// Distance returns the Manhattan distance between this position and another one.
func (p Position) Distance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction is one of the four orthogonal directions on the grid.
type Direction int

const (
	// North is up (decreasing y).
	North Direction = iota
	// South is down (increasing y).
	South
	// East is right (increasing x).
	East
	// West is left (decreasing x).
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}

// Offset returns the unit x and y offsets for the direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}
