package game

// Coord is a board cell. Rows and columns are 1-indexed; row 1, column 1
// is the top-left wall cell, matching terminal cursor addressing
type Coord struct {
	Row, Col int
}

// Direction is the snake's heading
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{Row: -1}
	case DirDown:
		return Coord{Row: 1}
	case DirLeft:
		return Coord{Col: -1}
	case DirRight:
		return Coord{Col: 1}
	}
	return Coord{}
}

// Add returns c shifted by d
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String returns the direction name for logs
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}
