package game

import "fmt"

// MinGridSize is the smallest playable board edge, border included.
// Smaller terminals are rejected before the game is constructed
const MinGridSize = 10

// Grid is the fixed rectangular board: Rows x Cols cells total,
// including the 1-cell wall border. Immutable for the life of a game
type Grid struct {
	Rows, Cols int
}

// NewGrid validates the board dimensions
func NewGrid(rows, cols int) (Grid, error) {
	if rows < MinGridSize || cols < MinGridSize {
		return Grid{}, fmt.Errorf("terminal too small: need at least %dx%d cells, have %dx%d",
			MinGridSize, MinGridSize, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// IsWall reports whether c lies on the border
func (g Grid) IsWall(c Coord) bool {
	return c.Row == 1 || c.Row == g.Rows || c.Col == 1 || c.Col == g.Cols
}

// IsInterior reports whether c is a playable cell
func (g Grid) IsInterior(c Coord) bool {
	return c.Row > 1 && c.Row < g.Rows && c.Col > 1 && c.Col < g.Cols
}

// Center returns the starting cell for the snake's head
func (g Grid) Center() Coord {
	return Coord{Row: g.Rows / 2, Col: g.Cols / 2}
}

// InteriorCells returns the number of playable cells
func (g Grid) InteriorCells() int {
	return (g.Rows - 2) * (g.Cols - 2)
}
