// Package grid defines the cell, position, and neighbour types plus the
// sentinel errors shared by all grid operations.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates construction with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates staged rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Cell is the passability state of one grid cell.
type Cell uint8

const (
	// Wall blocks traversal; the zero value, so fresh grids are solid.
	Wall Cell = iota
	// Passable cells form the traversable graph.
	Passable
)

// String returns "wall" or "passable".
func (c Cell) String() string {
	if c == Passable {
		return "passable"
	}

	return "wall"
}

// Direction indices into the CellNeighbours result.
// The order up, down, left, right is significant and part of the contract:
// callers and tests depend on it for deterministic tie-breaking.
const (
	DirUp = iota
	DirDown
	DirLeft
	DirRight
)

// dirOffsets holds the row/col deltas per direction, indexed by DirUp..DirRight.
var dirOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Position is a (row, col) coordinate into the grid.
// Valid iff 0 <= Row < rows and 0 <= Col < cols.
type Position struct {
	Row, Col int
}

// Pos is a shorthand constructor for a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String renders the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Neighbour describes one in-bounds neighbouring cell: its coordinates and
// the passability recorded in the grid at query time.
type Neighbour struct {
	Row, Col int
	Cell     Cell
}

// Position returns the neighbour's coordinates as a Position.
func (n Neighbour) Position() Position {
	return Position{Row: n.Row, Col: n.Col}
}
