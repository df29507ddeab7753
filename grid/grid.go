package grid

// Grid is a rows×cols passability matrix. Dimensions are fixed at
// construction; cells are mutated in place during maze generation and may be
// replaced wholesale via FromRows when staging test scenarios.
//
// Access is unchecked: At and Set index the backing slices directly, so an
// out-of-bounds coordinate fails with an index panic exactly at the point of
// grid access. Callers wanting a clean failure validate with InBounds first.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// New constructs an all-wall rows×cols grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromRows constructs a grid from literal integer rows, the staging form
// used throughout the tests: nonzero values become Passable, zero becomes
// Wall. The input is deep-copied.
// Returns ErrEmptyGrid for no rows or no columns, ErrNonRectangular if any
// row length differs.
// Complexity: O(rows×cols) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([][]Cell, rows)
	for r, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]Cell, cols)
		for c, v := range row {
			if v != 0 {
				cells[r][c] = Passable
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). Panics on out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

// Set writes the cell at (row, col). Panics on out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[row][col] = c
}

// Fill overwrites every cell with c.
// Complexity: O(rows×cols).
func (g *Grid) Fill(c Cell) {
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			g.cells[r][col] = c
		}
	}
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]Cell, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// CountPassable returns the number of passable cells.
// Complexity: O(rows×cols).
func (g *Grid) CountPassable() int {
	var n int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Passable {
				n++
			}
		}
	}

	return n
}

// CellNeighbours returns the four orthogonal neighbours of (row, col) in the
// fixed order up, down, left, right (see DirUp..DirRight). Entries for
// out-of-bounds directions are nil; in-bounds entries carry the neighbour's
// coordinates and current passability.
//
// The queried cell must itself be valid: the method reads it without
// validation, so an invalid (row, col) panics with an index error rather
// than returning a sentinel.
// Complexity: O(1).
func (g *Grid) CellNeighbours(row, col int) [4]*Neighbour {
	_ = g.cells[row][col] // touch the queried cell: invalid input must panic here

	var out [4]*Neighbour
	for d, off := range dirOffsets {
		nr, nc := row+off[0], col+off[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		out[d] = &Neighbour{Row: nr, Col: nc, Cell: g.cells[nr][nc]}
	}

	return out
}

// Reachable flood-fills from the given position through passable cells and
// returns a rows×cols visited matrix. The start position counts as reachable
// only when it is passable. Panics if from is out of bounds.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Reachable(from Position) [][]bool {
	seen := make([][]bool, g.rows)
	for r := 0; r < g.rows; r++ {
		seen[r] = make([]bool, g.cols)
	}
	if g.cells[from.Row][from.Col] != Passable {
		return seen
	}

	queue := []Position{from}
	seen[from.Row][from.Col] = true
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, off := range dirOffsets {
			nr, nc := cur.Row+off[0], cur.Col+off[1]
			if !g.InBounds(nr, nc) || seen[nr][nc] || g.cells[nr][nc] != Passable {
				continue
			}
			seen[nr][nc] = true
			queue = append(queue, Position{Row: nr, Col: nc})
		}
	}

	return seen
}
