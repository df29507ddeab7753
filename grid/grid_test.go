package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/mazegen/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 4},
		{"ZeroCols", 4, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols)
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_AllWall verifies fresh grids are solid walls with the right shape.
func TestNew_AllWall(t *testing.T) {
	g, err := grid.New(3, 5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("dims = %dx%d; want 3x5", g.Rows(), g.Cols())
	}
	if n := g.CountPassable(); n != 0 {
		t.Errorf("CountPassable() = %d; want 0", n)
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 0}, {1}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromRows_DeepCopy verifies later mutation of the input does not leak in.
func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]int{{1, 0}, {0, 1}}
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	rows[0][1] = 1
	if got := g.At(0, 1); got != grid.Wall {
		t.Errorf("At(0,1) after input mutation = %v; want wall", got)
	}
}

//----------------------------------------------------------------------------//
// CellNeighbours Tests
//----------------------------------------------------------------------------//

// stageBasic builds the 4×4 fixture used across the neighbour tests:
//
//	1 1 0 0
//	0 1 0 0
//	0 1 1 1
//	0 0 0 1
func stageBasic(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 0, 1},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	return g
}

// TestCellNeighbours_Centre checks all four neighbours of an interior cell.
func TestCellNeighbours_Centre(t *testing.T) {
	g := stageBasic(t)

	nbs := g.CellNeighbours(1, 1)
	want := [4]*grid.Neighbour{
		{Row: 0, Col: 1, Cell: grid.Passable}, // up
		{Row: 2, Col: 1, Cell: grid.Passable}, // down
		{Row: 1, Col: 0, Cell: grid.Wall},     // left
		{Row: 1, Col: 2, Cell: grid.Wall},     // right
	}
	if diff := cmp.Diff(want, nbs); diff != "" {
		t.Errorf("CellNeighbours(1,1) mismatch (-want +got):\n%s", diff)
	}
}

// TestCellNeighbours_Corners checks nil entries for out-of-bounds directions.
func TestCellNeighbours_Corners(t *testing.T) {
	g := stageBasic(t)

	topLeft := g.CellNeighbours(0, 0)
	if topLeft[grid.DirUp] != nil || topLeft[grid.DirLeft] != nil {
		t.Errorf("CellNeighbours(0,0) up/left = %v/%v; want nil/nil", topLeft[grid.DirUp], topLeft[grid.DirLeft])
	}
	if got, want := topLeft[grid.DirDown], (&grid.Neighbour{Row: 1, Col: 0, Cell: grid.Wall}); !cmp.Equal(got, want) {
		t.Errorf("CellNeighbours(0,0) down = %+v; want %+v", got, want)
	}
	if got, want := topLeft[grid.DirRight], (&grid.Neighbour{Row: 0, Col: 1, Cell: grid.Passable}); !cmp.Equal(got, want) {
		t.Errorf("CellNeighbours(0,0) right = %+v; want %+v", got, want)
	}

	bottomRight := g.CellNeighbours(3, 3)
	if bottomRight[grid.DirDown] != nil || bottomRight[grid.DirRight] != nil {
		t.Errorf("CellNeighbours(3,3) down/right = %v/%v; want nil/nil", bottomRight[grid.DirDown], bottomRight[grid.DirRight])
	}
	if got, want := bottomRight[grid.DirUp], (&grid.Neighbour{Row: 2, Col: 3, Cell: grid.Passable}); !cmp.Equal(got, want) {
		t.Errorf("CellNeighbours(3,3) up = %+v; want %+v", got, want)
	}
	if got, want := bottomRight[grid.DirLeft], (&grid.Neighbour{Row: 3, Col: 2, Cell: grid.Wall}); !cmp.Equal(got, want) {
		t.Errorf("CellNeighbours(3,3) left = %+v; want %+v", got, want)
	}
}

// TestInBounds covers the four edges and both overrun signs.
func TestInBounds(t *testing.T) {
	g := stageBasic(t)
	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"TopLeft", 0, 0, true},
		{"BottomRight", 3, 3, true},
		{"RowOverrun", 4, 0, false},
		{"ColOverrun", 0, 4, false},
		{"NegativeRow", -1, 0, false},
		{"NegativeCol", 0, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.row, tc.col); got != tc.want {
				t.Errorf("InBounds(%d,%d) = %v; want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}
}

// TestCellNeighbours_PanicsOutOfBounds pins the index-error contract: the
// queried cell is not validated, so invalid coordinates must panic.
func TestCellNeighbours_PanicsOutOfBounds(t *testing.T) {
	g := stageBasic(t)
	cases := []struct {
		name     string
		row, col int
	}{
		{"RowOverrun", 4, 0},
		{"ColOverrun", 0, 4},
		{"NegativeRow", -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("CellNeighbours(%d,%d) did not panic", tc.row, tc.col)
				}
			}()
			g.CellNeighbours(tc.row, tc.col)
		})
	}
}

//----------------------------------------------------------------------------//
// Mutation and Copy Tests
//----------------------------------------------------------------------------//

// TestSetFillCount exercises in-place mutation and the passable counter.
func TestSetFillCount(t *testing.T) {
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.Set(1, 2, grid.Passable)
	if got := g.At(1, 2); got != grid.Passable {
		t.Fatalf("At(1,2) = %v; want passable", got)
	}
	if n := g.CountPassable(); n != 1 {
		t.Errorf("CountPassable() = %d; want 1", n)
	}
	g.Fill(grid.Passable)
	if n := g.CountPassable(); n != 16 {
		t.Errorf("CountPassable() after Fill = %d; want 16", n)
	}
}

// TestClone_Independent verifies the clone shares no cells with the source.
func TestClone_Independent(t *testing.T) {
	g := stageBasic(t)
	c := g.Clone()
	c.Set(0, 0, grid.Wall)
	if got := g.At(0, 0); got != grid.Passable {
		t.Errorf("source At(0,0) after clone mutation = %v; want passable", got)
	}
}

//----------------------------------------------------------------------------//
// Reachable Tests
//----------------------------------------------------------------------------//

// TestReachable_Component verifies the flood fill covers exactly the
// connected region of the start.
func TestReachable_Component(t *testing.T) {
	// Two passable regions separated by walls; (0,0) belongs to the first.
	g, err := grid.FromRows([][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	seen := g.Reachable(grid.Pos(0, 0))
	reachable := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}
	for _, p := range reachable {
		if !seen[p.Row][p.Col] {
			t.Errorf("Reachable missed %v", p)
		}
	}
	unreachable := []grid.Position{{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 3, Col: 3}, {Row: 1, Col: 0}}
	for _, p := range unreachable {
		if seen[p.Row][p.Col] {
			t.Errorf("Reachable wrongly covered %v", p)
		}
	}
}

// TestReachable_WallStart verifies a wall start reaches nothing.
func TestReachable_WallStart(t *testing.T) {
	g := stageBasic(t)
	seen := g.Reachable(grid.Pos(1, 0))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if seen[r][c] {
				t.Fatalf("Reachable from wall marked (%d,%d)", r, c)
			}
		}
	}
}
