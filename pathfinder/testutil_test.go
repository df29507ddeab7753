package pathfinder_test

import (
	"testing"

	"github.com/katalvlaran/mazegen/grid"
)

// stubMaze is a minimal pathfinder.Maze implementation: a grid plus the
// cached-path field strategies write into.
type stubMaze struct {
	g        *grid.Grid
	path     []grid.Position
	setCalls int
}

func (s *stubMaze) Grid() *grid.Grid { return s.g }

func (s *stubMaze) SetPath(path []grid.Position) {
	s.path = path
	s.setCalls++
}

// stage builds a stubMaze over literal integer rows (nonzero = passable).
func stage(t *testing.T, rows [][]int) *stubMaze {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	return &stubMaze{g: g}
}

// simpleRows is the 4×4 layout shared by the strategy tests
// (S = start corner, G = goal corner):
//
//	S 1 1 1
//	0 0 1 1
//	1 1 1 0
//	1 0 1 G
func simpleRows() [][]int {
	return [][]int{
		{1, 1, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 1, 0},
		{1, 0, 1, 1},
	}
}

// assertValidRoute checks every consecutive pair is 4-adjacent and both
// cells are passable.
func assertValidRoute(t *testing.T, g *grid.Grid, path []grid.Position) {
	t.Helper()
	for i := 0; i < len(path)-1; i++ {
		cur, next := path[i], path[i+1]
		dr, dc := next.Row-cur.Row, next.Col-cur.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		if dr+dc != 1 {
			t.Errorf("step %d: %v -> %v not adjacent", i, cur, next)
		}
		if g.At(cur.Row, cur.Col) != grid.Passable || g.At(next.Row, next.Col) != grid.Passable {
			t.Errorf("step %d: %v -> %v crosses a wall", i, cur, next)
		}
	}
}
