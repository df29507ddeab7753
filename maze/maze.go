package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/pathfinder"
)

// Maze is the aggregate root: a square passability grid plus the start and
// goal positions, the generation seed, the tunable options, and the cached
// route of the most recent successful search.
//
// A Maze is not safe for concurrent use.
type Maze struct {
	seed  int64
	size  int
	start grid.Position
	goal  grid.Position
	opts  Options

	grid *grid.Grid
	path []grid.Position
}

// Maze feeds itself to search strategies.
var _ pathfinder.Maze = (*Maze)(nil)

// New constructs an ungenerated Maze: the grid starts fully walled and
// GenerateMaze carves it later.
//
// Steps:
//  1. Validate size >= MinSize, else ErrSizeTooSmall.
//  2. Apply functional options over DefaultOptions; the first recorded
//     violation surfaces as ErrOptionViolation.
//  3. Allocate the all-wall grid.
//
// start and goal are stored verbatim; out-of-bounds positions panic on
// first grid access instead of failing here.
func New(seed int64, size int, start, goal grid.Position, opts ...Option) (*Maze, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrSizeTooSmall, size)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := grid.New(size, size)
	if err != nil {
		return nil, err
	}

	return &Maze{
		seed:  seed,
		size:  size,
		start: start,
		goal:  goal,
		opts:  o,
		grid:  g,
	}, nil
}

// Seed returns the generation seed.
func (m *Maze) Seed() int64 { return m.seed }

// Rows returns the row count (equal to Cols; mazes are square).
func (m *Maze) Rows() int { return m.size }

// Cols returns the column count.
func (m *Maze) Cols() int { return m.size }

// Start returns the start position.
func (m *Maze) Start() grid.Position { return m.start }

// Goal returns the goal position.
func (m *Maze) Goal() grid.Position { return m.goal }

// MinValidPaths returns the configured route-diversity floor.
func (m *Maze) MinValidPaths() int { return m.opts.MinValidPaths }

// Algorithm returns the configured search strategy.
func (m *Maze) Algorithm() pathfinder.Algorithm { return m.opts.Algorithm }

// Grid exposes the live passability grid. Strategies and exporters read
// it; mutating it directly invalidates any cached route.
func (m *Maze) Grid() *grid.Grid { return m.grid }

// Path returns the route cached by the most recent successful search, or
// nil when none is cached. The slice is the cache itself; treat it as
// read-only.
func (m *Maze) Path() []grid.Position { return m.path }

// SetPath replaces the cached route. Search strategies call it on success;
// passing nil clears the cache.
func (m *Maze) SetPath(path []grid.Position) { m.path = path }

// SetGrid stages a pre-built grid on the aggregate, replacing the current
// one and clearing any cached route. The grid is cloned, so the caller
// keeps ownership of its copy.
//
// Returns ErrDimensionMismatch when g is nil or not size×size.
func (m *Maze) SetGrid(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrDimensionMismatch)
	}
	if g.Rows() != m.size || g.Cols() != m.size {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrDimensionMismatch, g.Rows(), g.Cols(), m.size, m.size)
	}
	m.grid = g.Clone()
	m.path = nil
	return nil
}

// CellNeighbours reports the four orthogonal neighbours of (row, col) in
// fixed up, down, left, right order. See grid.Grid.CellNeighbours.
func (m *Maze) CellNeighbours(row, col int) [4]*grid.Neighbour {
	return m.grid.CellNeighbours(row, col)
}

// FindPath searches start→goal with the configured strategy.
//
// On success the route is cached on the aggregate and returned. When no
// route exists the result is (nil, nil) and any stale cached route is
// cleared. Errors are reserved for misconfiguration, not for absent
// routes.
func (m *Maze) FindPath() ([]grid.Position, error) {
	s, err := pathfinder.New(m.opts.Algorithm, m)
	if err != nil {
		return nil, err
	}
	path, err := s.FindPath(m.start, m.goal)
	if err != nil {
		return nil, err
	}
	if path == nil {
		m.path = nil
		return nil, nil
	}
	return path, nil
}

// String returns a one-line human-readable summary.
func (m *Maze) String() string {
	return fmt.Sprintf("Maze(rows=%d, cols=%d, start=%s, goal=%s)",
		m.size, m.size, m.start, m.goal)
}
