package export

import (
	"errors"

	"github.com/katalvlaran/mazegen/grid"
)

// Sentinel errors shared by every renderer.
var (
	// ErrNilSource is returned when the source or its grid is absent.
	ErrNilSource = errors.New("export: nil source")

	// ErrUnsupportedFormat is returned by File for path extensions no
	// renderer claims.
	ErrUnsupportedFormat = errors.New("export: unsupported output format")
)

// Source is the read surface a renderer needs from a maze.
// *maze.Maze satisfies it as-is.
type Source interface {
	Grid() *grid.Grid
	Seed() int64
	Start() grid.Position
	Goal() grid.Position
	Path() []grid.Position
}

// routeSet indexes the cached route for O(1) membership, or nil when the
// solution is not drawn. A nil cache with drawSolution set draws nothing
// extra.
func routeSet(src Source, drawSolution bool) map[grid.Position]struct{} {
	if !drawSolution {
		return nil
	}
	route := src.Path()
	if len(route) == 0 {
		return nil
	}
	set := make(map[grid.Position]struct{}, len(route))
	for _, p := range route {
		set[p] = struct{}{}
	}
	return set
}
