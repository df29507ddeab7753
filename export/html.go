package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mazegen/grid"
)

// Cell classes emitted into the HTML table. The PNG palette mirrors them.
const (
	classWall    = "cell-wall"
	classPassage = "cell-passage"
	classStart   = "cell-start"
	classGoal    = "cell-goal"
	classPath    = "cell-path"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Maze #%d</title>
<style>
table.maze { border-collapse: collapse; }
table.maze td { width: 14px; height: 14px; }
td.cell-wall { background: #1f2430; }
td.cell-passage { background: #fafafa; }
td.cell-start { background: #4caf50; }
td.cell-goal { background: #f44336; }
td.cell-path { background: #2196f3; }
</style>
</head>
<body>
<h1>Maze #%d</h1>
<table class="maze">
`

const htmlFoot = `</table>
</body>
</html>
`

// HTML renders src as a standalone document: one table cell per grid cell,
// titled and headed "Maze #<seed>". The cached route is classed cell-path
// only when drawSolution is true.
//
// Write errors are buffered and surface from the final flush.
func HTML(w io.Writer, src Source, drawSolution bool) error {
	if src == nil || src.Grid() == nil {
		return ErrNilSource
	}
	g := src.Grid()
	onPath := routeSet(src, drawSolution)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, htmlHead, src.Seed(), src.Seed())
	for r := 0; r < g.Rows(); r++ {
		bw.WriteString("<tr>")
		for c := 0; c < g.Cols(); c++ {
			fmt.Fprintf(bw, `<td class=%q></td>`, cellClass(src, onPath, grid.Pos(r, c)))
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString(htmlFoot)
	return bw.Flush()
}

// HTMLFile renders the document to path, creating or truncating the file.
func HTMLFile(path string, src Source, drawSolution bool) error {
	return toFile(path, src, drawSolution, HTML)
}

// cellClass picks the one class of a cell. Start and goal markers win over
// the route, the route wins over plain passability.
func cellClass(src Source, onPath map[grid.Position]struct{}, p grid.Position) string {
	if p == src.Start() {
		return classStart
	}
	if p == src.Goal() {
		return classGoal
	}
	if _, ok := onPath[p]; ok {
		return classPath
	}
	if src.Grid().At(p.Row, p.Col) == grid.Passable {
		return classPassage
	}
	return classWall
}
