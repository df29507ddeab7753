package pathfinder

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/mazegen/grid"
)

// BFS is the breadth-first search variant: unweighted shortest path over the
// implicit 4-connected grid graph.
type BFS struct {
	Base
}

// NewBFS binds a BFS strategy to m.
func NewBFS(m Maze) *BFS {
	return &BFS{Base{maze: m}}
}

// walker encapsulates the mutable state of one search.
type walker struct {
	g       *grid.Grid
	goal    grid.Position
	queue   *linkedlistqueue.Queue
	visited [][]bool
	parent  map[grid.Position]grid.Position
}

// FindPath runs breadth-first search from start to goal and returns a
// minimum-length route, or (nil, nil) when the goal is unreachable.
//
// Steps:
//  1. Read the start and goal cells. This is the first grid access, so
//     out-of-range coordinates panic here (lazy bounds validation); a wall
//     at either endpoint means no route can exist and returns (nil, nil).
//  2. Equal start and goal short-circuit to the single-cell route.
//  3. Seed a FIFO frontier with start. Cells are marked visited at enqueue
//     time, never re-enqueued, so each cell is visited at most once and the
//     route has no repeats.
//  4. Expand neighbours in the grid's fixed up/down/left/right order
//     (deterministic tie-break among equal-length routes), recording a
//     predecessor link per discovered cell.
//  5. Dequeuing the goal ends the walk: follow predecessors back to start
//     and reverse. Frontier exhaustion returns (nil, nil).
//
// On success the route is cached on the bound aggregate via SetPath and the
// same slice is returned.
// Complexity: O(rows×cols) time and memory.
func (b *BFS) FindPath(start, goal grid.Position) ([]grid.Position, error) {
	g := b.maze.Grid()
	startCell := g.At(start.Row, start.Col)
	goalCell := g.At(goal.Row, goal.Col)
	if startCell != grid.Passable || goalCell != grid.Passable {
		return nil, nil
	}
	if start == goal {
		path := []grid.Position{start}
		b.maze.SetPath(path)

		return path, nil
	}

	w := newWalker(g, goal)
	w.enqueue(start, start)
	if !w.run() {
		return nil, nil
	}

	path := w.reconstruct(start)
	b.maze.SetPath(path)

	return path, nil
}

// newWalker prepares per-search state sized to the grid.
func newWalker(g *grid.Grid, goal grid.Position) *walker {
	visited := make([][]bool, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		visited[r] = make([]bool, g.Cols())
	}

	return &walker{
		g:       g,
		goal:    goal,
		queue:   linkedlistqueue.New(),
		visited: visited,
		parent:  make(map[grid.Position]grid.Position, g.Rows()*g.Cols()),
	}
}

// enqueue marks p visited, records its predecessor, and appends it to the
// frontier. The root enqueues itself as parent and gets no link.
func (w *walker) enqueue(p, parent grid.Position) {
	w.visited[p.Row][p.Col] = true
	if p != parent {
		w.parent[p] = parent
	}
	w.queue.Enqueue(p)
}

// run processes the frontier until the goal is dequeued or the queue drains.
func (w *walker) run() bool {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		cur := v.(grid.Position)
		if cur == w.goal {
			return true
		}
		w.enqueueNeighbours(cur)
	}

	return false
}

// enqueueNeighbours discovers the unseen passable neighbours of cur in the
// contract order.
func (w *walker) enqueueNeighbours(cur grid.Position) {
	for _, nb := range w.g.CellNeighbours(cur.Row, cur.Col) {
		if nb == nil || nb.Cell != grid.Passable {
			continue
		}
		if w.visited[nb.Row][nb.Col] {
			continue
		}
		w.enqueue(nb.Position(), cur)
	}
}

// reconstruct follows predecessor links from the goal back to start and
// reverses, producing a route that begins at start and ends at goal.
func (w *walker) reconstruct(start grid.Position) []grid.Position {
	path := []grid.Position{w.goal}
	for cur := w.goal; cur != start; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
