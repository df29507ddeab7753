package maze

import (
	"fmt"
	"math/rand"

	"github.com/cenkalti/backoff/v4"
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/pathfinder"
)

// probe adapts a scratch grid to pathfinder.Maze so validation searches can
// run without touching the aggregate. Cached-route writes are dropped.
type probe struct{ g *grid.Grid }

func (p *probe) Grid() *grid.Grid        { return p.g }
func (p *probe) SetPath([]grid.Position) {}

// GenerateMaze carves the maze until it satisfies the diversity constraint,
// then commits the result to the aggregate and caches the start→goal route.
//
// alg selects the validating strategy for this run; AlgorithmUnspecified
// falls back to the configured Options.Algorithm.
//
// Steps:
//  1. Resolve the strategy and fail fast on an unknown one, before any
//     attempt is spent.
//  2. Seed a single rand stream for the whole call: every attempt draws
//     from it in order, so equal seeds reproduce equal mazes.
//  3. Run carve attempts under a flat bounded retry policy (ZeroBackOff,
//     Options.MaxAttempts total tries). Attempts are independent draws of
//     the same stream; waiting between them buys nothing. Unsatisfiable
//     constraints abort the retry loop immediately.
//  4. On success commit the scratch grid, then run the strategy against
//     the aggregate itself so the route is cached through SetPath.
//
// A failed generation returns ErrGenerationFailed (or the strategy
// construction error) and leaves the aggregate exactly as it was.
// Out-of-bounds start or goal positions panic on their first grid access.
func (m *Maze) GenerateMaze(alg pathfinder.Algorithm) error {
	// 1. Zero value means "use the configured default".
	if alg == pathfinder.AlgorithmUnspecified {
		alg = m.opts.Algorithm
	}
	if _, err := pathfinder.New(alg, m); err != nil {
		return err
	}

	// 2. One deterministic stream behind every attempt.
	rng := rngFromSeed(m.seed)

	// 3. Flat bounded retry: WithMaxRetries counts retries after the first
	//    attempt, hence MaxAttempts-1.
	var carved *grid.Grid
	op := func() error {
		g, err := m.carveAttempt(rng, alg)
		if err != nil {
			return err
		}
		carved = g
		return nil
	}
	policy := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(m.opts.MaxAttempts-1))
	if err := backoff.Retry(op, policy); err != nil {
		return err
	}

	// 4. Commit, then let the strategy cache the route on the aggregate.
	m.grid = carved
	m.path = nil
	s, err := pathfinder.New(alg, m)
	if err != nil {
		return err
	}
	route, err := s.FindPath(m.start, m.goal)
	if err != nil {
		return err
	}
	if route == nil {
		return fmt.Errorf("%w: committed grid has no start→goal route", ErrGenerationFailed)
	}
	return nil
}

// carveAttempt produces one candidate grid or reports why it fell short.
// Plain errors are retryable; backoff.Permanent marks constraint shapes no
// retry can fix.
func (m *Maze) carveAttempt(rng *rand.Rand, alg pathfinder.Algorithm) (*grid.Grid, error) {
	// 1. Fresh all-wall scratch grid. Failed attempts never leak into the
	//    aggregate.
	g, err := grid.New(m.size, m.size)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	c := newCarver(g, rng, m.start, m.goal, m.opts.LoopBias)

	// 2. Randomized frontier carving from start, then splice in the goal.
	c.carve()
	c.ensureGoalCorridor()

	// 3. Certify route diversity on a throwaway clone.
	want := m.opts.MinValidPaths
	routes, err := countRoutes(g, alg, m.start, m.goal, want)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	if routes == 0 {
		return nil, fmt.Errorf("%w: start and goal are disconnected", ErrGenerationFailed)
	}

	// 4. Repair shortfalls by opening loop-forming walls, one per recount,
	//    under a per-attempt budget.
	budget := 2 * m.size
	for routes < want {
		if budget == 0 {
			return nil, fmt.Errorf("%w: %d of %d routes after repair budget",
				ErrGenerationFailed, routes, want)
		}
		if !c.openLoopWall() {
			// No walls left: the grid is fully open and still short, so no
			// retry can satisfy this start/goal shape.
			return nil, backoff.Permanent(fmt.Errorf(
				"%w: only %d route(s) possible even fully open, need %d",
				ErrGenerationFailed, routes, want))
		}
		budget--
		if routes, err = countRoutes(g, alg, m.start, m.goal, want); err != nil {
			return nil, backoff.Permanent(err)
		}
	}
	return g, nil
}

// countRoutes reports how many structurally distinct start→goal routes the
// strategy certifies on g, capped at limit.
//
// Each found route has its interior cells blocked on a clone before the
// next search, so no two counted routes share an intermediate cell. A route
// with no interior can never be severed; re-searching would count it
// forever, so it satisfies any floor outright.
func countRoutes(g *grid.Grid, alg pathfinder.Algorithm, start, goal grid.Position, limit int) (int, error) {
	scratch := g.Clone()
	s, err := pathfinder.New(alg, &probe{g: scratch})
	if err != nil {
		return 0, err
	}

	count := 0
	for count < limit {
		route, err := s.FindPath(start, goal)
		if err != nil {
			return count, err
		}
		if route == nil {
			break
		}
		count++
		if len(route) <= 2 {
			return limit, nil
		}
		for _, p := range route[1 : len(route)-1] {
			scratch.Set(p.Row, p.Col, grid.Wall)
		}
	}
	return count, nil
}

// carver accumulates the scratch state of one generation attempt.
type carver struct {
	g        *grid.Grid
	rng      *rand.Rand
	start    grid.Position
	goal     grid.Position
	loopBias float64

	frontier *arraylist.List // candidate wall cells, drawn at random indices
	seen     [][]bool        // cells ever enqueued on the frontier
}

func newCarver(g *grid.Grid, rng *rand.Rand, start, goal grid.Position, loopBias float64) *carver {
	seen := make([][]bool, g.Rows())
	for r := range seen {
		seen[r] = make([]bool, g.Cols())
	}
	return &carver{
		g:        g,
		rng:      rng,
		start:    start,
		goal:     goal,
		loopBias: loopBias,
		frontier: arraylist.New(),
		seen:     seen,
	}
}

// carve grows the passable region outward from start, Prim style.
//
// Steps:
//  1. Open the start cell (an out-of-bounds start panics here) and enqueue
//     its wall neighbours.
//  2. Draw a frontier cell at a random index. Open it when exactly one of
//     its neighbours is already passable (tree growth), or with
//     probability loopBias otherwise (loop retention). Every opened cell
//     enqueues its own wall neighbours.
//  3. Repeat until the frontier drains. Cells enqueue at most once, so the
//     loop ends after O(size²) draws.
func (c *carver) carve() {
	c.g.Set(c.start.Row, c.start.Col, grid.Passable)
	c.seen[c.start.Row][c.start.Col] = true
	c.pushNeighbours(c.start)

	for c.frontier.Size() > 0 {
		idx := c.rng.Intn(c.frontier.Size())
		v, _ := c.frontier.Get(idx)
		c.frontier.Remove(idx)
		cell := v.(grid.Position)

		if c.passableDegree(cell) == 1 || c.rng.Float64() < c.loopBias {
			c.g.Set(cell.Row, cell.Col, grid.Passable)
			c.pushNeighbours(cell)
		}
	}
}

// pushNeighbours enqueues every in-bounds wall neighbour of p that has not
// been on the frontier before.
func (c *carver) pushNeighbours(p grid.Position) {
	for _, nb := range c.g.CellNeighbours(p.Row, p.Col) {
		if nb == nil || nb.Cell == grid.Passable {
			continue
		}
		if c.seen[nb.Row][nb.Col] {
			continue
		}
		c.seen[nb.Row][nb.Col] = true
		c.frontier.Add(nb.Position())
	}
}

// passableDegree counts the passable orthogonal neighbours of p.
func (c *carver) passableDegree(p grid.Position) int {
	degree := 0
	for _, nb := range c.g.CellNeighbours(p.Row, p.Col) {
		if nb != nil && nb.Cell == grid.Passable {
			degree++
		}
	}
	return degree
}

// ensureGoalCorridor splices the goal into the region reachable from start.
//
// Steps:
//  1. Open the goal cell (an out-of-bounds goal panics here).
//  2. Flood-fill from start; done when the region already covers the goal.
//  3. Otherwise walk a seed-driven staircase from goal toward start,
//     opening each visited cell, until the walk enters the reachable
//     region. Consecutive cells are orthogonally adjacent, so the corridor
//     connects.
func (c *carver) ensureGoalCorridor() {
	if c.g.At(c.goal.Row, c.goal.Col) != grid.Passable {
		c.g.Set(c.goal.Row, c.goal.Col, grid.Passable)
	}
	reach := c.g.Reachable(c.start)
	if reach[c.goal.Row][c.goal.Col] {
		return
	}

	cur := c.goal
	for cur != c.start && !reach[cur.Row][cur.Col] {
		dr := sign(c.start.Row - cur.Row)
		dc := sign(c.start.Col - cur.Col)
		switch {
		case dr != 0 && dc != 0:
			if c.rng.Intn(2) == 0 {
				cur = grid.Pos(cur.Row+dr, cur.Col)
			} else {
				cur = grid.Pos(cur.Row, cur.Col+dc)
			}
		case dr != 0:
			cur = grid.Pos(cur.Row+dr, cur.Col)
		default:
			cur = grid.Pos(cur.Row, cur.Col+dc)
		}
		c.g.Set(cur.Row, cur.Col, grid.Passable)
	}
}

// openLoopWall converts one wall into a passage to enable an alternative
// route. It prefers walls already touching two or more passable cells,
// where opening closes a loop immediately, and falls back to any wall
// touching the region, which grows it so a later call can close one.
//
// Candidates are collected in row-major order and drawn with the seeded
// generator. Returns false only when the grid has no walls left.
func (c *carver) openLoopWall() bool {
	cands := c.collectWalls(2)
	if len(cands) == 0 {
		cands = c.collectWalls(1)
	}
	if len(cands) == 0 {
		return false
	}
	p := cands[c.rng.Intn(len(cands))]
	c.g.Set(p.Row, p.Col, grid.Passable)
	return true
}

// collectWalls lists wall cells with at least minDegree passable
// neighbours, in row-major order.
func (c *carver) collectWalls(minDegree int) []grid.Position {
	var cands []grid.Position
	for r := 0; r < c.g.Rows(); r++ {
		for col := 0; col < c.g.Cols(); col++ {
			if c.g.At(r, col) != grid.Wall {
				continue
			}
			if c.passableDegree(grid.Pos(r, col)) >= minDegree {
				cands = append(cands, grid.Pos(r, col))
			}
		}
	}
	return cands
}

// sign reports -1, 0 or 1 matching d's sign.
func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}
