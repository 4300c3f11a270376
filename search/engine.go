package search

import (
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// run carries the mutable state of a single search call: the frontier,
// the predecessor links, and the result under construction. Every call
// allocates its own run; nothing is shared between concurrent calls
// and the input grid is never mutated.
type run struct {
	grid  *grid.Grid
	goal  grid.Point
	opts  Options
	front frontier

	visited map[string]bool       // expanded (popped) nodes
	prev    map[string]string     // node id → predecessor id
	byID    map[string]grid.Point // id → point, for path reconstruction

	res   Result
	start time.Time
}

// newRun seeds the frontier with the start point and primes metrics.
func newRun(g *grid.Grid, goal grid.Point, f frontier, o Options, t0 time.Time) *run {
	r := &run{
		grid:    g,
		goal:    goal,
		opts:    o,
		front:   f,
		visited: make(map[string]bool),
		prev:    make(map[string]string),
		byID:    make(map[string]grid.Point),
		start:   t0,
	}
	if o.CaptureFrontier {
		r.res.FrontierSnapshots = [][]string{}
	}

	return r
}

// push registers p under its identifier and enqueues n, updating the
// running frontier peak.
func (r *run) push(n *node) {
	r.byID[n.id] = n.pt
	r.front.push(n)
	if s := r.front.size(); s > r.res.FrontierPeak {
		r.res.FrontierPeak = s
	}
}

// expand accepts p as the current node: appends it to VisitedOrder,
// marks it visited, and fires the OnExpand hook.
func (r *run) expand(p grid.Point) {
	r.visited[p.ID()] = true
	r.res.VisitedOrder = append(r.res.VisitedOrder, p)
	r.opts.OnExpand(p)
}

// snapshot records the current frontier identifiers, one snapshot per
// expansion step. No-op unless capture was requested.
func (r *run) snapshot() {
	if !r.opts.CaptureFrontier {
		return
	}
	r.res.FrontierSnapshots = append(r.res.FrontierSnapshots, r.front.ids())
}

// found finalizes a successful result with the given path and cost.
func (r *run) found(path []grid.Point, totalCost int) Result {
	r.res.Found = true
	r.res.Path = path
	r.res.TotalCost = totalCost

	return r.finish()
}

// exhausted finalizes an unsuccessful result: the frontier emptied
// without popping the goal. Full metrics are still reported for
// diagnostics and comparison.
func (r *run) exhausted() Result {
	return r.finish()
}

// finish fills the derived metrics and stamps the duration.
func (r *run) finish() Result {
	r.res.NodesExpanded = len(r.res.VisitedOrder)
	r.res.VisitedPeak = r.res.NodesExpanded
	if n := len(r.res.Path); n > 1 {
		r.res.PathLength = n - 1
	}
	r.res.Duration = r.opts.Clock().Sub(r.start)

	return r.res
}

// pathToGoal reconstructs the start→goal path from predecessor links.
func (r *run) pathToGoal() []grid.Point {
	return reconstructPath(r.prev, r.byID, r.goal.ID())
}

// reconstructPath walks backward from goalID via predecessor links
// until a node with no predecessor (the start) is reached, then
// reverses into start→goal order. An inconsistent map (a programming
// error, not a runtime condition) degrades silently into a truncated
// sequence.
func reconstructPath(prev map[string]string, byID map[string]grid.Point, goalID string) []grid.Point {
	ids := []string{goalID}
	for cur := goalID; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		ids = append(ids, p)
		cur = p
	}
	path := make([]grid.Point, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		pt, ok := byID[ids[i]]
		if !ok {
			continue
		}
		path = append(path, pt)
	}

	return path
}

// pathCost sums per-step costs along path: the cost of every cell
// entered after the start. Used post hoc by the algorithms that do not
// track accumulated cost during traversal (BFS, DFS, Greedy).
func pathCost(g *grid.Grid, path []grid.Point) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.CostAt(path[i])
	}

	return total
}

// precheck applies the shared precondition contract. It returns a
// finalized Result and done=true when the call must not reach the
// frontier loop:
//
//  1. nil or degenerate grid (R=0 or C=0): unfound, zero Duration.
//  2. start or goal out of bounds or on a Wall: unfound, measured
//     Duration. Out-of-bounds endpoints are the caller's contract
//     violation and are answered like the wall case.
func precheck(g *grid.Grid, start, goal grid.Point, o Options) (Result, bool, time.Time) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return Result{}, true, time.Time{}
	}
	t0 := o.Clock()
	if !g.InBounds(start) || !g.InBounds(goal) ||
		g.KindAt(start) == grid.Wall || g.KindAt(goal) == grid.Wall {
		return Result{Duration: o.Clock().Sub(t0)}, true, t0
	}

	return Result{}, false, t0
}
