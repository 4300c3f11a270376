package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from start to goal over a 4-connected
// grid, expanding nodes in FIFO layer order.
//
// BFS ignores cell weights when ordering: the returned path is
// shortest in step count, and TotalCost is an informational post-hoc
// sum over that path. On a grid with Weight cells the result may
// therefore be step-shortest but not cheapest; this is intentional.
//
// Unlike the other algorithms, BFS short-circuits start == goal with a
// found single-point result before any frontier work.
func BFS(g *grid.Grid, start, goal grid.Point, opts ...Option) Result {
	o := buildOptions(opts)
	res, done, t0 := precheck(g, start, goal, o)
	if done {
		return res
	}
	if start == goal {
		res.Found = true
		res.Path = []grid.Point{start}
		if o.CaptureFrontier {
			res.FrontierSnapshots = [][]string{}
		}
		res.Duration = o.Clock().Sub(t0)

		return res
	}

	r := newRun(g, goal, newFIFO(), o, t0)
	goalID := goal.ID()
	seen := map[string]bool{start.ID(): true}
	r.push(&node{pt: start, id: start.ID()})

	for r.front.size() > 0 {
		cur := r.front.pop()
		r.expand(cur.pt)

		// Goal detection happens at pop, before neighbor expansion;
		// the goal node still counts toward VisitedOrder.
		if cur.id == goalID {
			r.snapshot()
			path := r.pathToGoal()

			return r.found(path, pathCost(g, path))
		}

		for _, nb := range g.Neighbors4(cur.pt) {
			if !g.KindAt(nb).Passable() {
				continue
			}
			nbID := nb.ID()
			if seen[nbID] {
				continue
			}
			seen[nbID] = true
			r.prev[nbID] = cur.id
			r.push(&node{pt: nb, id: nbID})
		}
		r.snapshot()
	}

	return r.exhausted()
}
