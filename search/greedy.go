package search

import "github.com/katalvlaran/gridpath/grid"

// Greedy runs greedy best-first search from start to goal, expanding
// nodes in order of the Manhattan heuristic h alone.
//
// First discovery wins: a node is marked seen when it enters the
// frontier and is never revisited, even if a cheaper route to it
// appears later; there is no relaxation. Accumulated cost is ignored
// entirely when ordering, so the heuristic can lure the search into
// expensive detours; Greedy is not cost-optimal. TotalCost is a
// post-hoc sum over the returned path. Ties among equal h are broken
// by earliest frontier insertion.
func Greedy(g *grid.Grid, start, goal grid.Point, opts ...Option) Result {
	o := buildOptions(opts)
	res, done, t0 := precheck(g, start, goal, o)
	if done {
		return res
	}

	front := newMinFrontier(func(n *node) int { return n.h })
	r := newRun(g, goal, front, o, t0)
	goalID := goal.ID()
	seen := map[string]bool{start.ID(): true}
	r.push(&node{pt: start, id: start.ID(), h: grid.Manhattan(start, goal)})

	for front.size() > 0 {
		cur := front.pop()
		r.expand(cur.pt)

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
			r.push(&node{pt: nb, id: nbID, h: grid.Manhattan(nb, goal)})
		}
		r.snapshot()
	}

	return r.exhausted()
}
