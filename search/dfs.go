package search

import "github.com/katalvlaran/gridpath/grid"

// DFS runs depth-first search from start to goal over a 4-connected
// grid, expanding nodes in LIFO order.
//
// Neighbors are pushed in the reverse of the fixed enumeration order
// (right, left, down, up), so pops explore up → down → left → right
// depth-first. DFS guarantees neither a shortest nor a cheapest path,
// only that some path is found when one exists, since it exhausts the
// reachable component before giving up. TotalCost is a post-hoc sum
// over the returned path.
func DFS(g *grid.Grid, start, goal grid.Point, opts ...Option) Result {
	o := buildOptions(opts)
	res, done, t0 := precheck(g, start, goal, o)
	if done {
		return res
	}

	r := newRun(g, goal, newLIFO(), o, t0)
	goalID := goal.ID()
	seen := map[string]bool{start.ID(): true}
	r.push(&node{pt: start, id: start.ID()})

	for r.front.size() > 0 {
		cur := r.front.pop()
		r.expand(cur.pt)

		if cur.id == goalID {
			r.snapshot()
			path := r.pathToGoal()

			return r.found(path, pathCost(g, path))
		}

		nbs := g.Neighbors4(cur.pt)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
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
