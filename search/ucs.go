package search

import "github.com/katalvlaran/gridpath/grid"

// UCS runs uniform-cost search (Dijkstra over the cell-cost model)
// from start to goal, expanding nodes in order of accumulated cost g.
//
// Relaxation follows Dijkstra: for each non-wall neighbor, a strictly
// smaller tentative g replaces the neighbor's frontier entry in place
// (decrease-key) and rewires its predecessor. Ties among equal g are
// broken by earliest frontier insertion. TotalCost at success is the
// goal's final g, the provably minimum path cost under the
// non-negative step costs of this grid.
func UCS(g *grid.Grid, start, goal grid.Point, opts ...Option) Result {
	o := buildOptions(opts)
	res, done, t0 := precheck(g, start, goal, o)
	if done {
		return res
	}

	front := newMinFrontier(func(n *node) int { return n.g })
	r := newRun(g, goal, front, o, t0)
	goalID := goal.ID()
	r.push(&node{pt: start, id: start.ID(), g: 0})

	for front.size() > 0 {
		cur := front.pop()
		r.expand(cur.pt)

		if cur.id == goalID {
			r.snapshot()

			return r.found(r.pathToGoal(), cur.g)
		}

		for _, nb := range g.Neighbors4(cur.pt) {
			if !g.KindAt(nb).Passable() {
				continue
			}
			nbID := nb.ID()
			if r.visited[nbID] {
				// Finalized under non-negative costs; no cheaper route exists.
				continue
			}
			tentative := cur.g + g.CostAt(nb)
			if entry, ok := front.lookup(nbID); ok {
				if tentative < entry.g {
					entry.g = tentative
					front.fix(entry)
					r.prev[nbID] = cur.id
				}
				continue
			}
			r.prev[nbID] = cur.id
			r.push(&node{pt: nb, id: nbID, g: tentative})
		}
		r.snapshot()
	}

	return r.exhausted()
}
