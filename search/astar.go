package search

import "github.com/katalvlaran/gridpath/grid"

// AStar runs A* search from start to goal, expanding nodes in order of
// f = g + h, where g is the accumulated path cost and h the Manhattan
// distance to goal.
//
// Relaxation is identical to UCS but keyed on f: a strictly smaller
// tentative g updates the neighbor's g and f in place (h is fixed per
// cell) and rewires its predecessor. Manhattan distance is admissible
// and consistent on a 4-connected grid with step costs ≥ 1, so
// TotalCost at success is the exact minimum, matching UCS, typically
// with fewer expansions. Ties among equal f are broken by earliest
// frontier insertion.
func AStar(g *grid.Grid, start, goal grid.Point, opts ...Option) Result {
	o := buildOptions(opts)
	res, done, t0 := precheck(g, start, goal, o)
	if done {
		return res
	}

	front := newMinFrontier(func(n *node) int { return n.f })
	r := newRun(g, goal, front, o, t0)
	goalID := goal.ID()
	h0 := grid.Manhattan(start, goal)
	r.push(&node{pt: start, id: start.ID(), g: 0, h: h0, f: h0})

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
				// Consistent heuristic: closed nodes are finalized.
				continue
			}
			tentative := cur.g + g.CostAt(nb)
			if entry, ok := front.lookup(nbID); ok {
				if tentative < entry.g {
					entry.g = tentative
					entry.f = tentative + entry.h
					front.fix(entry)
					r.prev[nbID] = cur.id
				}
				continue
			}
			nh := grid.Manhattan(nb, goal)
			r.prev[nbID] = cur.id
			r.push(&node{pt: nb, id: nbID, g: tentative, h: nh, f: tentative + nh})
		}
		r.snapshot()
	}

	return r.exhausted()
}
