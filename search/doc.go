// Package search provides the five classic grid pathfinding
// algorithms — BFS, DFS, Uniform-Cost, Greedy Best-First, and A* —
// over a weighted 4-connected grid, with a uniform Result contract
// built for animated replay.
//
// What
//
//   - Five pure functions with one signature shape:
//     BFS / DFS / UCS / Greedy / AStar(g, start, goal, opts...) Result.
//   - Result carries everything a visualizer needs:
//   - Path:          start→goal points (empty when not found)
//   - VisitedOrder:  exact expansion order, for replay
//   - FrontierSnapshots: optional per-step frontier identifier sets
//   - NodesExpanded, PathLength, TotalCost, FrontierPeak,
//     VisitedPeak, Duration
//   - Functional options: WithClock (injected time source),
//     WithFrontierSnapshots (O(n)-per-step diagnostic capture),
//     WithOnExpand (observation hook per expanded node).
//
// Why
//
//   - Watch how frontier policy alone changes exploration: the five
//     algorithms share one loop shape and differ only in how the next
//     node is chosen and whether discovered costs are relaxed.
//   - Compare optimality: UCS and A* return the exact minimum cost;
//     BFS is step-optimal on unweighted grids; DFS and Greedy merely
//     find some path.
//
// Contract
//
//	Degenerate grids (nil, zero rows or columns) and walls under start
//	or goal yield an immediate unfound Result: abnormal conditions are
//	reported through Result.Found, never through errors or panics. The
//	goal is detected when popped from the frontier, before its
//	neighbors are expanded, and still counts toward VisitedOrder. An
//	exhausted frontier reports not-found with full metrics: every
//	algorithm is complete on finite grids.
//
// Determinism
//
//	Neighbors enumerate in the fixed order up, down, left, right
//	(reversed when DFS pushes), and priority ties are broken by
//	earliest frontier insertion. Two calls with the same inputs produce
//	identical Path, VisitedOrder, and metrics, Duration aside.
//
// Complexity (N = R×C cells)
//
//   - BFS/DFS:          O(N) time, O(N) memory.
//   - UCS/Greedy/A*:    O(N log N) time via an indexed min-heap
//     (in-place decrease-key, no duplicate entries), O(N) memory.
//   - Frontier snapshots, when enabled, add O(N) per expansion step.
//
// Usage
//
//	g, _ := grid.Parse(`
//	.....#..
//	...#....
//	........
//	`)
//	res := search.AStar(g, grid.Pt(0, 0), grid.Pt(2, 7))
//	if res.Found {
//	    fmt.Println(res.PathLength, res.TotalCost)
//	}
//
// Each call is a tight synchronous compute loop with its own frontier,
// visited set, and predecessor map: no suspension points, no shared
// mutable state, no mutation of the input grid. Callers animate by
// replaying VisitedOrder (and FrontierSnapshots) at their own cadence;
// the engine itself has no notion of pausing or cancellation.
package search
