package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// searchFn is the uniform signature shape shared by all five algorithms.
type searchFn func(g *grid.Grid, start, goal grid.Point, opts ...search.Option) search.Result

// algorithms drives every cross-algorithm property below.
var algorithms = []struct {
	name string
	fn   searchFn
}{
	{"BFS", search.BFS},
	{"DFS", search.DFS},
	{"UCS", search.UCS},
	{"Greedy", search.Greedy},
	{"AStar", search.AStar},
}

// InvariantSuite exercises the properties every algorithm must satisfy.
type InvariantSuite struct {
	suite.Suite
}

// assertMetrics checks the result-internal consistency contract.
func (s *InvariantSuite) assertMetrics(res search.Result) {
	s.T().Helper()
	require.Equal(s.T(), len(res.VisitedOrder), res.NodesExpanded, "NodesExpanded mismatch")
	require.Equal(s.T(), res.NodesExpanded, res.VisitedPeak, "VisitedPeak mismatch")
	wantLen := 0
	if len(res.Path) > 1 {
		wantLen = len(res.Path) - 1
	}
	require.Equal(s.T(), wantLen, res.PathLength, "PathLength mismatch")
}

// TestCompleteness: reachable goal → found, path endpoints correct.
func (s *InvariantSuite) TestCompleteness() {
	g, err := grid.Parse(`
.....#..
...#....
..#...#.
........
`)
	require.NoError(s.T(), err)
	start, goal := grid.Pt(0, 0), grid.Pt(3, 7)

	for _, alg := range algorithms {
		res := alg.fn(g, start, goal)
		require.True(s.T(), res.Found, "%s: reachable goal not found", alg.name)
		require.NotEmpty(s.T(), res.Path, "%s: empty path", alg.name)
		require.Equal(s.T(), start, res.Path[0], "%s: path must begin at start", alg.name)
		require.Equal(s.T(), goal, res.Path[len(res.Path)-1], "%s: path must end at goal", alg.name)
		s.assertMetrics(res)
	}
}

// TestUnreachability: fully enclosed goal → unfound, empty path, and
// expansions equal to the reachable component size around start.
func (s *InvariantSuite) TestUnreachability() {
	g, err := grid.Parse(`
....#.
....#.
####.#
..#...
`)
	require.NoError(s.T(), err)
	start, goal := grid.Pt(0, 0), grid.Pt(3, 5)
	component := 8 // the open cells connected to (0,0)

	for _, alg := range algorithms {
		res := alg.fn(g, start, goal)
		require.False(s.T(), res.Found, "%s: walled-off goal reported found", alg.name)
		require.Empty(s.T(), res.Path, "%s: path should be empty", alg.name)
		require.Equal(s.T(), component, res.NodesExpanded,
			"%s: expansions must cover the reachable component exactly", alg.name)
		s.assertMetrics(res)
	}
}

// TestWallPrecondition: start or goal on a wall → immediate unfound
// with zero expansions.
func (s *InvariantSuite) TestWallPrecondition() {
	g, err := grid.Parse("#..\n...")
	require.NoError(s.T(), err)

	for _, alg := range algorithms {
		res := alg.fn(g, grid.Pt(0, 0), grid.Pt(1, 2))
		require.False(s.T(), res.Found, "%s: wall start", alg.name)
		require.Zero(s.T(), res.NodesExpanded, "%s: wall start expansions", alg.name)

		res = alg.fn(g, grid.Pt(1, 2), grid.Pt(0, 0))
		require.False(s.T(), res.Found, "%s: wall goal", alg.name)
		require.Zero(s.T(), res.NodesExpanded, "%s: wall goal expansions", alg.name)
	}
}

// TestPathContiguity: successful paths are 4-adjacent chains that
// never cross a wall.
func (s *InvariantSuite) TestPathContiguity() {
	g, err := grid.Parse(`
..~#....
.#~~..#.
...#..~.
##......
`)
	require.NoError(s.T(), err)
	start, goal := grid.Pt(0, 0), grid.Pt(3, 7)

	for _, alg := range algorithms {
		res := alg.fn(g, start, goal)
		require.True(s.T(), res.Found, "%s: goal is reachable", alg.name)
		for i, p := range res.Path {
			require.NotEqual(s.T(), grid.Wall, g.KindAt(p), "%s: path[%d]=%v is a wall", alg.name, i, p)
			if i > 0 {
				require.Equal(s.T(), 1, grid.Manhattan(res.Path[i-1], p),
					"%s: path[%d]→path[%d] not 4-adjacent", alg.name, i-1, i)
			}
		}
	}
}

// TestIdempotence: identical inputs yield identical outputs, timing aside.
func (s *InvariantSuite) TestIdempotence() {
	g, err := grid.Parse(`
...~....
.#.~.##.
...~....
........
`)
	require.NoError(s.T(), err)
	start, goal := grid.Pt(0, 0), grid.Pt(3, 7)

	for _, alg := range algorithms {
		a := alg.fn(g, start, goal, search.WithFrontierSnapshots())
		b := alg.fn(g, start, goal, search.WithFrontierSnapshots())
		require.Equal(s.T(), a.Path, b.Path, "%s: Path differs across runs", alg.name)
		require.Equal(s.T(), a.VisitedOrder, b.VisitedOrder, "%s: VisitedOrder differs", alg.name)
		require.Equal(s.T(), a.FrontierSnapshots, b.FrontierSnapshots, "%s: snapshots differ", alg.name)
		require.Equal(s.T(), a.TotalCost, b.TotalCost, "%s: TotalCost differs", alg.name)
		require.Equal(s.T(), a.PathLength, b.PathLength, "%s: PathLength differs", alg.name)
		require.Equal(s.T(), a.FrontierPeak, b.FrontierPeak, "%s: FrontierPeak differs", alg.name)
	}
}

// TestSnapshotAlignment: when enabled, exactly one snapshot per
// expansion step.
func (s *InvariantSuite) TestSnapshotAlignment() {
	g, err := grid.Parse("....\n.##.\n....")
	require.NoError(s.T(), err)

	for _, alg := range algorithms {
		res := alg.fn(g, grid.Pt(0, 0), grid.Pt(2, 3), search.WithFrontierSnapshots())
		require.Len(s.T(), res.FrontierSnapshots, len(res.VisitedOrder),
			"%s: snapshots must align with VisitedOrder", alg.name)

		res = alg.fn(g, grid.Pt(0, 0), grid.Pt(2, 3))
		require.Nil(s.T(), res.FrontierSnapshots, "%s: snapshots must be opt-in", alg.name)
	}
}

// TestGridNotMutated: the input grid is read-only for every algorithm.
func (s *InvariantSuite) TestGridNotMutated() {
	g, err := grid.Parse("..~.\n.#..\n....")
	require.NoError(s.T(), err)
	before := g.String()

	for _, alg := range algorithms {
		_ = alg.fn(g, grid.Pt(0, 0), grid.Pt(2, 3))
		require.Equal(s.T(), before, g.String(), "%s mutated the grid", alg.name)
	}
}

// TestScenario_OpenGridWithSingleWall is the reference 5×8 scenario:
// one wall at (1,3) that forces no detour; BFS finds the Manhattan-
// length path at unit cost.
func (s *InvariantSuite) TestScenario_OpenGridWithSingleWall() {
	g, err := grid.New(5, 8)
	require.NoError(s.T(), err)
	g.Set(grid.Pt(1, 3), grid.Wall)

	res := search.BFS(g, grid.Pt(0, 0), grid.Pt(4, 7))
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 11, res.PathLength, "Manhattan distance, no detour needed")
	require.Equal(s.T(), 11, res.TotalCost)
}

// TestScenario_WallRowWithOpening: a full wall row with one opening at
// (2,4): every algorithm must route through it, and the cost-aware
// pair agrees on the optimum.
func (s *InvariantSuite) TestScenario_WallRowWithOpening() {
	g, err := grid.New(5, 8)
	require.NoError(s.T(), err)
	g.Set(grid.Pt(1, 3), grid.Wall)
	for y := 0; y < 8; y++ {
		if y != 4 {
			g.Set(grid.Pt(2, y), grid.Wall)
		}
	}
	start, goal := grid.Pt(0, 0), grid.Pt(4, 7)
	opening := grid.Pt(2, 4)

	costs := map[string]int{}
	for _, alg := range algorithms {
		res := alg.fn(g, start, goal)
		require.True(s.T(), res.Found, "%s: opening keeps the goal reachable", alg.name)
		require.Contains(s.T(), res.Path, opening, "%s: path must pass the opening", alg.name)
		costs[alg.name] = res.TotalCost
		s.assertMetrics(res)
	}
	require.Equal(s.T(), costs["UCS"], costs["AStar"], "UCS and A* must agree on the optimum")
	require.Equal(s.T(), 11, costs["UCS"], "the opening lies on a Manhattan-length route")
}

// TestBFS_StepOptimality: on an unweighted grid BFS's PathLength equals
// an independently computed breadth-level distance.
func (s *InvariantSuite) TestBFS_StepOptimality() {
	g, err := grid.Parse(`
........
.######.
........
.######.
........
`)
	require.NoError(s.T(), err)
	start, goal := grid.Pt(0, 0), grid.Pt(4, 0)

	res := search.BFS(g, start, goal)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), levelDistance(g, start, goal), res.PathLength)
}

// levelDistance computes step distance by plain breadth-layer counting,
// independent of the engine under test.
func levelDistance(g *grid.Grid, start, goal grid.Point) int {
	dist := map[grid.Point]int{start: 0}
	queue := []grid.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, nb := range g.Neighbors4(cur) {
			if g.KindAt(nb) == grid.Wall {
				continue
			}
			if _, ok := dist[nb]; ok {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}

	return -1
}

func TestInvariantSuite(t *testing.T) {
	suite.Run(t, new(InvariantSuite))
}
