// Command pathimage runs one pathfinding algorithm over an ASCII grid
// file, prints the result metrics, and can write the rendered grid and
// path to a PNG.
//
// Grid files use the grid.Parse alphabet: '.' empty, '#' wall,
// '~' weight. Points are given as "x,y" (row,column).
//
// Example:
//
//	pathimage -grid maze.txt -algo astar -start 0,0 -goal 4,7 -out out.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// algorithms maps the -algo flag to an engine entry point.
var algorithms = map[string]func(*grid.Grid, grid.Point, grid.Point, ...search.Option) search.Result{
	"bfs":    search.BFS,
	"dfs":    search.DFS,
	"ucs":    search.UCS,
	"greedy": search.Greedy,
	"astar":  search.AStar,
}

func run() error {
	gridPath := flag.String("grid", "", "Path to an ASCII grid file ('.', '#', '~').")
	algoName := flag.String("algo", "astar", "Algorithm: bfs, dfs, ucs, greedy, or astar.")
	startID := flag.String("start", "0,0", "Start cell as \"x,y\".")
	goalID := flag.String("goal", "", "Goal cell as \"x,y\". Defaults to the bottom-right cell.")
	outPath := flag.String("out", "", "Optional output PNG path.")
	cellSize := flag.Int("cell", render.DefaultCellSize, "Cell edge length in pixels for -out.")
	snapshots := flag.Bool("snapshots", false, "Capture and report frontier snapshot count.")
	flag.Parse()

	if *gridPath == "" {
		return fmt.Errorf("missing required -grid flag")
	}
	layout, err := os.ReadFile(*gridPath)
	if err != nil {
		return fmt.Errorf("reading grid file: %w", err)
	}
	g, err := grid.Parse(string(layout))
	if err != nil {
		return fmt.Errorf("parsing grid: %w", err)
	}

	algo, ok := algorithms[*algoName]
	if !ok {
		return fmt.Errorf("unknown algorithm %q", *algoName)
	}
	start, err := grid.ParseID(*startID)
	if err != nil {
		return fmt.Errorf("parsing -start: %w", err)
	}
	goal := grid.Pt(g.Rows()-1, g.Cols()-1)
	if *goalID != "" {
		if goal, err = grid.ParseID(*goalID); err != nil {
			return fmt.Errorf("parsing -goal: %w", err)
		}
	}

	var opts []search.Option
	if *snapshots {
		opts = append(opts, search.WithFrontierSnapshots())
	}
	res := algo(g, start, goal, opts...)

	fmt.Printf("algorithm:      %s\n", *algoName)
	fmt.Printf("grid:           %d×%d, start %v, goal %v\n", g.Rows(), g.Cols(), start, goal)
	fmt.Printf("found:          %v\n", res.Found)
	fmt.Printf("path length:    %d\n", res.PathLength)
	fmt.Printf("total cost:     %d\n", res.TotalCost)
	fmt.Printf("nodes expanded: %d\n", res.NodesExpanded)
	fmt.Printf("frontier peak:  %d\n", res.FrontierPeak)
	fmt.Printf("elapsed:        %v\n", res.Duration)
	if *snapshots {
		fmt.Printf("snapshots:      %d\n", len(res.FrontierSnapshots))
	}

	if *outPath == "" {
		return nil
	}
	r := render.New(g,
		render.WithCellSize(*cellSize),
		render.WithResult(res),
		render.WithEndpoints(start, goal),
	)
	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, r.RGBA()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	fmt.Printf("wrote %s\n", *outPath)

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pathimage:", err)
		os.Exit(1)
	}
}
