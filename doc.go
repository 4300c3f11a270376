// Package gridpath is a pure-Go search engine for grid pathfinding
// visualizers: five classic algorithms over a weighted 4-connected
// grid, with a uniform result contract built for animated replay.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library that brings together:
//		• Grid model: Empty / Wall / Weight cells, "x,y" identifiers
//		• Traversals: BFS, DFS
//		• Cost-aware search: Uniform-Cost (Dijkstra), Greedy Best-First, A*
//		• Replay data: exact expansion order + optional frontier snapshots
//		• Metrics: nodes expanded, path cost, frontier/visited peaks, timing
//
// ✨ Why choose gridpath?
//
//   - Deterministic – pinned tie-breaks, identical output on identical input
//   - Pure & synchronous – no goroutines, no shared state between calls
//   - Beginner-friendly – one signature shape across all five algorithms
//   - Extensible – observation hooks and an injectable clock
//
// Everything is organized under three subpackages:
//
//	grid/   — Grid, Point, cell kinds, neighbors, Manhattan distance
//	search/ — the five algorithms and the shared Result contract
//	render/ — diagnostic image rendering of grids and search results
//
// Quick ASCII example:
//
//	    S . . #
//	    . # ~ .
//	    . . . G
//
//	a 3×4 grid with one wall row obstacle and a weighted cell; every
//	algorithm routes S→G, and UCS/A* agree on the minimal cost.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
