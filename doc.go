// Package lvlmaze finds the way out of rectangular text mazes.
//
// A maze is a grid of cells, each one open floor, a barrier, the single
// entry or the single exit. The search starts at the entry and expands
// breadth-first, so the first time the exit is reached it is reached by a
// shortest route.
//
// Packages:
//
//	grid/         Cell, Grid, terrain alphabet, text codec, passable regions
//	queue/        generic FIFO used as the search frontier
//	pathfinder/   breadth-first search with hooks, limits and path recovery
//	cmd/lvlmaze   command-line front end: solve, render, inspect
//
// Text format:
//
//	4 5        rows, then columns
//	+++++      '+' barrier
//	+i..+      'i' entry, '.' open
//	+..o+      'o' exit
//	+++++
//
// Quick start:
//
//	g, err := grid.Deserialize(f)
//	res, err := pathfinder.Find(g, os.Stdout)
//	path, err := res.Path()
//
// See examples/ for a level built in code.
package lvlmaze
