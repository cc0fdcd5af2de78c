// Package pathfinder finds a route from a grid's entry to its exit using
// breadth-first search over unweighted, axis-aligned adjacency.
//
// What
//
//   - Seeds a FIFO (package queue) with the entry, then repeatedly dequeues a
//     cell, skips it if already visited, otherwise marks it, traces it, and
//     stops if it is the exit. Neighbors are resolved Right, Up, Left, Down;
//     those not yet visited and tagged neither Barrier nor Entry are pushed.
//   - Returns a Result containing:
//   - Found / Exit: outcome and the grid's exit cell
//   - Order: visit sequence
//   - Depth / PathTo / Path: hop distances and first-discovery parent links
//   - Pushes / Steps / Discarded / QueueLen: queue traffic diagnostics
//
// Visited state
//
//	Cells are marked at dequeue time, not at push time. A cell reachable from
//	several frontier cells may be queued more than once, but only its first
//	dequeue is processed, and that dequeue happens at its shortest hop
//	distance from the entry. Later copies are counted in Result.Discarded.
//
//	By default the visited layer belongs to the run, so the grid is left
//	untouched and can be searched again, or by several goroutines at once.
//	WithCellMarking restores in-place marking on the grid's cells; the grid
//	then needs grid.Grid.ResetVisited before the next run and must not be
//	shared.
//
// Perimeter policy
//
//	A well-formed map is enclosed by barriers, so no traversal should ever
//	look past the grid edge. By default a neighbor lookup that leaves the
//	grid aborts the search with ErrMapCorrupt. WithSkipOutOfBounds relaxes
//	this and treats such directions as having no neighbor.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)  (each cell is pushed at most four times)
//   - Memory: O(N)  for the queue and the visited/depth/parent layers
//
// Usage
//
//	res, err := pathfinder.Find(g, os.Stdout,
//	    pathfinder.WithMaxSteps(10_000),
//	    pathfinder.WithLogger(logger),
//	)
//	switch {
//	case err == nil:
//	    path, _ := res.Path()
//	case errors.Is(err, pathfinder.ErrUnreachable):
//	    // res.Order lists everything reachable from the entry
//	}
//
// Errors
//
//   - ErrInit             nil grid, or the queue failed mid-run.
//   - ErrUnreachable      queue emptied before reaching the exit.
//   - ErrMapCorrupt       neighbor off the grid under the strict policy.
//   - ErrStepLimit        WithMaxSteps exhausted.
//   - ErrOptionViolation  invalid Option (e.g. negative MaxSteps).
//   - ctx.Err()           context cancelled.
//   - Wrapped errors from OnVisit or from writing the trace.
package pathfinder
