// Package pathfinder runs breadth-first search over a grid.Grid from its
// entry to its exit, returning the visit order, hop depths and parent links.
package pathfinder

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/queue"
)

// step pairs a queued cell with the depth at which it was pushed.
type step struct {
	cell  *grid.Cell
	depth int
}

// walker encapsulates mutable search state for a single run.
type walker struct {
	g     *grid.Grid
	opts  Options
	trace io.Writer
	queue *queue.Queue[step]
	exit  grid.Coordinate
	res   *Result
}

// Find searches g breadth-first from its entry until the exit is dequeued or
// the queue empties, writing one line per visited cell to trace (nil
// discards the trace).
//
// Visited state is marked at dequeue time, so a cell may sit in the queue
// several times but is processed once, and the first dequeue of any cell is
// at its minimal hop distance from the entry.
//
// The returned Result is non-nil whenever err is not ErrOptionViolation or
// ErrInit. Errors:
//   - ErrInit for a nil grid
//   - ErrUnreachable when the queue empties first
//   - ErrMapCorrupt when a neighbor lies off the grid (strict policy)
//   - ErrStepLimit, ctx.Err(), or a wrapped OnVisit/trace error
func Find(g *grid.Grid, trace io.Writer, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInit)
	}
	if trace == nil {
		trace = io.Discard
	}

	n := g.Len()
	w := &walker{
		g:     g,
		opts:  o,
		trace: trace,
		queue: queue.New[step](),
		exit:  g.Exit().Coordinate(),
		res: &Result{
			Order:   make([]grid.Coordinate, 0, n),
			g:       g,
			visited: make([]bool, n),
			depth:   make([]int, n),
			parent:  make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}

	log := o.Logger.With(
		zap.Stringer("entry", g.Entry().Coordinate()),
		zap.Stringer("exit", w.exit),
	)
	log.Debug("search started", zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()))

	w.push(g.Entry(), 0, -1)
	err := w.loop()
	w.res.remaining = w.queue.Len()

	log.Debug("search finished",
		zap.Bool("found", w.res.Found),
		zap.Int("visited", len(w.res.Order)),
		zap.Int("pushes", w.res.Pushes),
		zap.Int("discarded", w.res.Discarded),
		zap.Error(err),
	)
	return w.res, err
}

// loop drains the queue until the exit is found, the queue empties, or an
// error aborts the run.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d dequeues", ErrStepLimit, w.res.Steps)
		}

		s, err := w.queue.Pop()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInit, err)
		}
		w.res.Steps++

		// duplicates pushed before the first visit are dropped here
		if w.isVisited(s.cell) {
			w.res.Discarded++
			continue
		}
		if err = w.visit(s); err != nil {
			return err
		}
		if s.cell.Coordinate() == w.exit {
			w.res.Found = true
			w.res.Exit = w.g.Exit()
			return nil
		}
		if err = w.expand(s); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %d cells visited", ErrUnreachable, len(w.res.Order))
}

func (w *walker) isVisited(c *grid.Cell) bool {
	if w.opts.MarkCells && c.Visited() {
		return true
	}
	return w.res.visited[w.g.Index(c.Coordinate())]
}

// visit marks the cell, records it in Order, writes the trace line and runs
// OnVisit.
func (w *walker) visit(s step) error {
	w.res.visited[w.g.Index(s.cell.Coordinate())] = true
	if w.opts.MarkCells {
		s.cell.MarkVisited()
	}
	w.res.Order = append(w.res.Order, s.cell.Coordinate())

	if _, err := fmt.Fprintln(w.trace, s.cell); err != nil {
		return fmt.Errorf("pathfinder: trace write at %v: %w", s.cell.Coordinate(), err)
	}
	if err := w.opts.OnVisit(s.cell, s.depth); err != nil {
		return fmt.Errorf("pathfinder: OnVisit error at %v: %w", s.cell.Coordinate(), err)
	}
	return nil
}

// expand pushes every unvisited neighbor that is neither a barrier nor an
// entry, in Right, Up, Left, Down order.
func (w *walker) expand(s step) error {
	from := w.g.Index(s.cell.Coordinate())
	for _, d := range grid.Cardinal {
		n, err := w.g.Neighbor(s.cell, d)
		if err != nil {
			if w.opts.SkipOutOfBounds && errors.Is(err, grid.ErrOutOfBounds) {
				continue
			}
			return fmt.Errorf("%w: %w", ErrMapCorrupt, err)
		}
		if w.isVisited(n) {
			continue
		}
		if t := n.Terrain(); t == grid.Barrier || t == grid.Entry {
			continue
		}
		w.push(n, s.depth+1, from)
	}
	return nil
}

// push enqueues c, recording depth and parent on its first discovery.
func (w *walker) push(c *grid.Cell, depth, parent int) {
	idx := w.g.Index(c.Coordinate())
	if w.res.depth[idx] < 0 {
		w.res.depth[idx] = depth
		w.res.parent[idx] = parent
	}
	w.res.Pushes++
	w.opts.OnEnqueue(c, depth)
	w.queue.Push(step{cell: c, depth: depth})
}
