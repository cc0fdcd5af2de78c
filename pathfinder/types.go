// Package pathfinder defines options, sentinel errors, and the result type
// for breadth-first search over a grid.Grid.
package pathfinder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors for pathfinder execution.
var (
	// ErrInit is returned when the traversal queue cannot be seeded or
	// operated, e.g. for a nil grid.
	ErrInit = errors.New("pathfinder: traversal initialization failed")

	// ErrMapCorrupt is returned when neighbor resolution walks off the grid
	// under the strict perimeter policy: the map lacks its barrier border.
	ErrMapCorrupt = errors.New("pathfinder: map corrupt")

	// ErrUnreachable is returned when the queue empties before the exit is
	// dequeued.
	ErrUnreachable = errors.New("pathfinder: exit unreachable")

	// ErrStepLimit is returned when WithMaxSteps is exhausted.
	ErrStepLimit = errors.New("pathfinder: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// Option configures Find via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation; checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called for every push, duplicates included.
	OnEnqueue func(c *grid.Cell, depth int)

	// OnVisit is called once per visited cell, after it is marked and
	// traced. A non-nil error aborts the search.
	OnVisit func(c *grid.Cell, depth int) error

	// MaxSteps, if > 0, bounds the number of dequeues.
	MaxSteps int

	// SkipOutOfBounds treats a neighbor outside the grid as absent instead
	// of failing with ErrMapCorrupt.
	SkipOutOfBounds bool

	// MarkCells also sets each visited Cell's own flag, and honors flags
	// already set. The grid then needs ResetVisited between runs.
	MarkCells bool

	// Logger receives debug records for run start and end.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with a background context, no step limit,
// the strict perimeter policy, run-scoped visited state, no-op hooks and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(*grid.Cell, int) {},
		OnVisit:   func(*grid.Cell, int) error { return nil },
		Logger:    zap.NewNop(),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run on every push.
func WithOnEnqueue(fn func(c *grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on every visit; returning an error
// stops the search.
func WithOnVisit(fn func(c *grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps bounds the number of dequeues.
//
//	n > 0: at most n dequeues, then ErrStepLimit
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithSkipOutOfBounds relaxes the perimeter policy: directions leading off
// the grid are skipped.
func WithSkipOutOfBounds() Option {
	return func(o *Options) { o.SkipOutOfBounds = true }
}

// WithCellMarking makes the search mark the grid's cells as visited.
func WithCellMarking() Option {
	return func(o *Options) { o.MarkCells = true }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - Found and Exit: whether the exit was dequeued, and the grid's exit cell.
//   - Order: visited coordinates in visit sequence.
//   - Pushes, Steps, Discarded: queue traffic. Steps counts every dequeue,
//     Discarded the dequeues of already-visited cells.
type Result struct {
	Found     bool
	Exit      *grid.Cell
	Order     []grid.Coordinate
	Pushes    int
	Steps     int
	Discarded int

	g         *grid.Grid
	visited   []bool
	depth     []int
	parent    []int
	remaining int
}

// QueueLen returns how many entries were still queued when the search ended.
func (r *Result) QueueLen() int { return r.remaining }

// Visited reports whether the cell at c was visited in this run.
func (r *Result) Visited(c grid.Coordinate) bool {
	idx := r.g.Index(c)
	return idx >= 0 && r.visited[idx]
}

// Depth returns the hop distance from the entry at which c was first
// discovered. ok is false when c was never queued.
func (r *Result) Depth(c grid.Coordinate) (depth int, ok bool) {
	idx := r.g.Index(c)
	if idx < 0 || r.depth[idx] < 0 {
		return 0, false
	}
	return r.depth[idx], true
}

// PathTo reconstructs the path from the entry to dest along first-discovery
// parent links. Returns an error if dest was never queued.
func (r *Result) PathTo(dest grid.Coordinate) ([]grid.Coordinate, error) {
	if _, ok := r.Depth(dest); !ok {
		return nil, fmt.Errorf("pathfinder: no path to %v", dest)
	}
	// build reversed path
	var path []grid.Coordinate
	for cur := r.g.Index(dest); cur >= 0; cur = r.parent[cur] {
		path = append(path, r.g.Coordinate(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Path returns the entry-to-exit path, or an error when the exit was not found.
func (r *Result) Path() ([]grid.Coordinate, error) {
	if !r.Found {
		return nil, ErrUnreachable
	}
	return r.PathTo(r.Exit.Coordinate())
}
