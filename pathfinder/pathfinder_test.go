package pathfinder_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/pathfinder"
)

// parse builds a grid from rows joined by newlines; the header is derived.
func parse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", len(rows), len(rows[0]))
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	g, err := grid.Deserialize(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return g
}

// checkAccounting verifies the queue bookkeeping identities of a result.
func checkAccounting(t *testing.T, res *pathfinder.Result) {
	t.Helper()
	assert.Equal(t, res.Pushes, res.Steps+res.QueueLen(), "pushes = dequeues + leftover")
	assert.Equal(t, res.Steps, len(res.Order)+res.Discarded, "dequeues = visits + discards")
	seen := make(map[grid.Coordinate]bool, len(res.Order))
	for _, c := range res.Order {
		if seen[c] {
			t.Fatalf("cell %v visited twice", c)
		}
		seen[c] = true
	}
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

// TestFind_Errors verifies that invalid inputs and options are rejected.
func TestFind_Errors(t *testing.T) {
	if _, err := pathfinder.Find(nil, nil); !errors.Is(err, pathfinder.ErrInit) {
		t.Errorf("nil grid: want ErrInit, got %v", err)
	}
	g := parse(t, "+++", "+i+", "+o+", "+++")
	if _, err := pathfinder.Find(g, nil, pathfinder.WithMaxSteps(-1)); !errors.Is(err, pathfinder.ErrOptionViolation) {
		t.Errorf("negative steps: want ErrOptionViolation, got %v", err)
	}
}

//----------------------------------------------------------------------------//
// Reachability
//----------------------------------------------------------------------------//

// TestFind_StraightCorridor expects one visit per corridor cell.
func TestFind_StraightCorridor(t *testing.T) {
	g := parse(t,
		"+++++++",
		"+i...o+",
		"+++++++",
	)
	res, err := pathfinder.Find(g, nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Same(t, g.Exit(), res.Exit)
	assert.Len(t, res.Order, 5)
	assert.Equal(t, 0, res.Discarded)
	checkAccounting(t, res)

	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, res.Order, path)
}

// TestFind_CorridorAtEdge needs the lenient policy: the corridor touches
// the left and right edges of a 3×3 grid.
func TestFind_CorridorAtEdge(t *testing.T) {
	g := parse(t, "+++", "i.o", "+++")

	_, err := pathfinder.Find(g, nil)
	assert.ErrorIs(t, err, pathfinder.ErrMapCorrupt)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	res, err := pathfinder.Find(g, nil, pathfinder.WithSkipOutOfBounds())
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
}

// TestFind_WalledEntry stops right after the first dequeue.
func TestFind_WalledEntry(t *testing.T) {
	g := parse(t, "+++", "+i+", "++o")

	res, err := pathfinder.Find(g, nil)
	require.ErrorIs(t, err, pathfinder.ErrUnreachable)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Nil(t, res.Exit)
	assert.Equal(t, []grid.Coordinate{{X: 1, Y: 1}}, res.Order)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, 0, res.QueueLen())

	_, err = res.Path()
	assert.ErrorIs(t, err, pathfinder.ErrUnreachable)
}

// TestFind_AgreesWithConnected runs the search on a map where an overridden
// 'i' sits between the bound entry and the exit, and checks the region
// diagnostic predicts the same outcome.
func TestFind_AgreesWithConnected(t *testing.T) {
	g := parse(t, "+++++++", "+o.i.i+", "+++++++")
	require.False(t, g.Connected())

	res, err := pathfinder.Find(g, nil)
	require.ErrorIs(t, err, pathfinder.ErrUnreachable)
	assert.Equal(t, []grid.Coordinate{{X: 5, Y: 1}, {X: 4, Y: 1}}, res.Order)

	open := parse(t, "+++++++", "+o...i+", "+++++++")
	require.True(t, open.Connected())
	_, err = pathfinder.Find(open, nil)
	require.NoError(t, err)
}

// TestFind_EnclosedExit explores the whole entry room, then gives up with
// an empty queue.
func TestFind_EnclosedExit(t *testing.T) {
	g := parse(t,
		"+++++++",
		"+i.++++",
		"+..+o++",
		"+..++++",
		"+++++++",
	)
	res, err := pathfinder.Find(g, nil)
	require.ErrorIs(t, err, pathfinder.ErrUnreachable)
	assert.Len(t, res.Order, 6)
	assert.Equal(t, 0, res.QueueLen())
	assert.False(t, res.Visited(grid.Coordinate{X: 4, Y: 2}))
	assert.False(t, g.Connected())
	checkAccounting(t, res)
}

// TestFind_ShortestDepths checks the BFS layering on an open room: each
// cell's depth is its Manhattan distance from the entry, Order is sorted by
// depth, and nothing deeper than the exit is visited.
func TestFind_ShortestDepths(t *testing.T) {
	g := parse(t,
		"+++++++",
		"+i....+",
		"+.....+",
		"+.....+",
		"+.....+",
		"+....o+",
		"+++++++",
	)
	res, err := pathfinder.Find(g, nil)
	require.NoError(t, err)
	checkAccounting(t, res)
	assert.Positive(t, res.Discarded, "open rooms produce duplicate pushes")

	entry := g.Entry().Coordinate()
	exitDepth, ok := res.Depth(g.Exit().Coordinate())
	require.True(t, ok)
	assert.Equal(t, 8, exitDepth)

	prev := 0
	for _, c := range res.Order {
		d, ok := res.Depth(c)
		require.True(t, ok)
		manhattan := abs(c.X-entry.X) + abs(c.Y-entry.Y)
		assert.Equal(t, manhattan, d, "depth of %v", c)
		assert.GreaterOrEqual(t, d, prev, "Order must be non-decreasing in depth")
		assert.LessOrEqual(t, d, exitDepth)
		prev = d
	}

	path, err := res.Path()
	require.NoError(t, err)
	assert.Len(t, path, exitDepth+1)
	for i := 1; i < len(path); i++ {
		step := abs(path[i].X-path[i-1].X) + abs(path[i].Y-path[i-1].Y)
		assert.Equal(t, 1, step, "path must move one cell at a time")
	}
}

// TestFind_ExploresRightUpLeftDown pins the neighbor order.
func TestFind_ExploresRightUpLeftDown(t *testing.T) {
	g := parse(t,
		"+++++",
		"+.+.+",
		"+.i.+",
		"+.+.+",
		"++o++",
	)
	// the exit sits on the border below a barrier: unreachable
	var pushed []grid.Coordinate
	res, err := pathfinder.Find(g, nil,
		pathfinder.WithOnEnqueue(func(c *grid.Cell, _ int) {
			pushed = append(pushed, c.Coordinate())
		}),
	)
	require.ErrorIs(t, err, pathfinder.ErrUnreachable)
	require.GreaterOrEqual(t, len(pushed), 3)
	assert.Equal(t, []grid.Coordinate{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 1, Y: 2}}, pushed[:3])
	assert.Equal(t, res.Pushes, len(pushed))
}

// TestFind_EntryNeverRequeued skips cells tagged Entry even when unvisited.
func TestFind_EntryNeverRequeued(t *testing.T) {
	g := parse(t,
		"+++++",
		"+i.i+",
		"+++o+",
		"+++++",
	)
	// last 'i' wins, so (3,1) is the entry and (1,1) is a stray entry tag
	res, err := pathfinder.Find(g, nil)
	require.NoError(t, err)
	assert.False(t, res.Visited(grid.Coordinate{X: 1, Y: 1}))
	assert.Equal(t, []grid.Coordinate{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}}, res.Order)
}

//----------------------------------------------------------------------------//
// Visited state
//----------------------------------------------------------------------------//

// TestFind_RunScopedVisited leaves the grid untouched and repeatable.
func TestFind_RunScopedVisited(t *testing.T) {
	g := parse(t, "+++++", "+i..+", "+..o+", "+++++")

	first, err := pathfinder.Find(g, nil)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		c, _ := g.CellAt(g.Coordinate(i))
		require.False(t, c.Visited(), "cell %v marked without WithCellMarking", c)
	}
	second, err := pathfinder.Find(g, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Order, second.Order)
}

// TestFind_CellMarking marks cells in place; a second run without reset sees
// the entry as visited and finds nothing.
func TestFind_CellMarking(t *testing.T) {
	g := parse(t, "+++++", "+i..+", "+..o+", "+++++")

	res, err := pathfinder.Find(g, nil, pathfinder.WithCellMarking())
	require.NoError(t, err)
	for _, c := range res.Order {
		cell, _ := g.CellAt(c)
		assert.True(t, cell.Visited(), "cell %v", c)
	}

	_, err = pathfinder.Find(g, nil, pathfinder.WithCellMarking())
	assert.ErrorIs(t, err, pathfinder.ErrUnreachable)

	g.ResetVisited()
	again, err := pathfinder.Find(g, nil, pathfinder.WithCellMarking())
	require.NoError(t, err)
	assert.Equal(t, res.Order, again.Order)

	// a cell marked before Insert does not block a marking run
	corridor := parse(t, "+++++", "+i.o+", "+++++")
	floor, err := grid.NewCell(2, 1, grid.Open)
	require.NoError(t, err)
	floor.MarkVisited()
	require.NoError(t, corridor.Insert(floor))
	_, err = pathfinder.Find(corridor, nil, pathfinder.WithCellMarking())
	require.NoError(t, err)
}

// TestFind_Concurrent runs several searches over one grid at once.
func TestFind_Concurrent(t *testing.T) {
	g := parse(t,
		"+++++++",
		"+i..+.+",
		"+.+...+",
		"+...+o+",
		"+++++++",
	)
	want, err := pathfinder.Find(g, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	orders := make([][]grid.Coordinate, 8)
	for i := range orders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := pathfinder.Find(g, nil)
			if err == nil {
				orders[i] = res.Order
			}
		}(i)
	}
	wg.Wait()
	for i, o := range orders {
		assert.Equal(t, want.Order, o, "goroutine %d", i)
	}
}

//----------------------------------------------------------------------------//
// Limits, hooks, trace, logging
//----------------------------------------------------------------------------//

// TestFind_MaxSteps aborts after the configured number of dequeues.
func TestFind_MaxSteps(t *testing.T) {
	g := parse(t, "+++++++", "+i...o+", "+++++++")

	res, err := pathfinder.Find(g, nil, pathfinder.WithMaxSteps(2))
	require.ErrorIs(t, err, pathfinder.ErrStepLimit)
	assert.Equal(t, 2, res.Steps)
	assert.False(t, res.Found)

	_, err = pathfinder.Find(g, nil, pathfinder.WithMaxSteps(5))
	assert.NoError(t, err, "five dequeues reach the exit")
}

// TestFind_ContextCancelled returns the context error before any dequeue.
func TestFind_ContextCancelled(t *testing.T) {
	g := parse(t, "+++++", "+i.o+", "+++++")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := pathfinder.Find(g, nil, pathfinder.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
	assert.Equal(t, 1, res.QueueLen())
}

// TestFind_OnVisitAbort wraps the hook error.
func TestFind_OnVisitAbort(t *testing.T) {
	g := parse(t, "+++++++", "+i...o+", "+++++++")
	stop := errors.New("stop here")

	res, err := pathfinder.Find(g, nil, pathfinder.WithOnVisit(func(c *grid.Cell, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Len(t, res.Order, 3)
}

// TestFind_Trace writes one line per visited cell.
func TestFind_Trace(t *testing.T) {
	g := parse(t, "+++++", "+i.o+", "+++++")
	var buf bytes.Buffer

	_, err := pathfinder.Find(g, &buf)
	require.NoError(t, err)
	assert.Equal(t, "[(1, 1): i]\n[(2, 1): .]\n[(3, 1): o]\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestFind_TraceError aborts when the trace sink fails.
func TestFind_TraceError(t *testing.T) {
	g := parse(t, "+++++", "+i.o+", "+++++")
	_, err := pathfinder.Find(g, failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// TestFind_Logger emits start and finish records at debug level.
func TestFind_Logger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := parse(t, "+++++", "+i.o+", "+++++")

	_, err := pathfinder.Find(g, nil, pathfinder.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "search started", entries[0].Message)
	assert.Equal(t, "search finished", entries[1].Message)
	assert.Equal(t, true, entries[1].ContextMap()["found"])
	assert.EqualValues(t, 3, entries[1].ContextMap()["visited"])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
