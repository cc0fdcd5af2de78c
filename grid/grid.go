package grid

import "fmt"

// Grid is a fixed-size 2D container of cells. Dimensions never change after
// construction. A Grid is not safe for concurrent mutation.
type Grid struct {
	rows, cols int
	cells      []Cell
	entry      int
	exit       int
}

// New builds a rows×cols grid filled with the configured terrain
// (Barrier by default), then binds the entry to (0,0) and the exit to (1,0),
// or to (0,1) when the grid has a single column. Both default cells are
// re-tagged Entry and Exit.
//
// Returns ErrDimension if either dimension is < 1 or above the maximum, or if
// the grid has fewer than two cells.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	o := buildOptions(opts)
	if err := checkDimensions(rows, cols, o.MaxDimension); err != nil {
		return nil, err
	}
	g := newGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[g.index(x, y)] = Cell{x: x, y: y, terrain: o.Fill}
		}
	}

	g.entry = g.index(0, 0)
	if cols > 1 {
		g.exit = g.index(1, 0)
	} else {
		g.exit = g.index(0, 1)
	}
	g.cells[g.entry].terrain = Entry
	g.cells[g.exit].terrain = Exit

	return g, nil
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func checkDimensions(rows, cols, limit int) error {
	switch {
	case rows < 1 || cols < 1:
		return fmt.Errorf("%w: %d×%d is empty", ErrDimension, rows, cols)
	case rows > limit || cols > limit:
		return fmt.Errorf("%w: %d×%d exceeds maximum %d", ErrDimension, rows, cols, limit)
	case rows*cols < 2:
		return fmt.Errorf("%w: %d×%d cannot hold distinct entry and exit", ErrDimension, rows, cols)
	}
	return nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// index maps (x,y) to its row-major slot.
func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// Index returns the row-major index of c, or -1 when c is out of bounds.
func (g *Grid) Index(c Coordinate) int {
	if !g.InBounds(c.X, c.Y) {
		return -1
	}
	return g.index(c.X, c.Y)
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.cols, Y: idx / g.cols}
}

// Entry returns the cell the traversal starts from.
func (g *Grid) Entry() *Cell { return &g.cells[g.entry] }

// Exit returns the goal cell.
func (g *Grid) Exit() *Cell { return &g.cells[g.exit] }

// CellAt returns the cell at c. The pointer stays owned by the grid and is
// valid until the position is overwritten by Insert.
// Returns ErrOutOfBounds when c lies outside the grid.
func (g *Grid) CellAt(c Coordinate) (*Cell, error) {
	if !g.InBounds(c.X, c.Y) {
		return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return &g.cells[g.index(c.X, c.Y)], nil
}

// Neighbor resolves the cell adjacent to c in direction d. Stay returns the
// grid's own cell at c's position.
//
// ErrOutOfBounds at the perimeter means "no such neighbor"; callers decide
// whether that is fatal.
func (g *Grid) Neighbor(c *Cell, d Direction) (*Cell, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrDirection, int(d))
	}
	n, err := g.CellAt(c.Coordinate().Add(d))
	if err != nil {
		return nil, fmt.Errorf("%v neighbor of %v: %w", d, c.Coordinate(), err)
	}
	return n, nil
}

// Insert copies c into the slot at c's own coordinates, discarding the cell
// that was there. The stored copy starts unvisited. The entry and exit
// handles follow the slot, not the old cell.
// Returns ErrNilCell or ErrOutOfBounds.
func (g *Grid) Insert(c *Cell) error {
	idx, err := g.slot(c)
	if err != nil {
		return err
	}
	g.cells[idx] = *c
	g.cells[idx].visited = false
	return nil
}

// SetEntry rebinds the entry to the grid's cell at c's coordinates.
// It does not check that entry and exit stay distinct.
func (g *Grid) SetEntry(c *Cell) error {
	idx, err := g.slot(c)
	if err != nil {
		return err
	}
	g.entry = idx
	return nil
}

// SetExit rebinds the exit to the grid's cell at c's coordinates.
// It does not check that entry and exit stay distinct.
func (g *Grid) SetExit(c *Cell) error {
	idx, err := g.slot(c)
	if err != nil {
		return err
	}
	g.exit = idx
	return nil
}

func (g *Grid) slot(c *Cell) (int, error) {
	if c == nil {
		return 0, ErrNilCell
	}
	if !g.InBounds(c.x, c.y) {
		return 0, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c.Coordinate(), g.rows, g.cols)
	}
	return g.index(c.x, c.y), nil
}

// ResetVisited clears the visited flag of every cell.
func (g *Grid) ResetVisited() {
	for i := range g.cells {
		g.cells[i].visited = false
	}
}

// Equal reports whether g and other have the same dimensions, equal entry
// and exit cells, and pairwise equal cells. Visited flags are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	if !g.Entry().Equal(other.Entry()) || !g.Exit().Equal(other.Exit()) {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(&other.cells[i]) {
			return false
		}
	}
	return true
}
