package grid

import "fmt"

// Cell is one grid position. Its coordinate never changes after creation;
// only the visited flag is mutable.
type Cell struct {
	x, y    int
	terrain Terrain
	visited bool
}

// NewCell creates an unvisited cell at column x, row y.
// Returns ErrOutOfBounds for negative coordinates and ErrTerrain for an
// unknown tag.
func NewCell(x, y int, t Terrain) (*Cell, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: negative coordinate (%d, %d)", ErrOutOfBounds, x, y)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrTerrain, uint8(t))
	}
	return &Cell{x: x, y: y, terrain: t}, nil
}

// X returns the column.
func (c *Cell) X() int { return c.x }

// Y returns the row.
func (c *Cell) Y() int { return c.y }

// Coordinate returns the cell position.
func (c *Cell) Coordinate() Coordinate {
	return Coordinate{X: c.x, Y: c.y}
}

// Terrain returns the terrain tag.
func (c *Cell) Terrain() Terrain { return c.terrain }

// Visited reports whether MarkVisited has been called since creation or
// the last Grid.ResetVisited.
func (c *Cell) Visited() bool { return c.visited }

// MarkVisited sets the visited flag. Calling it twice is harmless.
func (c *Cell) MarkVisited() { c.visited = true }

// Equal compares coordinates and terrain; the visited flag is ignored.
// Two nil cells are equal.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.x == other.x && c.y == other.y && c.terrain == other.terrain
}

// String formats the cell as "[(x, y): c]".
func (c *Cell) String() string {
	if c == nil {
		return "[nil]"
	}
	return fmt.Sprintf("[(%d, %d): %c]", c.x, c.y, c.terrain.Rune())
}
