// Package grid defines terrain tags, directions, coordinates, options, and
// sentinel errors for the grid subpackage of github.com/katalvlaran/lvlmaze.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrDimension indicates a requested grid size is empty, too small to
	// hold distinct entry and exit cells, or above the configured maximum.
	ErrDimension = errors.New("grid: invalid dimensions")
	// ErrNilCell indicates a required *Cell argument was nil.
	ErrNilCell = errors.New("grid: cell is nil")
	// ErrOutOfBounds indicates a coordinate outside [0,cols)×[0,rows).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrParse indicates a malformed serialized grid.
	ErrParse = errors.New("grid: malformed grid source")
	// ErrDirection indicates an unknown Direction value.
	ErrDirection = errors.New("grid: unknown direction")
	// ErrTerrain indicates an unknown Terrain value.
	ErrTerrain = errors.New("grid: unknown terrain")
)

// DefaultMaxDimension is the per-axis capacity used when no
// WithMaxDimension option is supplied.
const DefaultMaxDimension = 64

// Terrain tags a cell as open floor, impassable barrier, entry, or exit.
type Terrain uint8

const (
	// Open is walkable floor.
	Open Terrain = iota
	// Barrier is impassable.
	Barrier
	// Entry marks the start cell of a traversal.
	Entry
	// Exit marks the goal cell of a traversal.
	Exit
)

// Characters of the text alphabet. Any other printable ASCII byte is read
// as Open; OpenChar is what Open is written as.
const (
	OpenChar    = '.'
	BarrierChar = '+'
	EntryChar   = 'i'
	ExitChar    = 'o'
)

// Valid reports whether t is one of the four known tags.
func (t Terrain) Valid() bool {
	return t <= Exit
}

// Passable reports whether a traversal may step onto a cell of this terrain.
func (t Terrain) Passable() bool {
	return t != Barrier
}

// Rune returns the single-character text form of t.
func (t Terrain) Rune() rune {
	switch t {
	case Barrier:
		return BarrierChar
	case Entry:
		return EntryChar
	case Exit:
		return ExitChar
	default:
		return OpenChar
	}
}

func (t Terrain) String() string {
	switch t {
	case Open:
		return "open"
	case Barrier:
		return "barrier"
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// TerrainFromRune maps a text character to its terrain. Control characters
// and anything outside printable ASCII are rejected with ErrParse.
func TerrainFromRune(r rune) (Terrain, error) {
	switch {
	case r == BarrierChar:
		return Barrier, nil
	case r == EntryChar:
		return Entry, nil
	case r == ExitChar:
		return Exit, nil
	case r < 0x20 || r > 0x7e:
		return Open, fmt.Errorf("%w: invalid terrain character %q", ErrParse, r)
	default:
		return Open, nil
	}
}

// Coordinate addresses a cell: X is the column, Y the row.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns c shifted by the offset of d.
func (c Coordinate) Add(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Direction selects one of the four axis-aligned neighbors, or Stay.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
	Stay
)

// Cardinal lists the directions explored by a traversal, in order.
var Cardinal = [...]Direction{Right, Up, Left, Down}

// offsets is indexed by Direction and holds (dx, dy).
var offsets = [...][2]int{
	Right: {1, 0},
	Up:    {0, -1},
	Left:  {-1, 0},
	Down:  {0, 1},
	Stay:  {0, 0},
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d >= Right && d <= Stay
}

// Offset returns the column and row deltas of d; unknown directions yield (0,0).
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing back; Stay is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Stay:
		return "stay"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Option configures grid construction and parsing.
type Option func(*Options)

// Options holds tunable parameters for New and Deserialize.
type Options struct {
	// Fill is the terrain New assigns to every cell before binding
	// the default entry and exit.
	Fill Terrain
	// MaxDimension bounds both rows and columns.
	MaxDimension int
}

// DefaultOptions returns Options with Fill=Barrier and
// MaxDimension=DefaultMaxDimension.
func DefaultOptions() Options {
	return Options{
		Fill:         Barrier,
		MaxDimension: DefaultMaxDimension,
	}
}

// WithFill sets the terrain used to populate a new grid.
// Unknown terrains are ignored.
func WithFill(t Terrain) Option {
	return func(o *Options) {
		if t.Valid() {
			o.Fill = t
		}
	}
}

// WithMaxDimension overrides the per-axis capacity. Values < 1 are ignored.
func WithMaxDimension(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxDimension = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
