package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Deserialize reads a grid in text form:
//
//	<rows> <cols>
//	<cols terrain characters>   × rows
//
// Entry and exit characters rebind the grid's entry and exit as they are
// read; when a character appears more than once the last occurrence wins.
//
// Any malformed header, missing, short or long row, or control/non-ASCII
// character yields ErrParse. Dimension violations wrap both ErrParse and
// ErrDimension. A source without an entry or without an exit is rejected too.
// No partially built grid is ever returned.
// Complexity: O(rows×cols).
func Deserialize(r io.Reader, opts ...Option) (*Grid, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrParse)
	}
	o := buildOptions(opts)
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrParse, err)
	}
	rows, cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	if err = checkDimensions(rows, cols, o.MaxDimension); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	// rows are buffered first so a header alone cannot force the allocation
	lines := make([]string, 0, min(rows, 64))
	for y := 0; y < rows; y++ {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d of %d: %w", ErrParse, y+1, rows, err)
		}
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrParse, y+1, len(line), cols)
		}
		lines = append(lines, line)
	}

	g := newGrid(rows, cols)
	entry, exit := -1, -1
	for y, line := range lines {
		for x := 0; x < cols; x++ {
			t, err := TerrainFromRune(rune(line[x]))
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
			}
			idx := g.index(x, y)
			g.cells[idx] = Cell{x: x, y: y, terrain: t}
			switch t {
			case Entry:
				entry = idx
			case Exit:
				exit = idx
			}
		}
	}
	if entry < 0 {
		return nil, fmt.Errorf("%w: no entry cell %q", ErrParse, EntryChar)
	}
	if exit < 0 {
		return nil, fmt.Errorf("%w: no exit cell %q", ErrParse, ExitChar)
	}
	g.entry, g.exit = entry, exit

	return g, nil
}

// readLine returns the next line without its terminator. A final line
// without a trailing newline is accepted; reading past the end returns
// io.ErrUnexpectedEOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func parseHeader(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q, want \"<rows> <cols>\"", ErrParse, line)
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: rows: %w", ErrParse, err)
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: cols: %w", ErrParse, err)
	}
	return rows, cols, nil
}

// Render writes every cell's terrain character in row-major order with no
// separators and returns the number of characters written.
func (g *Grid) Render(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for i := range g.cells {
		if err := bw.WriteByte(byte(g.cells[i].terrain.Rune())); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Encode writes g in the form Deserialize reads: a "<rows> <cols>" header
// followed by one newline-terminated line per row.
func (g *Grid) Encode(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.rows + 8)
	sb.WriteString(strconv.Itoa(g.rows))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.cols))
	sb.WriteByte('\n')
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			sb.WriteByte(byte(g.cells[g.index(x, y)].terrain.Rune()))
		}
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// String returns the encoded form of g.
func (g *Grid) String() string {
	var sb strings.Builder
	_, _ = g.Encode(&sb)
	return sb.String()
}
