package grid_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ExampleNew builds a 3×4 open room, moves the exit to the far corner and
// prints the encoded grid.
func ExampleNew() {
	g, err := grid.New(3, 4, grid.WithFill(grid.Open))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// demote the default exit, then place a new one
	_ = g.Insert(mustCell(1, 0, grid.Open))
	exit := mustCell(3, 2, grid.Exit)
	_ = g.Insert(exit)
	_ = g.SetExit(exit)

	fmt.Print(g)
	// Output:
	// 3 4
	// i...
	// ....
	// ...o
}

// ExampleGrid_Neighbor resolves the neighbors of a corner cell; the two
// pointing outside the grid report ErrOutOfBounds.
func ExampleGrid_Neighbor() {
	g, _ := grid.Deserialize(strings.NewReader("2 2\nio\n..\n"))
	for _, d := range grid.Cardinal {
		n, err := g.Neighbor(g.Entry(), d)
		if err != nil {
			fmt.Printf("%-5s none\n", d)
			continue
		}
		fmt.Printf("%-5s %v\n", d, n)
	}
	// Output:
	// right [(1, 0): o]
	// up    none
	// left  none
	// down  [(0, 1): .]
}

// ExampleGrid_Render writes the terrain row-major without separators.
func ExampleGrid_Render() {
	g, _ := grid.Deserialize(strings.NewReader("2 3\ni+.\n.+o\n"))
	n, _ := g.Render(os.Stdout)
	fmt.Println()
	fmt.Println(n, "characters")
	// Output:
	// i+..+o
	// 6 characters
}

func mustCell(x, y int, t grid.Terrain) *grid.Cell {
	c, err := grid.NewCell(x, y, t)
	if err != nil {
		panic(err)
	}
	return c
}
