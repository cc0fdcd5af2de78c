package grid

import "github.com/katalvlaran/lvlmaze/queue"

// Regions finds all 4-connected regions of traversable cells. A cell is
// traversable when it is the bound entry, or when it is neither a Barrier
// nor a stale Entry tag left by a source with several entries; the
// pathfinder never steps onto either.
// Each region is a slice of row-major cell indices in discovery order;
// regions are ordered by their first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.cells))
	frontier := queue.New[int]()
	var regions [][]int

	for i0 := range g.cells {
		if seen[i0] || !g.traversable(i0) {
			continue
		}
		seen[i0] = true
		frontier.Push(i0)
		var region []int

		for !frontier.IsEmpty() {
			u, _ := frontier.Pop()
			region = append(region, u)
			uc := g.Coordinate(u)
			for _, d := range Cardinal {
				vc := uc.Add(d)
				if !g.InBounds(vc.X, vc.Y) {
					continue
				}
				vi := g.index(vc.X, vc.Y)
				if !seen[vi] && g.traversable(vi) {
					seen[vi] = true
					frontier.Push(vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// traversable mirrors the pathfinder's expansion rule.
func (g *Grid) traversable(idx int) bool {
	if idx == g.entry {
		return true
	}
	t := g.cells[idx].terrain
	return t != Barrier && t != Entry
}

// RegionOf returns the position in Regions() of the region containing c,
// or -1 when c is out of bounds or not traversable.
func (g *Grid) RegionOf(c Coordinate) int {
	idx := g.Index(c)
	if idx < 0 {
		return -1
	}
	for r, region := range g.Regions() {
		for _, i := range region {
			if i == idx {
				return r
			}
		}
	}
	return -1
}

// Connected reports whether the entry and exit share a region. Stale entry
// tags block it as they block the pathfinder, but the perimeter policy is
// ignored: a route hugging an unwalled edge still counts.
func (g *Grid) Connected() bool {
	r := g.RegionOf(g.Coordinate(g.entry))
	return r >= 0 && r == g.RegionOf(g.Coordinate(g.exit))
}
