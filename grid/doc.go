// Package grid models a rectangular maze map: a fixed-size 2D array of
// terrain-tagged cells with exactly one designated entry and one designated
// exit.
//
// What:
//
//   - Cell: immutable (x,y) coordinate, a Terrain tag (Open, Barrier, Entry,
//     Exit) and a visited flag.
//   - Grid: row-major flat storage indexed y*cols+x; the entry and exit are
//     indices into that storage, never independent copies.
//   - Neighbor resolution in five directions (Right, Up, Left, Down, Stay)
//     with bounds checking.
//   - Text codec: Deserialize, Encode and Render.
//   - Regions: 4-connected components of passable cells.
//
// Text format:
//
//	5 5
//	+++++
//	+i..+
//	+++.+
//	+o..+
//	+++++
//
// The header holds rows then columns. '+' is a barrier, 'i' the entry, 'o'
// the exit; '.' and any other printable ASCII character are open floor.
//
// Complexity:
//
//   - New, Deserialize, Encode, Render, Equal, Regions: O(rows×cols).
//   - CellAt, Neighbor, Insert, SetEntry, SetExit:    O(1).
//
// Errors:
//
//   - ErrDimension:   empty grid, fewer than two cells, or above MaxDimension.
//   - ErrNilCell:     nil *Cell argument.
//   - ErrOutOfBounds: coordinate outside the grid or negative.
//   - ErrParse:       malformed text source; nothing is returned.
//   - ErrDirection:   unknown Direction.
//   - ErrTerrain:     unknown Terrain.
package grid
