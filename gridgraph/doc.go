// Package gridgraph describes the geometry of a rectangular grid of cells
// addressed by row-major index, and the four-bit wall codes that decide
// which faces of a cell are open.
//
// What:
//
//   - Grid maps a row-major index n = row*Cols + col to (row, col) and back.
//   - Direction enumerates the four faces North, East, South, West, in that
//     fixed order, each paired with its wall bit (0x1, 0x2, 0x4, 0x8).
//   - WallCode is a 4-bit value per cell: a set bit marks a wall on that face,
//     a clear bit marks an open passage.
//   - Step moves from a cell to its neighbour in a direction, refusing to
//     leave the grid; OnBoundary reports whether a face lies on the outer edge.
//
// Why:
//
//   - Mazes, tile maps and board games all need the same index arithmetic.
//   - Keeping it in one place makes the N→E→S→W order (and therefore every
//     tie-break that depends on it) a single, testable definition.
//
// Complexity:
//
//   - Every Grid method is O(1) time and allocates nothing.
//
// Errors:
//
//   - ErrNegativeSize: a dimension is negative.
//   - ErrTooLarge: Rows*Cols does not fit in an int.
//   - ErrIndexOutOfRange: an index or coordinate lies outside the grid.
package gridgraph
