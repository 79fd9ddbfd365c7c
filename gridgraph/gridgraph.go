package gridgraph

import "math"

// New returns a Grid of rows×cols cells.
// Returns ErrNegativeSize if either dimension is negative and ErrTooLarge if
// rows*cols overflows an int. A zero dimension yields an empty grid.
// Complexity: O(1).
func New(rows, cols int) (Grid, error) {
	if rows < 0 || cols < 0 {
		return Grid{}, ErrNegativeSize
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return Grid{}, ErrTooLarge
	}

	return Grid{Rows: rows, Cols: cols}, nil
}

// Size returns the number of cells, Rows*Cols.
func (g Grid) Size() int {
	return g.Rows * g.Cols
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Contains reports whether idx is a valid row-major index.
func (g Grid) Contains(idx int) bool {
	return idx >= 0 && idx < g.Size()
}

// Index maps (row,col) to a row-major index: row*Cols + col.
// The caller is responsible for bounds; see InBounds.
// Complexity: O(1).
func (g Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// OnBoundary reports whether face d of cell idx lies on the outer edge of
// the grid: row 0 for North, the last column for East, the last row for
// South and column 0 for West.
func (g Grid) OnBoundary(idx int, d Direction) bool {
	row, col := g.Coordinate(idx)
	switch d {
	case North:
		return row == 0
	case East:
		return col+1 == g.Cols
	case South:
		return row+1 == g.Rows
	case West:
		return col == 0
	}
	return false
}

// Step returns the index of the cell across face d of cell idx
// (North idx-Cols, East idx+1, South idx+Cols, West idx-1).
// The boolean is false when idx is outside the grid or the step would leave it.
// Complexity: O(1).
func (g Grid) Step(idx int, d Direction) (int, bool) {
	if !g.Contains(idx) || g.OnBoundary(idx, d) {
		return 0, false
	}
	switch d {
	case North:
		return idx - g.Cols, true
	case East:
		return idx + 1, true
	case South:
		return idx + g.Cols, true
	case West:
		return idx - 1, true
	}
	return 0, false
}

// DirectionTo returns the face of cell from that touches cell to, if the two
// cells are orthogonally adjacent.
func (g Grid) DirectionTo(from, to int) (Direction, bool) {
	for _, d := range Directions {
		if n, ok := g.Step(from, d); ok && n == to {
			return d, true
		}
	}
	return 0, false
}
