// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvmaze.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNegativeSize indicates a negative row or column count.
	ErrNegativeSize = errors.New("gridgraph: dimensions must not be negative")
	// ErrTooLarge indicates Rows*Cols overflows an int.
	ErrTooLarge = errors.New("gridgraph: grid size overflows int")
	// ErrIndexOutOfRange indicates a cell index or coordinate outside the grid.
	ErrIndexOutOfRange = errors.New("gridgraph: index out of range")
)

// Direction names one face of a cell.
type Direction uint8

const (
	// North is the face toward row-1.
	North Direction = iota
	// East is the face toward col+1.
	East
	// South is the face toward row+1.
	South
	// West is the face toward col-1.
	West
)

// Directions lists every face in scan order. Neighbour lists built from a
// WallCode follow this order, which fixes BFS tie-breaking downstream.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"North", "East", "South", "West"}

// String returns the face name, e.g. "North".
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Bit returns the wall bit for d: North=0x1, East=0x2, South=0x4, West=0x8.
func (d Direction) Bit() WallCode {
	return WallCode(1) << d
}

// Opposite returns the face a neighbour sees when looking back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// WallCode is the 4-bit wall mask of one cell. A set bit means a wall is
// present on that face; a clear bit means the face is open.
type WallCode uint8

const (
	// MaxWallCode is the largest valid code (all four walls present).
	MaxWallCode WallCode = 15
	// Closed is a cell walled on every face.
	Closed = MaxWallCode
)

// Valid reports whether c fits in four bits.
func (c WallCode) Valid() bool {
	return c <= MaxWallCode
}

// Walled reports whether the face d carries a wall.
func (c WallCode) Walled(d Direction) bool {
	return c&d.Bit() != 0
}

// Open reports whether the face d is an open passage.
func (c WallCode) Open(d Direction) bool {
	return !c.Walled(d)
}

// With returns c with a wall added on face d.
func (c WallCode) With(d Direction) WallCode {
	return c | d.Bit()
}

// Without returns c with the wall on face d removed.
func (c WallCode) Without(d Direction) WallCode {
	return c &^ d.Bit()
}

// Grid is the shape of a rectangular, row-major grid. The zero value is an
// empty grid with no cells. Grid is immutable and safe to copy.
type Grid struct {
	Rows, Cols int
}
