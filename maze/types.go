// Package maze defines the sentinel errors, options and diagnostic types
// shared by loading, validation and search.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// NoCell marks an unset start, goal or parent link.
const NoCell = -1

// DefaultMaxCells bounds rows*cols for a single load.
const DefaultMaxCells = 1 << 24

// Sentinel errors for load failures. Every failed load returns a *LoadError
// that unwraps to exactly one of these.
var (
	// ErrOpen is returned when the maze file cannot be opened.
	ErrOpen = errors.New("maze: unable to open file")
	// ErrSize is returned when the row or column count cannot be read.
	ErrSize = errors.New("maze: unable to read size data")
	// ErrTooLarge is returned when rows*cols overflows or exceeds the cell limit.
	ErrTooLarge = errors.New("maze: size exceeds cell limit")
	// ErrWallCode is returned when a walls code cannot be read.
	ErrWallCode = errors.New("maze: unable to read walls code")
	// ErrWallCodeRange is returned for a walls code above 15.
	ErrWallCodeRange = errors.New("maze: walls code out of range")
	// ErrEndpoints is returned when start or goal cannot be read.
	ErrEndpoints = errors.New("maze: unable to read start/goal data")
	// ErrEndpointRange is returned when start or goal is not a cell index.
	ErrEndpointRange = errors.New("maze: bad start/goal data")
)

// ErrCellOutOfRange is returned by accessors given an index outside the maze.
var ErrCellOutOfRange = errors.New("maze: cell index out of range")

// LoadError describes why a load failed: the sentinel naming the failing
// item, the position of the offending walls code (or -1), the input source
// and the underlying cause, if any.
type LoadError struct {
	Source   string
	Position int
	Err      error
	Cause    error
}

// Error formats the failure like "maze: walls code out of range [4] in m.txt".
func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Position >= 0 {
		fmt.Fprintf(&b, " [%d]", e.Position)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " in %s", e.Source)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// AsymmetryError reports that From lists To as a neighbour but To does not
// list From back.
type AsymmetryError struct {
	From, To int
}

func (e *AsymmetryError) Error() string {
	return fmt.Sprintf("maze: neighbor asymmetry between cells %d and %d", e.From, e.To)
}

// Defect is a recoverable inconsistency found while loading: a cell whose
// walls code leaves a boundary face open. The face is treated as walled.
type Defect struct {
	Index int
	Face  gridgraph.Direction
	Code  gridgraph.WallCode
}

// String returns a one-line description of the repair.
func (d Defect) String() string {
	return fmt.Sprintf("walls code [%d] repaired at %s face maze boundary", d.Index, d.Face)
}

// Option configures a Maze at construction.
type Option func(*Maze)

// WithLogger sets the logger used for defects, asymmetries and load
// failures. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(m *Maze) {
		m.log = log
	}
}

// WithMaxCells bounds rows*cols accepted by Load. n <= 0 leaves only the
// int overflow check in place.
func WithMaxCells(n int) Option {
	return func(m *Maze) {
		m.maxCells = n
	}
}
