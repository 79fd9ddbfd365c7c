// Package maze turns a textual wall-code description of a rectangular maze
// into a cell-adjacency graph that breadth-first search can walk.
//
// What:
//
//   - Maze owns a dense arena of Cells, one per grid position, addressed by
//     the row-major index n = row*cols + col. Neighbour lists and backtrack
//     links are indices into that arena, never pointers, so a Maze can be
//     cloned or compared without fix-ups.
//   - Load reads whitespace-delimited tokens: rows, cols, rows*cols wall codes
//     (bit0 North, bit1 East, bit2 South, bit3 West; a set bit is a wall),
//     then the start and goal indices.
//   - Every open interior face adds one neighbour, in North→East→South→West
//     order. Boundary faces are always treated as walls; a code that leaves a
//     boundary face open is recorded as a Defect, logged, and repaired.
//   - Validate and IsConsistent check that adjacency is symmetric. They are
//     opt-in diagnostics and are never run by Load.
//
// Lifecycle:
//
//	m := maze.New(maze.WithLogger(logger))
//	if err := m.LoadFile("maze1.txt"); err != nil {
//	    // m is empty again: no cells, no start/goal
//	}
//	if !m.IsConsistent() {
//	    // each asymmetric pair has already been logged
//	}
//
// A failed load always leaves the Maze in the empty state; partial graphs are
// never observable.
//
// Search state:
//
//	Each Cell carries a visited flag and a parent link used by package bfs.
//	They are meaningful only during and after a solve and are reset before
//	every new one (see ResetSearch). A Maze is not safe for concurrent solves
//	that use this in-cell state.
//
// Complexity (N = rows*cols):
//
//   - Load:        O(N) time, O(N) memory.
//   - Validate:    O(N) time (degree ≤ 4).
//   - Components:  O(N) time and memory.
//   - Clone:       O(N).
//
// Errors:
//
//   - *LoadError wrapping one of ErrOpen, ErrSize, ErrTooLarge, ErrWallCode,
//     ErrWallCodeRange, ErrEndpoints, ErrEndpointRange.
//   - *AsymmetryError values combined with go.uber.org/multierr by Validate.
//   - ErrCellOutOfRange for accessors given a bad index.
package maze
