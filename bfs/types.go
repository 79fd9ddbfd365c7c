// Package bfs provides tunable options, error definitions and the result
// type for breadth-first maze solving.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil maze pointer is passed.
	ErrGraphNil = errors.New("bfs: maze is nil")

	// ErrInvalidStart is returned when the maze has no start cell,
	// e.g. because it was never loaded or its last load failed.
	ErrInvalidStart = errors.New("bfs: no solution -- invalid start")

	// ErrNotReached is returned by Result.PathTo for a cell the search
	// never reached.
	ErrNotReached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell joins the frontier, with its distance
	// from the start.
	OnEnqueue func(id, depth int)

	// OnDequeue is called when a cell reaches the front of the frontier,
	// before the goal test.
	OnDequeue func(id, depth int)

	// Detached keeps visited flags and parent links in a side table.
	Detached bool
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op hooks
//   - search state stored on the maze cells
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell reaches the front.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithDetachedState runs the search on a per-solve side table. The maze's
// cells are neither reset nor marked.
func WithDetachedState() Option {
	return func(o *Options) {
		o.Detached = true
	}
}

// Result holds the outcome of a solve:
//   - Path:   cell ids from start to goal inclusive; empty if unreachable.
//   - Order:  cells in the order they reached the front of the frontier.
//   - Depth:  distance from the start per cell, -1 if not reached.
//   - Parent: backtrack link per cell, maze.NoCell for the start and for
//     cells not reached.
//   - Found:  whether the goal was reached.
//
// The search stops as soon as the goal reaches the front, so Depth and
// Parent cover only the cells discovered up to that point.
type Result struct {
	Path   []int
	Order  []int
	Depth  []int
	Parent []int
	Found  bool
}

// Len returns the path length in edges, or -1 if no path was found.
func (r *Result) Len() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// PathTo rebuilds the discovered path from the start to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	// build reversed path
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != maze.NoCell; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Coordinates maps the path onto (row, col) pairs of g.
func (r *Result) Coordinates(g gridgraph.Grid) [][2]int {
	out := make([][2]int, len(r.Path))
	for i, id := range r.Path {
		row, col := g.Coordinate(id)
		out[i] = [2]int{row, col}
	}
	return out
}
