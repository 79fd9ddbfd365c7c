package dfs

import (
	"context"
	"errors"
)

// Visitation state of a cell during a walk.
const (
	White = iota // not visited yet
	Gray         // on the current branch
	Black        // it and all its descendants are explored
)

var (
	// ErrGraphNil is returned when a nil *maze.Maze is passed to Walk or Loops.
	ErrGraphNil = errors.New("dfs: maze is nil")

	// ErrStartVertexNotFound indicates that the start cell is not in the maze.
	ErrStartVertexNotFound = errors.New("dfs: start cell not found")
)

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds the hooks, limits and traversal mode of a walk.
type Options struct {
	// Ctx allows cancellation; it is checked once per discovered cell.
	Ctx context.Context

	// OnVisit is invoked when a cell is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(id int) error

	// OnExit is invoked after every descendant of a cell is explored
	// (post-order). Returning an error aborts the walk.
	OnExit func(id int) error

	// MaxDepth, if non-negative, stops descending below that depth.
	// A depth of 0 visits only the start cell. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts the walk from every unvisited cell in index
	// order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the walk to the given depth.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal walks every component, not just the start cell's.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first walk. Slices indexed by cell
// id have one entry per cell of the maze.
type Result struct {
	// Order lists cells in discovery order (pre-order).
	Order []int

	// PostOrder lists cells in the order they finished.
	PostOrder []int

	// Depth is the tree depth of each cell, -1 when not reached.
	Depth []int

	// Parent is the cell each one was discovered from; maze.NoCell for roots
	// and unreached cells.
	Parent []int
}

// Visited reports whether the walk reached id.
func (r *Result) Visited(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}

// Edge is a passage between two cells, stored with From < To.
type Edge struct {
	From int
	To   int
}
