// Package dfs implements depth-first traversal and loop detection on a
// maze.Maze.
//
// What:
//
//   - Walk: explores as far as possible along each corridor before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Full traversal of every component (forest mode)
//   - Loops: lists the passages that close a loop, i.e. the non-tree edges
//     of a depth-first forest.
//   - IsPerfect: reports whether the maze is a single component without
//     loops, so exactly one path joins any two cells.
//
// The traversal keeps its own White/Gray/Black state and never touches the
// cells' visited flags or parent links, so it can run next to a BFS result.
// The walk is iterative.
//
// Complexity:
//
//   - Walk:      Time O(V+E), Memory O(V)
//   - Loops:     Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             maze pointer is nil
//   - ErrStartVertexNotFound  start cell not in the maze
//   - context.Canceled        walk canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
