// Package bfs solves a maze.Maze with breadth-first search, returning a
// shortest start→goal path by edge count.
//
// What
//
//   - Reset every cell's visited flag and parent link, mark the start cell
//     visited and push it on a FIFO frontier.
//   - Repeatedly peek the front cell F. If F is the goal, walk the parent
//     links back to the start and stop. Otherwise drain F's unvisited
//     neighbours one at a time (maze.NextUnvisitedNeighbor), marking each
//     visited, linking it to F and enqueueing it, then pop F.
//   - An exhausted frontier means the goal is unreachable: the Result has an
//     empty Path and Found == false, and no error is returned.
//   - An unset start is reported as ErrInvalidStart, distinct from
//     "unreachable".
//
// Determinism
//
//	Neighbour lists are built in North→East→South→West order by maze.Load and
//	BFS expands them in that order, so among equal-length paths the one found
//	is fixed for a given input. Repeated solves return identical results.
//
// Search state
//
//	By default the visited flags and parent links live on the maze cells, so
//	after Solve the backtrack chain can be inspected through maze.Cell.
//	WithDetachedState keeps them in a per-solve side table instead and leaves
//	the maze untouched, which lets independent callers solve one shared,
//	read-only maze.
//
// Complexity (N = cells, every cell has degree ≤ 4)
//
//   - Time:   O(N)
//   - Memory: O(N) for the frontier, depths and parent links
//
// Usage
//
//	res, err := bfs.Solve(m)
//	switch {
//	case errors.Is(err, bfs.ErrInvalidStart):
//	    // nothing loaded
//	case !res.Found:
//	    // goal unreachable
//	default:
//	    fmt.Println(res.Path)
//	}
//
// Options
//
//   - WithContext(ctx):        cancel a long search; checked once per expansion.
//   - WithOnEnqueue(fn):       hook when a cell joins the frontier.
//   - WithOnDequeue(fn):       hook when a cell reaches the front.
//   - WithDetachedState():     search on a side table, not on the cells.
package bfs
