// Package lvmaze loads rectangular wall-code mazes into an in-memory cell
// graph and finds shortest paths through them.
//
// Everything is organized under a few subpackages:
//
//	gridgraph/ — grid shape, row-major indexing, directions and wall codes
//	maze/      — the cell arena: loading, boundary repair, validation
//	bfs/       — breadth-first shortest path with parent backtracking
//	dfs/       — depth-first walks, loop detection, perfect-maze check
//	render/    — ASCII drawing of a maze and its solution
//
// Command:
//
//	cmd/mazesolve — load, validate, solve and report (text or YAML)
//
// The maze file is whitespace separated: rows and cols, then rows*cols walls
// codes in row-major order, then the start and goal cell indices. Bit 0 of a
// code is the North wall, bit 1 East, bit 2 South and bit 3 West; a set bit
// means the wall is present.
//
//	2 2
//	 9  3
//	12  6
//	0 3
//
//	 _ _
//	|   |
//	|_ _|
//
//	go install github.com/katalvlaran/lvmaze/cmd/mazesolve@latest
package lvmaze
