package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Maze writes the maze drawing followed by the start and goal cells.
// An empty maze prints "[empty maze]".
func Maze(w io.Writer, m *maze.Maze) error {
	return draw(w, m, nil)
}

// Overlay writes the maze drawing with the cells of path marked.
func Overlay(w io.Writer, m *maze.Maze, path []int) error {
	marks := make(map[int]bool, len(path))
	for _, id := range path {
		marks[id] = true
	}
	return draw(w, m, marks)
}

// Solution writes the path length and every step with its coordinates,
// or "no solution" for an empty path.
func Solution(w io.Writer, m *maze.Maze, path []int) error {
	var b strings.Builder
	if len(path) == 0 {
		b.WriteString("no solution\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	g := m.Grid()
	fmt.Fprintf(&b, "solution: %d moves\n", len(path)-1)
	for _, id := range path {
		if !g.Contains(id) {
			return fmt.Errorf("render: path cell %d: %w", id, maze.ErrCellOutOfRange)
		}
		r, c := g.Coordinate(id)
		fmt.Fprintf(&b, "  %3d [%d,%d]\n", id, r, c)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func draw(w io.Writer, m *maze.Maze, marks map[int]bool) error {
	var b strings.Builder
	if m.Empty() {
		b.WriteString("\n[empty maze]\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	rows, cols := m.Rows(), m.Cols()
	for col := 0; col < cols; col++ {
		b.WriteString(" _")
	}
	b.WriteByte('\n')

	for n := 0; n < m.Size(); n++ {
		row, col := n/cols, n%cols

		if col == 0 || !linked(m, n, n-1) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}

		walled := row+1 == rows || !linked(m, n+cols, n)
		switch {
		case marks[n] && walled:
			b.WriteByte('#')
		case marks[n]:
			b.WriteByte('*')
		case walled:
			b.WriteByte('_')
		default:
			b.WriteByte(' ')
		}

		if col+1 == cols {
			b.WriteString("|\n")
		}
	}

	b.WriteByte('\n')
	writeEndpoint(&b, " start cell:", m, m.Start)
	writeEndpoint(&b, "  goal cell:", m, m.Goal)

	_, err := io.WriteString(w, b.String())
	return err
}

// linked reports whether cell from lists cell to as a neighbour.
func linked(m *maze.Maze, from, to int) bool {
	c, err := m.Cell(from)
	return err == nil && c.IsNeighbor(to)
}

func writeEndpoint(b *strings.Builder, label string, m *maze.Maze, get func() (int, bool)) {
	id, ok := get()
	if !ok {
		fmt.Fprintf(b, "%s none\n", label)
		return
	}
	r, c := m.Grid().Coordinate(id)
	fmt.Fprintf(b, "%s %2d [%d,%d]\n", label, id, r, c)
}
