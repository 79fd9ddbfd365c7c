// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// layout.go — the generated grid and its maze file encoding.

package mazetest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// Layout is a generated maze: one walls code per cell in row-major order
// plus the endpoints.
type Layout struct {
	Grid  gridgraph.Grid
	Codes []gridgraph.WallCode
	Start int
	Goal  int
}

// newLayout returns a grid with every wall present.
func newLayout(g gridgraph.Grid) *Layout {
	codes := make([]gridgraph.WallCode, g.Size())
	for i := range codes {
		codes[i] = gridgraph.Closed
	}
	return &Layout{Grid: g, Codes: codes}
}

// carve removes the wall between id and its neighbour across d, on both
// sides. It reports false when d leaves the grid.
func (l *Layout) carve(id int, d gridgraph.Direction) bool {
	nbr, ok := l.Grid.Step(id, d)
	if !ok {
		return false
	}
	l.Codes[id] = l.Codes[id].Without(d)
	l.Codes[nbr] = l.Codes[nbr].Without(d.Opposite())
	return true
}

// WriteTo encodes the layout in the maze file format: the size line, one
// line of codes per row, then the start and goal.
func (l *Layout) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "%d %d\n", l.Grid.Rows, l.Grid.Cols)
	for r := 0; r < l.Grid.Rows; r++ {
		for c := 0; c < l.Grid.Cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%2d", l.Codes[l.Grid.Index(r, c)])
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%d %d\n", l.Start, l.Goal)

	err := bw.Flush()
	return cw.n, err
}

// Maze loads the layout into a new maze.Maze built with opts.
func (l *Layout) Maze(opts ...maze.Option) (*maze.Maze, error) {
	var buf bytes.Buffer
	if _, err := l.WriteTo(&buf); err != nil {
		return nil, err
	}
	m := maze.New(opts...)
	if err := m.Load(&buf); err != nil {
		return nil, err
	}
	return m, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
