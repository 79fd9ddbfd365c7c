// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// impl_open.go — Open() and Serpentine() constructors.
//
// Both are deterministic and ignore the RNG.

package mazetest

import "github.com/katalvlaran/lvmaze/gridgraph"

// Open removes every interior wall, leaving only the outer boundary.
// For each cell in row-major order it opens East then South.
func Open() Constructor {
	return func(l *Layout, _ builderConfig) error {
		for id := 0; id < l.Grid.Size(); id++ {
			l.carve(id, gridgraph.East)
			l.carve(id, gridgraph.South)
		}
		return nil
	}
}

// Serpentine carves a single corridor: left to right along even rows, right
// to left along odd rows, dropping one row at the end of each.
func Serpentine() Constructor {
	return func(l *Layout, _ builderConfig) error {
		g := l.Grid
		for r := 0; r < g.Rows; r++ {
			for c := 0; c+1 < g.Cols; c++ {
				l.carve(g.Index(r, c), gridgraph.East)
			}
			if r+1 == g.Rows {
				break
			}
			turn := g.Cols - 1
			if r%2 == 1 {
				turn = 0
			}
			l.carve(g.Index(r, turn), gridgraph.South)
		}
		return nil
	}
}
